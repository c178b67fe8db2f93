package domain

// Fixed user-facing messages.
const (
	MsgWelcome        = "Welcome to the assistant bot! Type 'help' for commands."
	MsgGreeting       = "How can I help you?"
	MsgFarewell       = "Good bye!"
	MsgInvalidCommand = "Invalid command."
	MsgNoContacts     = "No contacts yet."
	MsgInvalidValue   = "Invalid value."
	MsgNotEnoughArgs  = "Not enough arguments. Type 'help' for usage."
)

// Usage lines reported when a command receives the wrong number of arguments.
const (
	UsageAdd    = "Usage: add <name> <phone>"
	UsageChange = "Usage: change <name> <new_phone>"
	UsagePhone  = "Usage: phone <name>"
)

// TODO: the add line advertises quoted names, but the parser only splits on
// whitespace. Either drop the hint or teach the parser quoting.
const HelpText = "Available commands:\n" +
	"  hello                       – greet\n" +
	"  add <name> <phone>          – add a contact (name may be quoted)\n" +
	"  change <name> <new_phone>   – change phone for existing contact\n" +
	"  phone <name>                – show phone by name\n" +
	"  all                         – list all contacts\n" +
	"  help                        – show this help\n" +
	"  exit | close                – quit"
