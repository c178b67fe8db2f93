/*
Package assistant is an interactive contact book shell.

The shell reads one command per line, keeps a name → phone mapping in memory
for the lifetime of the process, and answers each command with a short line of
text. Nothing is persisted between runs.

# Commands

	hello                       greet
	add <name> <phone>          add a contact
	change <name> <new_phone>   change the phone of an existing contact
	phone <name>                show the phone of a contact
	all                         list all contacts
	help                        show usage
	exit | close                quit

End of input and an interrupt signal (Ctrl+C) behave like exit.

# Layout

  - pkg/domain: command set, parsed input and failure taxonomy.
  - pkg/ports, pkg/adapters/memory: the contact store.
  - pkg/shell: parser, handlers, error translation and dispatch.
  - pkg/runner: the interactive loop and its IO strategies.
  - cmd/assistant: the CLI.
*/
package assistant
