package domain

import "strings"

// Command identifies one of the shell's supported commands.
// The set is closed: any token that does not name a known command
// parses to CommandUnknown.
type Command int

const (
	CommandUnknown Command = iota
	CommandHello
	CommandAdd
	CommandChange
	CommandPhone
	CommandAll
	CommandHelp
	CommandExit
	CommandClose
)

var commandNames = map[Command]string{
	CommandUnknown: "unknown",
	CommandHello:   "hello",
	CommandAdd:     "add",
	CommandChange:  "change",
	CommandPhone:   "phone",
	CommandAll:     "all",
	CommandHelp:    "help",
	CommandExit:    "exit",
	CommandClose:   "close",
}

var commandsByName = func() map[string]Command {
	m := make(map[string]Command, len(commandNames))
	for cmd, name := range commandNames {
		if cmd == CommandUnknown {
			continue
		}
		m[name] = cmd
	}
	return m
}()

// ParseCommand maps a command token to its Command.
// Matching is case-insensitive and ignores surrounding whitespace.
func ParseCommand(token string) Command {
	if cmd, ok := commandsByName[strings.ToLower(strings.TrimSpace(token))]; ok {
		return cmd
	}
	return CommandUnknown
}

// String returns the canonical command token.
func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return commandNames[CommandUnknown]
}

// Terminates reports whether the command ends the shell session.
func (c Command) Terminates() bool {
	return c == CommandExit || c == CommandClose
}

// Args holds the positional arguments that follow a command token.
type Args []string

// Get returns the argument at position i.
// It returns ErrInsufficientArgs when the input did not carry that many arguments.
func (a Args) Get(i int) (string, error) {
	if i < 0 || i >= len(a) {
		return "", ErrInsufficientArgs
	}
	return a[i], nil
}

// Input is a single parsed line of user input.
type Input struct {
	Command Command
	// Token is the command token as typed, lower-cased.
	Token string
	Args  Args
}

// Contact is a single name → phone entry.
type Contact struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}
