package shell

import (
	"strings"

	"github.com/aretw0/assistant/pkg/domain"
)

// Parse splits a raw line into a command and its positional arguments.
// It returns false for empty or whitespace-only input, in which case no
// handler should run.
//
// Tokens are separated by runs of whitespace. No quoting or escaping is
// performed, so a name containing spaces cannot be passed as one argument.
func Parse(line string) (domain.Input, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return domain.Input{}, false
	}

	token := strings.ToLower(strings.TrimSpace(fields[0]))
	var args domain.Args
	if len(fields) > 1 {
		args = domain.Args(fields[1:])
	}
	return domain.Input{
		Command: domain.ParseCommand(token),
		Token:   token,
		Args:    args,
	}, true
}
