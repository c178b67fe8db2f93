package runner

import (
	"context"

	"github.com/aretw0/assistant/pkg/shell"
)

// IOHandler defines the strategy for interacting with the user.
// This allows switching between Text (interactive) and JSON (structured) modes.
type IOHandler interface {
	// Output presents the response to a command.
	Output(ctx context.Context, resp shell.Response) error

	// Input reads one line from the user.
	// Returns io.EOF when the input is exhausted, or ctx.Err() if ctx is done first.
	Input(ctx context.Context) (string, error)

	// SystemOutput presents a message that is not the answer to a command,
	// such as the welcome line or the farewell printed on end of input.
	SystemOutput(ctx context.Context, msg string) error
}
