package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/assistant/pkg/adapters/memory"
	"github.com/aretw0/assistant/pkg/domain"
	"github.com/aretw0/assistant/pkg/observability"
	"github.com/aretw0/assistant/pkg/shell"
)

// Runner drives the read-parse-dispatch-print loop of the shell.
// It uses an IOHandler strategy to abstract the interaction mode (Text vs JSON).
type Runner struct {
	// Handler is the strategy for IO. Defaults to a TextHandler on Stdin/Stdout.
	Handler IOHandler

	// Shell receives every non-blank line. Defaults to a shell over an empty memory store.
	Shell *shell.Shell

	// Logger is used for internal debug logging.
	// If nil, a no-op logger is used.
	Logger *slog.Logger

	// Metrics records every dispatched command. Optional.
	Metrics *observability.Metrics

	// MaxInputSize caps a single line; see SanitizeInput.
	MaxInputSize int

	// Welcome prints domain.MsgWelcome before the first prompt.
	Welcome bool
}

// NewRunner creates a new Runner.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		MaxInputSize: DefaultMaxInputSize,
		Welcome:      true,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.Logger == nil {
		r.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if r.Handler == nil {
		r.Handler = NewTextHandler(nil, nil)
	}
	if r.Shell == nil {
		r.Shell = shell.New(memory.NewStore(), shell.WithLogger(r.Logger))
	}
	return r
}

// Run executes the loop until the session terminates.
// exit, close, end of input and an interrupt signal (or cancellation of ctx)
// all end the session with a farewell and a nil error.
// A non-nil error is returned only for IO failures and unanticipated handler errors.
func (r *Runner) Run(ctx context.Context) error {
	signals := NewSignalManager(ctx)
	defer signals.Stop()

	// Output is never cut short by a signal; only the blocking read is.
	outCtx := context.WithoutCancel(ctx)

	if r.Welcome {
		if err := r.Handler.SystemOutput(outCtx, domain.MsgWelcome); err != nil {
			return fmt.Errorf("output error: %w", err)
		}
	}

	for {
		line, err := r.Handler.Input(signals.Context())
		if err != nil {
			// Check if error is due to signal cancellation
			signals.CheckRace()

			switch {
			case signals.Interrupted():
				return r.farewell(outCtx, "interrupt")
			case errors.Is(err, io.EOF):
				return r.farewell(outCtx, "eof")
			}
			return fmt.Errorf("input error: %w", err)
		}

		clean, err := SanitizeInput(line, r.MaxInputSize)
		if err != nil {
			r.Logger.Debug("input rejected", "err", err)
			if err := r.Handler.SystemOutput(outCtx, fmt.Sprintf("Error: %v. Please try again.", err)); err != nil {
				return fmt.Errorf("output error: %w", err)
			}
			continue
		}

		// Each command runs to completion even if a signal arrives meanwhile.
		resp, ok, err := r.Shell.Execute(outCtx, clean)
		if err != nil {
			return fmt.Errorf("dispatch error: %w", err)
		}
		if !ok {
			if r.Metrics != nil {
				r.Metrics.RecordBlankLine()
			}
			continue
		}
		if r.Metrics != nil {
			r.Metrics.RecordCommand(resp.Command.String(), string(resp.Outcome))
		}

		if err := r.Handler.Output(outCtx, resp); err != nil {
			return fmt.Errorf("output error: %w", err)
		}

		if resp.Terminated {
			r.Logger.Debug("session ended", "reason", resp.Command.String())
			return nil
		}
	}
}

func (r *Runner) farewell(ctx context.Context, reason string) error {
	r.Logger.Debug("session ended", "reason", reason)
	if err := r.Handler.SystemOutput(ctx, domain.MsgFarewell); err != nil {
		return fmt.Errorf("output error: %w", err)
	}
	return nil
}
