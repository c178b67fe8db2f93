package shell

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/assistant/pkg/domain"
	"github.com/aretw0/assistant/pkg/ports"
)

// Response is the result of handling one line of input.
type Response struct {
	Command domain.Command
	Output  string
	Outcome Outcome
	// Terminated is set when the command ends the session.
	Terminated bool
}

// Shell routes parsed input to the command handlers.
// It owns the contact store for its whole lifetime.
type Shell struct {
	store  ports.ContactStore
	logger *slog.Logger
}

// Option defines a functional option for configuring the Shell.
type Option func(*Shell)

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Shell) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates a Shell over the given store.
func New(store ports.ContactStore, opts ...Option) *Shell {
	s := &Shell{
		store:  store,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Execute parses and dispatches a raw line.
// The boolean result is false when the line was blank and nothing ran.
func (s *Shell) Execute(ctx context.Context, line string) (Response, bool, error) {
	in, ok := Parse(line)
	if !ok {
		return Response{}, false, nil
	}
	resp, err := s.Dispatch(ctx, in)
	return resp, true, err
}

// Dispatch runs the handler for in.Command.
// Invalid usage, unknown names and missing arguments are reported in the
// Response; a non-nil error means something outside those kinds went wrong.
func (s *Shell) Dispatch(ctx context.Context, in domain.Input) (Response, error) {
	resp := Response{Command: in.Command, Outcome: OutcomeOK}
	var err error

	switch in.Command {
	case domain.CommandHello:
		resp.Output = domain.MsgGreeting
	case domain.CommandAdd:
		resp.Output, resp.Outcome, err = translated(addContact)(ctx, in.Args, s.store)
	case domain.CommandChange:
		resp.Output, resp.Outcome, err = translated(changeContact)(ctx, in.Args, s.store)
	case domain.CommandPhone:
		resp.Output, resp.Outcome, err = translated(showPhone)(ctx, in.Args, s.store)
	case domain.CommandAll:
		resp.Output, err = showAll(ctx, s.store)
	case domain.CommandHelp:
		resp.Output = domain.HelpText
	case domain.CommandExit, domain.CommandClose:
		resp.Output = domain.MsgFarewell
		resp.Terminated = in.Command.Terminates()
	case domain.CommandUnknown:
		resp.Output = domain.MsgInvalidCommand
		resp.Outcome = OutcomeInvalidCommand
	default:
		resp.Output = domain.MsgInvalidCommand
		resp.Outcome = OutcomeInvalidCommand
	}

	if err != nil {
		s.logger.Error("command failed", "command", in.Command.String(), "err", err)
		return Response{}, fmt.Errorf("%s: %w", in.Command, err)
	}

	s.logger.Debug("command dispatched",
		"command", in.Command.String(),
		"token", in.Token,
		"args", len(in.Args),
		"outcome", resp.Outcome,
	)
	return resp, nil
}
