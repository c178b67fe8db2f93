package shell

import (
	"context"
	"errors"
	"fmt"

	"github.com/aretw0/assistant/pkg/domain"
	"github.com/aretw0/assistant/pkg/ports"
)

// Outcome classifies how a command ended.
type Outcome string

const (
	OutcomeOK               Outcome = "ok"
	OutcomeInvalidUsage     Outcome = "invalid_usage"
	OutcomeNotFound         Outcome = "not_found"
	OutcomeInsufficientArgs Outcome = "insufficient_args"
	OutcomeInvalidCommand   Outcome = "invalid_command"
)

// HandlerFunc implements the business logic of a single command.
// Failures are reported with the error kinds declared in package domain.
type HandlerFunc func(ctx context.Context, args domain.Args, store ports.ContactStore) (string, error)

// guardedFunc is a HandlerFunc whose modelled failures have already been turned into text.
type guardedFunc func(ctx context.Context, args domain.Args, store ports.ContactStore) (string, Outcome, error)

// Translate converts a modelled handler failure into the message shown to the user.
// It returns false if err is not one of the modelled kinds.
func Translate(err error) (string, Outcome, bool) {
	var usage *domain.UsageError
	var notFound *domain.NotFoundError

	switch {
	case err == nil:
		return "", OutcomeOK, false
	case errors.As(err, &usage):
		return usage.Error(), OutcomeInvalidUsage, true
	case errors.Is(err, domain.ErrInvalidUsage):
		return domain.MsgInvalidValue, OutcomeInvalidUsage, true
	case errors.As(err, &notFound):
		return notFoundMessage(notFound.Name), OutcomeNotFound, true
	case errors.Is(err, domain.ErrNotFound):
		return notFoundMessage(""), OutcomeNotFound, true
	case errors.Is(err, domain.ErrInsufficientArgs):
		return domain.MsgNotEnoughArgs, OutcomeInsufficientArgs, true
	}
	return "", "", false
}

func notFoundMessage(name string) string {
	if name == "" {
		name = "unknown"
	}
	return fmt.Sprintf("Contact '%s' not found.", name)
}

// translated wraps h so that every modelled failure comes back as a message.
// Any other error is returned unchanged.
func translated(h HandlerFunc) guardedFunc {
	return func(ctx context.Context, args domain.Args, store ports.ContactStore) (string, Outcome, error) {
		out, err := h(ctx, args, store)
		if err == nil {
			return out, OutcomeOK, nil
		}
		if msg, outcome, ok := Translate(err); ok {
			return msg, outcome, nil
		}
		return "", "", err
	}
}
