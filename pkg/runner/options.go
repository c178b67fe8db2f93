package runner

import (
	"log/slog"

	"github.com/aretw0/assistant/pkg/observability"
	"github.com/aretw0/assistant/pkg/shell"
)

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithInputHandler configures a custom IOHandler.
func WithInputHandler(handler IOHandler) Option {
	return func(r *Runner) {
		r.Handler = handler
	}
}

// WithShell configures the shell commands are dispatched to.
func WithShell(sh *shell.Shell) Option {
	return func(r *Runner) {
		r.Shell = sh
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.Logger = logger
	}
}

// WithMetrics configures the session metrics.
func WithMetrics(m *observability.Metrics) Option {
	return func(r *Runner) {
		r.Metrics = m
	}
}

// WithMaxInputSize sets the largest accepted input line in bytes.
func WithMaxInputSize(size int) Option {
	return func(r *Runner) {
		r.MaxInputSize = size
	}
}

// WithWelcome toggles the welcome line printed before the first prompt.
func WithWelcome(enabled bool) Option {
	return func(r *Runner) {
		r.Welcome = enabled
	}
}
