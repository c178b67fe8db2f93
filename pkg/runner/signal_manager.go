package runner

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// SignalManager turns SIGINT and SIGTERM into context cancellation and
// smooths over the race where an interrupted read reports EOF before the
// signal context is cancelled (seen on Windows consoles).
type SignalManager struct {
	ctx    context.Context
	cancel context.CancelFunc
}

// NewSignalManager creates a new manager derived from parent and immediately starts listening for signals.
func NewSignalManager(parent context.Context) *SignalManager {
	if parent == nil {
		parent = context.Background()
	}
	sm := &SignalManager{}
	sm.ctx, sm.cancel = signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	return sm
}

// Context returns the signal context.
func (sm *SignalManager) Context() context.Context {
	return sm.ctx
}

// Interrupted reports whether a signal (or the parent context) ended the session.
func (sm *SignalManager) Interrupted() bool {
	return sm.ctx.Err() != nil
}

// Stop permanently stops the signal listener.
func (sm *SignalManager) Stop() {
	if sm.cancel != nil {
		sm.cancel()
	}
}

// CheckRace waits briefly to see if a context cancellation follows an input error.
func (sm *SignalManager) CheckRace() {
	if sm.ctx.Err() == nil {
		select {
		case <-sm.ctx.Done():
			// Signal arrived during wait
		case <-time.After(100 * time.Millisecond):
			// Timeout, likely genuine error
		}
	}
}
