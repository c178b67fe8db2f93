package domain

import "errors"

// ErrInvalidUsage is matched by every UsageError.
var ErrInvalidUsage = errors.New("invalid usage")

// ErrNotFound is matched by every NotFoundError.
var ErrNotFound = errors.New("contact not found")

// ErrInsufficientArgs is returned when a handler asks for an argument the input did not carry.
var ErrInsufficientArgs = errors.New("not enough arguments")

// ErrContactExists is returned by a ContactStore when inserting a name it already holds.
var ErrContactExists = errors.New("contact already exists")

// UsageError reports a malformed request, such as a wrong argument count.
type UsageError struct {
	Usage string
}

// NewUsageError returns a UsageError carrying the given usage line.
func NewUsageError(usage string) *UsageError {
	return &UsageError{Usage: usage}
}

func (e *UsageError) Error() string {
	if e.Usage == "" {
		return MsgInvalidValue
	}
	return e.Usage
}

func (e *UsageError) Is(target error) bool {
	return target == ErrInvalidUsage
}

// NotFoundError reports a lookup of a name absent from the store.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return "contact " + e.Name + " not found"
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
