package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUsageError(t *testing.T) {
	err := fmt.Errorf("handler: %w", NewUsageError(UsageAdd))
	assert.ErrorIs(t, err, ErrInvalidUsage)
	assert.NotErrorIs(t, err, ErrNotFound)

	var usage *UsageError
	assert.True(t, errors.As(err, &usage))
	assert.Equal(t, UsageAdd, usage.Error())

	assert.Equal(t, MsgInvalidValue, NewUsageError("").Error())
}

func TestNotFoundError(t *testing.T) {
	err := &NotFoundError{Name: "Alice"}
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrInvalidUsage)
	assert.Contains(t, err.Error(), "Alice")
}
