package runner

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeInput_SizeLimit(t *testing.T) {
	limit := DefaultMaxInputSize

	tests := []struct {
		name      string
		inputSize int
		wantErr   bool
	}{
		{"Under Limit", limit - 1, false},
		{"Exact Limit", limit, false},
		{"Over Limit", limit + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := strings.Repeat("a", tt.inputSize)
			_, err := SanitizeInput(input, 0)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInputTooLarge)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSanitizeInput_CustomLimit(t *testing.T) {
	_, err := SanitizeInput("12345678901", 10)
	assert.ErrorIs(t, err, ErrInputTooLarge)

	got, err := SanitizeInput("12345", 10)
	assert.NoError(t, err)
	assert.Equal(t, "12345", got)
}

func TestSanitizeInput_ControlChars(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Normal Text", "add Alice 123", "add Alice 123"},
		{"Safe Controls", "add\tAlice 123\r", "add\tAlice 123\r"},
		{"ANSI Code", "\x1b[31mRed\x1b[0m", "[31mRed[0m"}, // ESC removed
		{"Null Byte", "Null\x00Byte", "NullByte"},
		{"Bell", "Ding\x07", "Ding"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SanitizeInput(tt.input, 0)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSanitizeInput_InvalidUTF8(t *testing.T) {
	input := "\xbd\xb2\x3d\xbc\x20\xe2\x8c\x98"
	_, err := SanitizeInput(input, 0)
	assert.ErrorIs(t, err, ErrInvalidUTF8)
}
