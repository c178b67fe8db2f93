package runner

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/aretw0/assistant/pkg/domain"
	"github.com/aretw0/assistant/pkg/shell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextHandler_Output(t *testing.T) {
	outBuf := &bytes.Buffer{}
	handler := NewTextHandler(strings.NewReader(""), outBuf)

	handler.Renderer = func(s string) (string, error) {
		return "Rendered: " + s, nil
	}

	err := handler.Output(context.Background(), shell.Response{Command: domain.CommandHello, Output: "How can I help you?"})
	require.NoError(t, err)
	assert.Equal(t, "Rendered: How can I help you?\n", outBuf.String())
}

func TestTextHandler_Input(t *testing.T) {
	outBuf := &bytes.Buffer{}
	handler := NewTextHandler(strings.NewReader("  add Alice 123  \r\nlast"), outBuf, WithPrompt("$ "))

	val, err := handler.Input(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "add Alice 123", val)

	// Final line without trailing newline
	val, err = handler.Input(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "last", val)

	_, err = handler.Input(context.Background())
	assert.ErrorIs(t, err, io.EOF)

	assert.Equal(t, "$ $ $ ", outBuf.String())
}

func TestTextHandler_InputCancelled(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	outBuf := &bytes.Buffer{}
	handler := NewTextHandler(pr, outBuf)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := handler.Input(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, outBuf.String(), "no prompt once the context is done")
}

func TestTextHandler_SystemOutputAfterPrompt(t *testing.T) {
	outBuf := &bytes.Buffer{}
	handler := NewTextHandler(strings.NewReader(""), outBuf)

	require.NoError(t, handler.SystemOutput(context.Background(), "Welcome"))
	_, err := handler.Input(context.Background())
	require.ErrorIs(t, err, io.EOF)
	require.NoError(t, handler.SystemOutput(context.Background(), "Good bye!"))

	assert.Equal(t, "Welcome\n> \nGood bye!\n", outBuf.String())
}
