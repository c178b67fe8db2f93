package runner

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aretw0/assistant/pkg/shell"
)

// DefaultPrompt is printed before every read in text mode.
const DefaultPrompt = "> "

// ContentRenderer transforms a response before it is printed.
// This allows terminal rendering (markdown to ANSI) without coupling the runner to it.
type ContentRenderer func(string) (string, error)

// TextHandler implements the standard prompted text interface.
type TextHandler struct {
	Writer   io.Writer
	Renderer ContentRenderer
	Prompt   string

	pump *linePump
	// prompted is set while the prompt is on screen without a line typed after it.
	prompted bool
}

// TextHandlerOption defines configuration for TextHandler.
type TextHandlerOption func(*TextHandler)

// WithTextHandlerRenderer configures the content renderer.
func WithTextHandlerRenderer(renderer ContentRenderer) TextHandlerOption {
	return func(h *TextHandler) {
		h.Renderer = renderer
	}
}

// WithPrompt overrides DefaultPrompt.
func WithPrompt(prompt string) TextHandlerOption {
	return func(h *TextHandler) {
		h.Prompt = prompt
	}
}

// NewTextHandler creates a handler for standard text IO.
// Nil readers and writers fall back to Stdin and Stdout.
func NewTextHandler(r io.Reader, w io.Writer, opts ...TextHandlerOption) *TextHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	h := &TextHandler{
		Writer: w,
		Prompt: DefaultPrompt,
		pump:   newLinePump(r),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *TextHandler) Output(ctx context.Context, resp shell.Response) error {
	output := resp.Output
	if h.Renderer != nil {
		if rendered, err := h.Renderer(output); err == nil {
			output = rendered
		}
	}
	_, err := fmt.Fprintln(h.Writer, strings.TrimSpace(output))
	return err
}

func (h *TextHandler) Input(ctx context.Context) (string, error) {
	// Only show the prompt if the context is not yet done
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
		fmt.Fprint(h.Writer, h.Prompt)
		h.prompted = true
	}

	text, err := h.pump.next(ctx)
	if err != nil {
		return "", err
	}
	h.prompted = false
	return strings.TrimSpace(text), nil
}

// SystemOutput prints msg on its own line, first ending a pending prompt line.
func (h *TextHandler) SystemOutput(ctx context.Context, msg string) error {
	if h.prompted {
		fmt.Fprintln(h.Writer)
		h.prompted = false
	}
	_, err := fmt.Fprintln(h.Writer, msg)
	return err
}
