package runner

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/aretw0/assistant/pkg/shell"
)

// JSONResponse is the line emitted for every message in JSON mode.
type JSONResponse struct {
	Command    string `json:"command,omitempty"`
	Output     string `json:"output"`
	Outcome    string `json:"outcome,omitempty"`
	Terminated bool   `json:"terminated"`
	// System marks messages that do not answer a command (welcome, farewell on EOF).
	System bool `json:"system,omitempty"`
}

// JSONHandler implements the IOHandler interface for JSON-Lines communication.
type JSONHandler struct {
	Writer  io.Writer
	Encoder *json.Encoder

	pump *linePump
}

// NewJSONHandler creates a handler for JSON IO.
func NewJSONHandler(r io.Reader, w io.Writer) *JSONHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return &JSONHandler{
		Writer:  w,
		Encoder: enc,
		pump:    newLinePump(r),
	}
}

func (h *JSONHandler) Output(ctx context.Context, resp shell.Response) error {
	return h.Encoder.Encode(JSONResponse{
		Command:    resp.Command.String(),
		Output:     resp.Output,
		Outcome:    string(resp.Outcome),
		Terminated: resp.Terminated,
	})
}

// Input reads one line. A line holding a JSON string is unquoted;
// anything else is returned as raw text.
func (h *JSONHandler) Input(ctx context.Context) (string, error) {
	text, err := h.pump.next(ctx)
	if err != nil {
		return "", err
	}
	text = strings.TrimSpace(text)

	var val string
	if err := json.Unmarshal([]byte(text), &val); err == nil {
		return val, nil
	}
	return text, nil
}

func (h *JSONHandler) SystemOutput(ctx context.Context, msg string) error {
	return h.Encoder.Encode(JSONResponse{
		Output: msg,
		System: true,
	})
}
