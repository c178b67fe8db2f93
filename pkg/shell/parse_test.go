package shell

import (
	"testing"

	"github.com/aretw0/assistant/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		ok    bool
		want  domain.Command
		token string
		args  domain.Args
	}{
		{name: "empty", line: "", ok: false},
		{name: "whitespace", line: " \t  ", ok: false},
		{name: "bare command", line: "hello", ok: true, want: domain.CommandHello, token: "hello"},
		{name: "upper case", line: "  ADD Alice 123 ", ok: true, want: domain.CommandAdd, token: "add", args: domain.Args{"Alice", "123"}},
		{name: "whitespace runs", line: "change\tAlice   999", ok: true, want: domain.CommandChange, token: "change", args: domain.Args{"Alice", "999"}},
		{name: "args keep case", line: "phone ALICE", ok: true, want: domain.CommandPhone, token: "phone", args: domain.Args{"ALICE"}},
		{name: "unknown", line: "remove Alice", ok: true, want: domain.CommandUnknown, token: "remove", args: domain.Args{"Alice"}},
		{name: "quotes not honoured", line: `add "John Smith" 123`, ok: true, want: domain.CommandAdd, token: "add", args: domain.Args{`"John`, `Smith"`, "123"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, ok := Parse(tt.line)
			assert.Equal(t, tt.ok, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.want, in.Command)
			assert.Equal(t, tt.token, in.Token)
			assert.Equal(t, tt.args, in.Args)
		})
	}
}
