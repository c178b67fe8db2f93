package runner

import (
	"bufio"
	"context"
	"io"
	"sync"
)

type inputResult struct {
	text string
	err  error
}

// linePump reads lines from a source in a background goroutine so that a
// blocked read can be abandoned when the caller's context is cancelled.
type linePump struct {
	reader    *bufio.Reader
	inputChan chan inputResult
	startOnce sync.Once
}

func newLinePump(r io.Reader) *linePump {
	return &linePump{reader: bufio.NewReader(r)}
}

func (p *linePump) start() {
	p.startOnce.Do(func() {
		p.inputChan = make(chan inputResult)
		go p.run()
	})
}

func (p *linePump) run() {
	defer close(p.inputChan)
	for {
		text, err := p.reader.ReadString('\n')

		// A final line without a trailing newline still counts.
		if text != "" {
			p.inputChan <- inputResult{text: text}
		}
		if err != nil {
			if err != io.EOF {
				p.inputChan <- inputResult{err: err}
			}
			return
		}
	}
}

// next blocks until a line is available, the source is exhausted (io.EOF)
// or ctx is done.
func (p *linePump) next(ctx context.Context) (string, error) {
	p.start()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res, ok := <-p.inputChan:
		if !ok {
			return "", io.EOF
		}
		if res.err != nil {
			return "", res.err
		}
		return res.text, nil
	}
}
