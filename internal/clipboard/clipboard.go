// Package clipboard provides sinks for exported transcripts.
package clipboard

import (
	"errors"
	"io"
	"sync"

	"github.com/aymanbagabas/go-osc52/v2"
)

var ErrNoTerminal = errors.New("clipboard: no terminal writer")

// Passthrough selects how the OSC 52 sequence is wrapped for terminal
// multiplexers.
type Passthrough string

const (
	PassthroughNone   Passthrough = ""
	PassthroughTmux   Passthrough = "tmux"
	PassthroughScreen Passthrough = "screen"
)

// OSC52 copies text by writing an OSC 52 escape sequence to a terminal.
type OSC52 struct {
	Out         io.Writer
	Passthrough Passthrough
	// Limit caps the payload size in bytes; zero means no limit.
	Limit int
}

func NewOSC52(out io.Writer) *OSC52 {
	return &OSC52{Out: out}
}

func (c *OSC52) Sequence(text string) osc52.Sequence {
	seq := osc52.New(text)
	switch c.Passthrough {
	case PassthroughTmux:
		seq = seq.Tmux()
	case PassthroughScreen:
		seq = seq.Screen()
	}
	if c.Limit > 0 {
		seq = seq.Limit(c.Limit)
	}
	return seq
}

func (c *OSC52) Write(text string) error {
	if c.Out == nil {
		return ErrNoTerminal
	}
	_, err := c.Sequence(text).WriteTo(c.Out)
	return err
}

// Writer writes the raw text to an io.Writer, e.g. stdout for piping.
type Writer struct {
	Out io.Writer
}

func (w Writer) Write(text string) error {
	_, err := io.WriteString(w.Out, text)
	return err
}

// Func adapts a function to a sink.
type Func func(text string) error

func (f Func) Write(text string) error { return f(text) }

// Memory keeps every write. Safe for concurrent use.
type Memory struct {
	mu     sync.Mutex
	writes []string
}

func (m *Memory) Write(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writes = append(m.writes, text)
	return nil
}

func (m *Memory) Last() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.writes) == 0 {
		return ""
	}
	return m.writes[len(m.writes)-1]
}

func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.writes)
}
