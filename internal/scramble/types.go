package scramble

import (
	"math"
	"time"
)

// DefaultAlphabet is the character set used for unsettled positions.
const DefaultAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

const (
	DefaultDuration     = 1500 * time.Millisecond
	DefaultTickInterval = 50 * time.Millisecond
)

// Target describes one reveal run.
type Target struct {
	Text         string
	Alphabet     string
	Duration     time.Duration
	TickInterval time.Duration
}

// DefaultTarget returns a target for text using the package defaults.
func DefaultTarget(text string) Target {
	return Target{
		Text:         text,
		Alphabet:     DefaultAlphabet,
		Duration:     DefaultDuration,
		TickInterval: DefaultTickInterval,
	}
}

func (t Target) Validate() error {
	if len(t.Alphabet) == 0 {
		return ErrEmptyAlphabet
	}
	if t.TickInterval <= 0 {
		return ErrInvalidInterval
	}
	if t.Duration < 0 {
		return ErrInvalidDuration
	}
	return nil
}

// TotalIterations is Duration/TickInterval rounded to the nearest whole
// tick, never less than one.
func (t Target) TotalIterations() int {
	if t.TickInterval <= 0 {
		return 1
	}
	n := int(math.Round(float64(t.Duration) / float64(t.TickInterval)))
	if n < 1 {
		return 1
	}
	return n
}

// WithText returns a copy of t revealing text.
func (t Target) WithText(text string) Target {
	t.Text = text
	return t
}

// State is a snapshot of an animator.
type State struct {
	Iteration int
	Total     int
	Display   string
	// Settled counts positions that already show their target character
	// for good.
	Settled int
	Running bool
}

// Completion is signalled once per run.
type Completion struct {
	Text      string
	Ticks     int
	Cancelled bool
}

// Observer receives frames and completions from an Animator. Calls happen
// on the scheduler's callback goroutine.
type Observer interface {
	OnFrame(s State)
	OnComplete(c Completion)
}

// ObserverFunc adapts a frame callback to Observer, ignoring completions.
type ObserverFunc func(s State)

func (f ObserverFunc) OnFrame(s State)       { f(s) }
func (f ObserverFunc) OnComplete(Completion) {}
