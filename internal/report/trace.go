// Package report renders a single scramble run as a settle curve.
package report

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/llamademo/internal/sched"
	"github.com/san-kum/llamademo/internal/scramble"
)

// Trace is the frame-by-frame record of one run.
type Trace struct {
	Target  scramble.Target
	Frames  []scramble.State
	Settled []float64
}

// Run plays t to completion on a fake clock and records every frame after
// the first tick.
func Run(t scramble.Target, seed uint64) (*Trace, error) {
	clock := sched.NewManual()
	tr := &Trace{Target: t}
	a := scramble.New(clock,
		scramble.WithRand(rand.New(rand.NewPCG(seed, seed))),
		scramble.WithObserver(scramble.ObserverFunc(func(s scramble.State) {
			if s.Iteration == 0 && s.Running {
				return
			}
			tr.Frames = append(tr.Frames, s)
			tr.Settled = append(tr.Settled, float64(s.Settled))
		})))
	if err := a.Start(t); err != nil {
		return nil, err
	}
	for a.Running() {
		clock.Advance(t.TickInterval)
	}
	return tr, nil
}

// Plot draws the settled-position count per tick.
func (tr *Trace) Plot(width, height int) string {
	if len(tr.Settled) == 0 {
		return ""
	}
	data := tr.Settled
	if len(data) == 1 {
		data = []float64{0, data[0]}
	}
	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.LowerBound(0),
		asciigraph.UpperBound(float64(len([]rune(tr.Target.Text)))),
		asciigraph.Caption(fmt.Sprintf("settled positions of %q over %d ticks", tr.Target.Text, len(tr.Frames))),
	)
}

// Table lists every frame as "tick display settled/total".
func (tr *Trace) Table() string {
	var b strings.Builder
	n := len([]rune(tr.Target.Text))
	for _, f := range tr.Frames {
		fmt.Fprintf(&b, "%4d  %s  %d/%d\n", f.Iteration, f.Display, f.Settled, n)
	}
	return b.String()
}
