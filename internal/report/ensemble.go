package report

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
	"golang.org/x/sync/errgroup"

	"github.com/san-kum/llamademo/internal/scramble"
)

// RunAll traces every word against the same template concurrently. Word i
// uses seed+i, so results match sequential Run calls.
func RunAll(tmpl scramble.Target, words []string, seed uint64) ([]*Trace, error) {
	traces := make([]*Trace, len(words))

	var g errgroup.Group
	for i, w := range words {
		g.Go(func() error {
			tr, err := Run(tmpl.WithText(w), seed+uint64(i))
			if err != nil {
				return fmt.Errorf("trace %q: %w", w, err)
			}
			traces[i] = tr
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return traces, nil
}

// Fraction is the settled share of the word per tick, in [0, 1].
func (tr *Trace) Fraction() []float64 {
	n := float64(len([]rune(tr.Target.Text)))
	out := make([]float64, len(tr.Settled))
	for i, s := range tr.Settled {
		if n == 0 {
			out[i] = 1
			continue
		}
		out[i] = s / n
	}
	return out
}

// PlotAll overlays the settle fraction of several traces.
func PlotAll(traces []*Trace, width, height int) string {
	var series [][]float64
	var names []string
	for _, tr := range traces {
		f := tr.Fraction()
		if len(f) == 0 {
			continue
		}
		if len(f) == 1 {
			f = []float64{0, f[0]}
		}
		series = append(series, f)
		names = append(names, tr.Target.Text)
	}
	if len(series) == 0 {
		return ""
	}
	return asciigraph.PlotMany(series,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.LowerBound(0),
		asciigraph.UpperBound(1),
		asciigraph.Precision(2),
		asciigraph.Caption("settled fraction: "+strings.Join(names, ", ")),
	)
}
