// Package scramble implements the scramble-reveal text animation.
//
// An Animator reveals a target string left to right over a fixed number of
// ticks. Positions that have not settled show random characters from the
// target's alphabet. The animator is a plain state machine: a Scheduler
// calls AdvanceOneTick, and observers receive a State after every change.
package scramble

import (
	"math/rand/v2"

	"github.com/san-kum/llamademo/internal/sched"
)

type Animator struct {
	sched     sched.Scheduler
	rng       *rand.Rand
	observers []Observer

	handle    sched.Handle
	gen       uint64
	target    []rune
	alphabet  []rune
	display   []rune
	settled   []bool
	nsettled  int
	iteration int
	total     int
	running   bool
}

type Option func(*Animator)

// WithRand sets the random source used for unsettled positions.
func WithRand(r *rand.Rand) Option {
	return func(a *Animator) { a.rng = r }
}

func WithObserver(o Observer) Option {
	return func(a *Animator) { a.AddObserver(o) }
}

func New(s sched.Scheduler, opts ...Option) *Animator {
	a := &Animator{sched: s}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Animator) AddObserver(o Observer) { a.observers = append(a.observers, o) }

func (a *Animator) Running() bool { return a.running }

// Start begins a new run. An active run is cancelled first, so at most one
// tick source exists per animator. If an observer starts a run while that
// cancellation is being reported, the observer's run stands and this call
// returns without starting another.
func (a *Animator) Start(t Target) error {
	if err := t.Validate(); err != nil {
		return err
	}
	gen := a.gen
	a.Cancel()
	if a.gen != gen {
		return nil
	}
	a.gen++

	a.target = []rune(t.Text)
	a.alphabet = []rune(t.Alphabet)
	a.total = t.TotalIterations()
	a.iteration = 0
	a.settled = make([]bool, len(a.target))
	a.nsettled = 0
	a.display = make([]rune, len(a.target))
	a.running = true

	if len(a.target) == 0 {
		a.finish(false)
		return nil
	}

	for i := range a.display {
		a.display[i] = a.randomRune()
	}
	a.handle = a.sched.Schedule(a.AdvanceOneTick, t.TickInterval)
	a.emitFrame()
	return nil
}

// Cancel stops the active run and settles every position. It does nothing
// when no run is active.
func (a *Animator) Cancel() {
	if !a.running {
		return
	}
	a.finish(true)
}

// AdvanceOneTick moves the active run forward by one tick.
func (a *Animator) AdvanceOneTick() {
	if !a.running {
		return
	}
	a.iteration++
	if a.iteration >= a.total {
		a.finish(false)
		return
	}

	n := len(a.target)
	for i := range a.target {
		// k/total > i/n, kept in integers so boundaries compare exactly
		if !a.settled[i] && a.iteration*n > i*a.total {
			a.settled[i] = true
			a.nsettled++
		}
		if a.settled[i] {
			a.display[i] = a.target[i]
		} else {
			a.display[i] = a.randomRune()
		}
	}
	a.emitFrame()
}

func (a *Animator) Snapshot() State {
	return State{
		Iteration: a.iteration,
		Total:     a.total,
		Display:   string(a.display),
		Settled:   a.nsettled,
		Running:   a.running,
	}
}

func (a *Animator) finish(cancelled bool) {
	if a.handle != 0 {
		a.sched.Cancel(a.handle)
		a.handle = 0
	}
	copy(a.display, a.target)
	for i := range a.settled {
		a.settled[i] = true
	}
	a.nsettled = len(a.settled)
	a.running = false

	done := Completion{Text: string(a.target), Ticks: a.iteration, Cancelled: cancelled}
	a.emitFrame()
	for _, o := range a.snapshotObservers() {
		o.OnComplete(done)
	}
}

func (a *Animator) emitFrame() {
	s := a.Snapshot()
	for _, o := range a.snapshotObservers() {
		o.OnFrame(s)
	}
}

func (a *Animator) snapshotObservers() []Observer {
	obs := make([]Observer, len(a.observers))
	copy(obs, a.observers)
	return obs
}

func (a *Animator) randomRune() rune {
	if a.rng != nil {
		return a.alphabet[a.rng.IntN(len(a.alphabet))]
	}
	return a.alphabet[rand.IntN(len(a.alphabet))]
}
