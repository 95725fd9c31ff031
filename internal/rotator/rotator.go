// Package rotator cycles an animator through an ordered list of words on a
// fixed period.
package rotator

import (
	"errors"
	"log/slog"
	"time"

	"github.com/san-kum/llamademo/internal/logs"
	"github.com/san-kum/llamademo/internal/sched"
	"github.com/san-kum/llamademo/internal/scramble"
)

var (
	ErrNoWords       = errors.New("rotator: word list is empty")
	ErrInvalidPeriod = errors.New("rotator: rotation period must be positive")
)

// Animator is the part of scramble.Animator the rotator drives.
type Animator interface {
	Start(t scramble.Target) error
	Cancel()
}

type Rotator struct {
	sched    sched.Scheduler
	anim     Animator
	words    []string
	period   time.Duration
	template scramble.Target
	log      *slog.Logger
	onRotate func(index int, word string)

	index     int
	rotations int
	handle    sched.Handle
}

type Option func(*Rotator)

func WithLogger(l *slog.Logger) Option {
	return func(r *Rotator) { r.log = l }
}

// WithOnRotate registers fn to run after each index change, before the
// animator is started on the new word.
func WithOnRotate(fn func(index int, word string)) Option {
	return func(r *Rotator) { r.onRotate = fn }
}

// New builds a rotator over words. tmpl supplies everything but the text of
// each run. The word list is copied.
func New(s sched.Scheduler, anim Animator, words []string, period time.Duration, tmpl scramble.Target, opts ...Option) (*Rotator, error) {
	if len(words) == 0 {
		return nil, ErrNoWords
	}
	if period <= 0 {
		return nil, ErrInvalidPeriod
	}
	if err := tmpl.Validate(); err != nil {
		return nil, err
	}
	r := &Rotator{
		sched:    s,
		anim:     anim,
		words:    append([]string(nil), words...),
		period:   period,
		template: tmpl,
		log:      logs.Discard(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

func (r *Rotator) Index() int      { return r.index }
func (r *Rotator) Current() string { return r.words[r.index] }
func (r *Rotator) Rotations() int  { return r.rotations }
func (r *Rotator) Active() bool    { return r.handle != 0 }

func (r *Rotator) Words() []string {
	return append([]string(nil), r.words...)
}

// StartRotating begins the period timer. It does nothing if already active.
func (r *Rotator) StartRotating() {
	if r.handle != 0 {
		return
	}
	r.handle = r.sched.Schedule(r.rotate, r.period)
	r.log.Debug("rotation started", "period", r.period, "words", len(r.words))
}

// StopRotating cancels the period timer. Safe to call repeatedly.
func (r *Rotator) StopRotating() {
	if r.handle == 0 {
		return
	}
	r.sched.Cancel(r.handle)
	r.handle = 0
	r.log.Debug("rotation stopped", "rotations", r.rotations)
}

// Teardown stops rotation and cancels any run still in flight on the
// animator. Call it before the owning view is discarded.
func (r *Rotator) Teardown() {
	r.StopRotating()
	r.anim.Cancel()
}

func (r *Rotator) rotate() {
	r.index = (r.index + 1) % len(r.words)
	r.rotations++
	word := r.words[r.index]
	if r.onRotate != nil {
		r.onRotate(r.index, word)
	}
	if err := r.anim.Start(r.template.WithText(word)); err != nil {
		r.log.Warn("start animation", "word", word, "error", err)
	}
}
