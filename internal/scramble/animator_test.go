package scramble

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/san-kum/llamademo/internal/sched"
)

type recorder struct {
	frames      []State
	completions []Completion
}

func (r *recorder) OnFrame(s State)         { r.frames = append(r.frames, s) }
func (r *recorder) OnComplete(c Completion) { r.completions = append(r.completions, c) }

func newTestAnimator(t *testing.T) (*Animator, *sched.Manual, *recorder) {
	t.Helper()
	m := sched.NewManual()
	rec := &recorder{}
	a := New(m, WithRand(rand.New(rand.NewPCG(1, 2))), WithObserver(rec))
	return a, m, rec
}

func TestTarget_TotalIterations(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		tick     time.Duration
		want     int
	}{
		{"integral", 1500 * time.Millisecond, 50 * time.Millisecond, 30},
		{"worked example", 100 * time.Millisecond, 50 * time.Millisecond, 2},
		{"rounds down", 120 * time.Millisecond, 50 * time.Millisecond, 2},
		{"rounds up", 130 * time.Millisecond, 50 * time.Millisecond, 3},
		{"half rounds away from zero", 125 * time.Millisecond, 50 * time.Millisecond, 3},
		{"minimum one", 10 * time.Millisecond, 50 * time.Millisecond, 1},
		{"zero duration", 0, 50 * time.Millisecond, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := Target{Text: "x", Alphabet: "X", Duration: tt.duration, TickInterval: tt.tick}
			if got := target.TotalIterations(); got != tt.want {
				t.Errorf("TotalIterations() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTarget_Validate(t *testing.T) {
	tests := []struct {
		name   string
		target Target
		want   error
	}{
		{"default", DefaultTarget("Llamaware"), nil},
		{"empty alphabet", Target{Text: "a", TickInterval: time.Millisecond}, ErrEmptyAlphabet},
		{"zero interval", Target{Text: "a", Alphabet: "X"}, ErrInvalidInterval},
		{"negative duration", Target{Text: "a", Alphabet: "X", TickInterval: time.Millisecond, Duration: -1}, ErrInvalidDuration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.target.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestAnimator_WorkedExample(t *testing.T) {
	a, m, rec := newTestAnimator(t)
	target := Target{Text: "AB", Alphabet: "XY", Duration: 100 * time.Millisecond, TickInterval: 50 * time.Millisecond}
	if err := a.Start(target); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if s := a.Snapshot(); s.Total != 2 || !s.Running {
		t.Fatalf("after start: %+v", s)
	}

	m.Advance(50 * time.Millisecond)
	s := a.Snapshot()
	if s.Iteration != 1 {
		t.Fatalf("Iteration = %d, want 1", s.Iteration)
	}
	display := []rune(s.Display)
	if display[0] != 'A' {
		t.Errorf("position 0 = %q, want 'A'", display[0])
	}
	if display[1] != 'X' && display[1] != 'Y' {
		t.Errorf("position 1 = %q, want one of X or Y", display[1])
	}

	m.Advance(50 * time.Millisecond)
	s = a.Snapshot()
	if s.Display != "AB" || s.Running {
		t.Errorf("final state = %+v, want Display AB and not running", s)
	}
	if len(rec.completions) != 1 || rec.completions[0].Cancelled {
		t.Errorf("completions = %+v, want one natural completion", rec.completions)
	}
	if m.Live() != 0 {
		t.Errorf("Live() = %d, want 0 after completion", m.Live())
	}
}

func TestAnimator_CompletesToTarget(t *testing.T) {
	targets := []string{"Llamaware", "Ingenuity", "a", "██ ▓▒░ box", "  spaced  "}
	for _, text := range targets {
		t.Run(text, func(t *testing.T) {
			a, m, rec := newTestAnimator(t)
			target := Target{Text: text, Alphabet: DefaultAlphabet, Duration: 370 * time.Millisecond, TickInterval: 50 * time.Millisecond}
			if err := a.Start(target); err != nil {
				t.Fatalf("Start() error = %v", err)
			}
			m.Advance(10 * time.Second)

			if got := a.Snapshot().Display; got != text {
				t.Errorf("Display = %q, want %q", got, text)
			}
			for _, f := range rec.frames {
				if len([]rune(f.Display)) != len([]rune(text)) {
					t.Errorf("frame %d length = %d, want %d", f.Iteration, len([]rune(f.Display)), len([]rune(text)))
				}
			}
			if len(rec.completions) != 1 {
				t.Errorf("completions = %d, want 1", len(rec.completions))
			}
		})
	}
}

func TestAnimator_MonotonicSettling(t *testing.T) {
	a, m, rec := newTestAnimator(t)
	text := "Llamaware"
	// single-letter alphabet that never matches the target makes settled
	// positions observable
	target := Target{Text: text, Alphabet: "#", Duration: time.Second, TickInterval: 50 * time.Millisecond}
	if err := a.Start(target); err != nil {
		t.Fatal(err)
	}
	m.Advance(2 * time.Second)

	want := []rune(text)
	settled := make([]bool, len(want))
	prevCount := 0
	for _, f := range rec.frames {
		got := []rune(f.Display)
		count := 0
		for i := range got {
			if settled[i] && got[i] != want[i] {
				t.Fatalf("position %d re-randomised at iteration %d: %q", i, f.Iteration, f.Display)
			}
			if got[i] == want[i] {
				settled[i] = true
				count++
			}
		}
		if count < prevCount {
			t.Fatalf("settled count dropped from %d to %d", prevCount, count)
		}
		prevCount = count
		if strings.Contains(f.Display, "#") {
			idx := strings.IndexRune(f.Display, '#')
			if strings.ContainsFunc(f.Display[idx:], func(r rune) bool { return r != '#' }) {
				t.Errorf("settling is not left to right: %q", f.Display)
			}
		}
	}
}

func TestAnimator_StrictBoundary(t *testing.T) {
	a, m, _ := newTestAnimator(t)
	// total 4, length 4: tick 1 progress 0.25 settles only position 0
	// (position 1 sits exactly on the boundary)
	target := Target{Text: "abcd", Alphabet: "#", Duration: 200 * time.Millisecond, TickInterval: 50 * time.Millisecond}
	if err := a.Start(target); err != nil {
		t.Fatal(err)
	}
	m.Advance(50 * time.Millisecond)
	if got := a.Snapshot().Display; got != "a###" {
		t.Errorf("tick 1 Display = %q, want %q", got, "a###")
	}
	m.Advance(50 * time.Millisecond)
	if got := a.Snapshot().Display; got != "ab##" {
		t.Errorf("tick 2 Display = %q, want %q", got, "ab##")
	}
	if got := a.Snapshot().Settled; got != 2 {
		t.Errorf("tick 2 Settled = %d, want 2", got)
	}
}

func TestAnimator_EmptyTargetCompletesImmediately(t *testing.T) {
	a, m, rec := newTestAnimator(t)
	if err := a.Start(Target{Alphabet: "X", TickInterval: 50 * time.Millisecond, Duration: time.Second}); err != nil {
		t.Fatal(err)
	}
	if a.Running() {
		t.Error("empty target should not be running")
	}
	if m.Live() != 0 {
		t.Errorf("Live() = %d, want 0", m.Live())
	}
	if len(rec.completions) != 1 || rec.completions[0].Ticks != 0 {
		t.Errorf("completions = %+v, want one with zero ticks", rec.completions)
	}
}

func TestAnimator_CancelIsIdempotent(t *testing.T) {
	a, m, rec := newTestAnimator(t)
	if err := a.Start(DefaultTarget("Ingenuity")); err != nil {
		t.Fatal(err)
	}
	m.Advance(100 * time.Millisecond)

	a.Cancel()
	frames := len(rec.frames)
	a.Cancel()
	m.Advance(5 * time.Second)

	s := a.Snapshot()
	if s.Display != "Ingenuity" || s.Running {
		t.Errorf("after cancel: %+v", s)
	}
	if len(rec.frames) != frames {
		t.Errorf("frames after second cancel = %d, want %d", len(rec.frames), frames)
	}
	if len(rec.completions) != 1 || !rec.completions[0].Cancelled {
		t.Errorf("completions = %+v, want one cancelled", rec.completions)
	}
}

func TestAnimator_CancelAfterCompletionIsNoop(t *testing.T) {
	a, m, rec := newTestAnimator(t)
	if err := a.Start(DefaultTarget("Llamaware")); err != nil {
		t.Fatal(err)
	}
	m.Advance(5 * time.Second)
	before := a.Snapshot()
	frames := len(rec.frames)

	a.Cancel()

	if a.Snapshot() != before {
		t.Errorf("cancel after completion changed state: %+v -> %+v", before, a.Snapshot())
	}
	if len(rec.frames) != frames || len(rec.completions) != 1 {
		t.Errorf("cancel after completion notified observers")
	}
}

func TestAnimator_RestartLeavesOneTickSource(t *testing.T) {
	a, m, rec := newTestAnimator(t)
	if err := a.Start(DefaultTarget("Llamaware")); err != nil {
		t.Fatal(err)
	}
	m.Advance(200 * time.Millisecond)
	if err := a.Start(DefaultTarget("Ingenuity")); err != nil {
		t.Fatal(err)
	}

	if m.Live() != 1 {
		t.Errorf("Live() = %d, want 1", m.Live())
	}
	m.Advance(5 * time.Second)

	if got := a.Snapshot().Display; got != "Ingenuity" {
		t.Errorf("Display = %q, want Ingenuity", got)
	}
	if len(rec.completions) != 2 {
		t.Fatalf("completions = %d, want 2", len(rec.completions))
	}
	if !rec.completions[0].Cancelled || rec.completions[0].Text != "Llamaware" {
		t.Errorf("first completion = %+v, want cancelled Llamaware", rec.completions[0])
	}
	if rec.completions[1].Cancelled || rec.completions[1].Ticks != 30 {
		t.Errorf("second completion = %+v, want natural after 30 ticks", rec.completions[1])
	}
}

// restartOnCancel starts a replacement run whenever a run is cancelled.
type restartOnCancel struct {
	a    *Animator
	text string
	err  error
}

func (r *restartOnCancel) OnFrame(State) {}

func (r *restartOnCancel) OnComplete(c Completion) {
	if c.Cancelled {
		r.err = r.a.Start(DefaultTarget(r.text))
	}
}

func TestAnimator_RestartFromCompletionObserver(t *testing.T) {
	a, m, rec := newTestAnimator(t)
	obs := &restartOnCancel{a: a, text: "Nested"}
	a.AddObserver(obs)

	if err := a.Start(DefaultTarget("First")); err != nil {
		t.Fatal(err)
	}
	if err := a.Start(DefaultTarget("Second")); err != nil {
		t.Fatal(err)
	}
	if obs.err != nil {
		t.Fatalf("nested Start() error = %v", obs.err)
	}

	if m.Live() != 1 {
		t.Fatalf("Live() = %d after restart, want 1", m.Live())
	}
	if got := a.Snapshot(); !got.Running || len([]rune(got.Display)) != len("Nested") {
		t.Errorf("snapshot = %+v, want Nested running", got)
	}

	m.Advance(3 * time.Second)

	if m.Live() != 0 {
		t.Errorf("Live() = %d after completion, want 0", m.Live())
	}
	if got := a.Snapshot().Display; got != "Nested" {
		t.Errorf("Display = %q, want Nested", got)
	}
	last := rec.completions[len(rec.completions)-1]
	if last.Cancelled || last.Text != "Nested" {
		t.Errorf("last completion = %+v, want natural Nested", last)
	}
}

func TestAnimator_StartRejectsInvalidTarget(t *testing.T) {
	a, m, _ := newTestAnimator(t)
	if err := a.Start(DefaultTarget("Llamaware")); err != nil {
		t.Fatal(err)
	}
	err := a.Start(Target{Text: "x", TickInterval: time.Millisecond})
	if !errors.Is(err, ErrEmptyAlphabet) {
		t.Errorf("Start() = %v, want ErrEmptyAlphabet", err)
	}
	if !a.Running() || m.Live() != 1 {
		t.Error("rejected start disturbed the active run")
	}
}

func TestAnimator_AdvanceOneTickWithoutScheduler(t *testing.T) {
	a, _, _ := newTestAnimator(t)
	a.AdvanceOneTick()
	if a.Running() {
		t.Error("idle animator started running")
	}

	if err := a.Start(Target{Text: "go", Alphabet: "#", Duration: 150 * time.Millisecond, TickInterval: 50 * time.Millisecond}); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		a.AdvanceOneTick()
	}
	if s := a.Snapshot(); s.Display != "go" || s.Running || s.Iteration != 3 {
		t.Errorf("after manual ticks: %+v", s)
	}
}
