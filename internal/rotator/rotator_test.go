package rotator_test

import (
	"math/rand/v2"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/llamademo/internal/rotator"
	"github.com/san-kum/llamademo/internal/sched"
	"github.com/san-kum/llamademo/internal/scramble"
)

type fakeAnimator struct {
	started   []string
	cancelled int
}

func (f *fakeAnimator) Start(t scramble.Target) error {
	f.started = append(f.started, t.Text)
	return nil
}

func (f *fakeAnimator) Cancel() { f.cancelled++ }

const period = 4 * time.Second

var _ = Describe("Rotator", func() {
	var (
		clock *sched.Manual
		anim  *fakeAnimator
		tmpl  scramble.Target
	)

	BeforeEach(func() {
		clock = sched.NewManual()
		anim = &fakeAnimator{}
		tmpl = scramble.DefaultTarget("")
	})

	Describe("New", func() {
		It("rejects an empty word list", func() {
			_, err := rotator.New(clock, anim, nil, period, tmpl)
			Expect(err).To(MatchError(rotator.ErrNoWords))
		})

		It("rejects a non-positive period", func() {
			_, err := rotator.New(clock, anim, []string{"a"}, 0, tmpl)
			Expect(err).To(MatchError(rotator.ErrInvalidPeriod))
		})

		It("rejects an invalid template", func() {
			tmpl.Alphabet = ""
			_, err := rotator.New(clock, anim, []string{"a"}, period, tmpl)
			Expect(err).To(MatchError(scramble.ErrEmptyAlphabet))
		})

		It("copies the word list", func() {
			words := []string{"Llamaware", "Ingenuity"}
			r, err := rotator.New(clock, anim, words, period, tmpl)
			Expect(err).NotTo(HaveOccurred())
			words[1] = "changed"
			Expect(r.Words()).To(Equal([]string{"Llamaware", "Ingenuity"}))
		})
	})

	Describe("rotation", func() {
		var r *rotator.Rotator

		BeforeEach(func() {
			var err error
			r, err = rotator.New(clock, anim, []string{"Llamaware", "Ingenuity"}, period, tmpl)
			Expect(err).NotTo(HaveOccurred())
		})

		It("starts at the first word without animating", func() {
			Expect(r.Index()).To(Equal(0))
			Expect(r.Current()).To(Equal("Llamaware"))
			r.StartRotating()
			Expect(anim.started).To(BeEmpty())
		})

		It("tracks k mod len after k ticks and starts the animator on each word", func() {
			r.StartRotating()
			for k := 1; k <= 5; k++ {
				clock.Advance(period)
				Expect(r.Index()).To(Equal(k % 2))
				Expect(anim.started).To(HaveLen(k))
				Expect(anim.started[k-1]).To(Equal(r.Current()))
			}
			Expect(anim.started).To(Equal([]string{"Ingenuity", "Llamaware", "Ingenuity", "Llamaware", "Ingenuity"}))
			Expect(r.Rotations()).To(Equal(5))
		})

		It("does not fire before the period elapses", func() {
			r.StartRotating()
			clock.Advance(period - time.Millisecond)
			Expect(anim.started).To(BeEmpty())
		})

		It("ignores a second StartRotating", func() {
			r.StartRotating()
			r.StartRotating()
			Expect(clock.Live()).To(Equal(1))
			clock.Advance(period)
			Expect(anim.started).To(HaveLen(1))
		})

		It("stops idempotently", func() {
			r.StartRotating()
			clock.Advance(period)
			r.StopRotating()
			r.StopRotating()
			clock.Advance(10 * period)
			Expect(anim.started).To(HaveLen(1))
			Expect(r.Active()).To(BeFalse())
		})

		It("cancels the animator on teardown", func() {
			r.StartRotating()
			r.Teardown()
			Expect(anim.cancelled).To(Equal(1))
			Expect(clock.Live()).To(BeZero())
		})
	})

	It("re-triggers the same word for a single-element list", func() {
		r, err := rotator.New(clock, anim, []string{"Llamaware"}, period, tmpl)
		Expect(err).NotTo(HaveOccurred())
		r.StartRotating()
		clock.Advance(3 * period)
		Expect(r.Index()).To(Equal(0))
		Expect(anim.started).To(Equal([]string{"Llamaware", "Llamaware", "Llamaware"}))
	})

	It("reports each rotation before the animator starts", func() {
		var seen []int
		r, err := rotator.New(clock, anim, []string{"a", "b", "c"}, period, tmpl,
			rotator.WithOnRotate(func(i int, word string) {
				seen = append(seen, i)
				Expect(anim.started).To(HaveLen(len(seen) - 1))
			}))
		Expect(err).NotTo(HaveOccurred())
		r.StartRotating()
		clock.Advance(3 * period)
		Expect(seen).To(Equal([]int{1, 2, 0}))
	})

	Context("with a scramble animator", func() {
		var (
			a      *scramble.Animator
			r      *rotator.Rotator
			frames []scramble.State
		)

		BeforeEach(func() {
			frames = nil
			a = scramble.New(clock,
				scramble.WithRand(rand.New(rand.NewPCG(7, 7))),
				scramble.WithObserver(scramble.ObserverFunc(func(s scramble.State) {
					frames = append(frames, s)
				})))
			var err error
			r, err = rotator.New(clock, a, []string{"Llamaware", "Ingenuity"}, period, scramble.DefaultTarget(""))
			Expect(err).NotTo(HaveOccurred())
		})

		It("settles each word between rotations", func() {
			r.StartRotating()
			clock.Advance(period + 2*time.Second)
			Expect(a.Snapshot().Display).To(Equal("Ingenuity"))
			clock.Advance(period)
			Expect(a.Snapshot().Display).To(Equal("Llamaware"))
		})

		It("restarts cleanly when rotation outpaces the animation", func() {
			fast, err := rotator.New(clock, a, []string{"Llamaware", "Ingenuity"}, 500*time.Millisecond, scramble.DefaultTarget(""))
			Expect(err).NotTo(HaveOccurred())
			fast.StartRotating()
			clock.Advance(1200 * time.Millisecond)
			Expect(a.Running()).To(BeTrue())
			Expect(clock.Live()).To(Equal(2))
			fast.Teardown()
		})

		It("leaves no live handles after teardown mid-run", func() {
			r.StartRotating()
			clock.Advance(period + 200*time.Millisecond)
			Expect(a.Running()).To(BeTrue())

			r.Teardown()
			count := len(frames)
			clock.Advance(10 * period)

			Expect(clock.Live()).To(BeZero())
			Expect(a.Running()).To(BeFalse())
			Expect(a.Snapshot().Display).To(Equal("Ingenuity"))
			Expect(frames).To(HaveLen(count))
		})
	})
})
