package sched

import (
	"context"
	"time"
)

type entry struct {
	fn    func()
	every time.Duration
	due   time.Duration
}

// Manual is a fake clock. Callbacks fire only from Advance, on the caller's
// goroutine, ordered by due time and then by handle.
type Manual struct {
	now     time.Duration
	next    Handle
	entries map[Handle]*entry
}

func NewManual() *Manual {
	return &Manual{entries: make(map[Handle]*entry)}
}

func (m *Manual) Schedule(fn func(), every time.Duration) Handle {
	if every <= 0 {
		every = time.Millisecond
	}
	m.next++
	m.entries[m.next] = &entry{fn: fn, every: every, due: m.now + every}
	return m.next
}

func (m *Manual) Cancel(h Handle) {
	delete(m.entries, h)
}

func (m *Manual) Live() int { return len(m.entries) }

func (m *Manual) Now() time.Duration { return m.now }

// Advance moves the clock forward by d, firing every callback that falls due.
func (m *Manual) Advance(d time.Duration) {
	end := m.now + d
	for {
		_, e := m.earliest(end)
		if e == nil {
			break
		}
		m.now = e.due
		e.due += e.every
		e.fn()
	}
	m.now = end
}

func (m *Manual) earliest(limit time.Duration) (Handle, *entry) {
	var (
		best  Handle
		found *entry
	)
	for h, e := range m.entries {
		if e.due > limit {
			continue
		}
		if found == nil || e.due < found.due || (e.due == found.due && h < best) {
			best, found = h, e
		}
	}
	return best, found
}

// Drive advances m in real time by step on every tick of a wall-clock
// ticker until ctx is done. All callbacks run on the calling goroutine.
func Drive(ctx context.Context, m *Manual, step time.Duration) error {
	ticker := time.NewTicker(step)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			m.Advance(step)
		}
	}
}
