package sched

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FireMsg is delivered by the bubbletea runtime when a scheduled interval
// elapses. Route it to Tea.Dispatch from the model's Update.
type FireMsg struct {
	Handle Handle
	At     time.Time
}

type teaEntry struct {
	fn    func()
	every time.Duration
}

// Tea schedules callbacks through bubbletea's tick commands so that every
// callback runs inside the program's Update loop. Ticks that arrive for a
// cancelled handle are dropped.
type Tea struct {
	next    Handle
	entries map[Handle]*teaEntry
	pending []tea.Cmd
}

func NewTea() *Tea {
	return &Tea{entries: make(map[Handle]*teaEntry)}
}

func (t *Tea) Schedule(fn func(), every time.Duration) Handle {
	if every <= 0 {
		every = time.Millisecond
	}
	t.next++
	h := t.next
	t.entries[h] = &teaEntry{fn: fn, every: every}
	t.pending = append(t.pending, arm(h, every))
	return h
}

func (t *Tea) Cancel(h Handle) {
	delete(t.entries, h)
}

func (t *Tea) Live() int { return len(t.entries) }

// Dispatch runs the callback for msg if it is a FireMsg whose handle is
// still live, and re-arms the handle. It reports whether msg was a FireMsg.
func (t *Tea) Dispatch(msg tea.Msg) bool {
	fm, ok := msg.(FireMsg)
	if !ok {
		return false
	}
	e, live := t.entries[fm.Handle]
	if !live {
		return true
	}
	e.fn()
	if cur, still := t.entries[fm.Handle]; still && cur == e {
		t.pending = append(t.pending, arm(fm.Handle, e.every))
	}
	return true
}

// Flush returns the tick commands queued since the last call.
func (t *Tea) Flush() tea.Cmd {
	if len(t.pending) == 0 {
		return nil
	}
	cmds := t.pending
	t.pending = nil
	return tea.Batch(cmds...)
}

func arm(h Handle, every time.Duration) tea.Cmd {
	return tea.Tick(every, func(at time.Time) tea.Msg {
		return FireMsg{Handle: h, At: at}
	})
}
