package ui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/llamademo/internal/logs"
	"github.com/san-kum/llamademo/internal/transcript"
)

// Terminal shows one transcript session at a time in a scrollable window.
type Terminal struct {
	styles    Styles
	sessions  transcript.Collection
	selected  int
	viewport  viewport.Model
	sink      transcript.Sink
	log       *slog.Logger
	status    string
	statusErr bool
}

func NewTerminal(c transcript.Collection, sink transcript.Sink, styles Styles, log *slog.Logger) Terminal {
	if log == nil {
		log = logs.Discard()
	}
	t := Terminal{
		styles:   styles,
		sessions: c,
		viewport: viewport.New(80, 20),
		sink:     sink,
		log:      log,
	}
	t.refresh()
	return t
}

func (t Terminal) Selected() int { return t.selected }

func (t Terminal) Status() (string, bool) { return t.status, t.statusErr }

func (t *Terminal) Resize(width, height int) {
	// window border and title bar
	t.viewport.Width = max(width-4, 10)
	t.viewport.Height = max(height-4, 3)
	t.refresh()
}

func (t *Terminal) Select(i int) {
	n := t.sessions.Len()
	if n == 0 {
		return
	}
	t.selected = ((i % n) + n) % n
	t.status = ""
	t.statusErr = false
	t.refresh()
	t.viewport.GotoTop()
}

// CopySelected exports the current session to the sink. The outcome,
// including a sink error, is reported only through Status.
func (t *Terminal) CopySelected() {
	s, ok := t.sessions.At(t.selected)
	if !ok {
		return
	}
	if t.sink == nil {
		t.status, t.statusErr = "no clipboard available", true
		return
	}
	if err := transcript.Copy(t.sink, s); err != nil {
		t.log.Warn("copy session", "title", s.Title, "error", err)
		t.status, t.statusErr = fmt.Sprintf("copy failed: %v", err), true
		return
	}
	t.log.Info("copied session", "title", s.Title, "commands", len(s.Commands))
	t.status, t.statusErr = fmt.Sprintf("copied %q", s.Title), false
}

func (t Terminal) Update(msg tea.Msg) (Terminal, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab", "right", "l":
			t.Select(t.selected + 1)
			return t, nil
		case "shift+tab", "left", "h":
			t.Select(t.selected - 1)
			return t, nil
		case "c", "y":
			t.CopySelected()
			return t, nil
		}
	}
	var cmd tea.Cmd
	t.viewport, cmd = t.viewport.Update(msg)
	return t, cmd
}

func (t Terminal) View() string {
	s, ok := t.sessions.At(t.selected)
	if !ok {
		return t.styles.Muted.Render("no transcript sessions")
	}

	var b strings.Builder
	b.WriteString(t.styles.Controls[0].Render("●") + " " + t.styles.Controls[1].Render("●") + " " + t.styles.Controls[2].Render("●"))
	b.WriteString("  " + t.styles.WindowTitle.Render(s.Title))
	b.WriteString(t.styles.Muted.Render(fmt.Sprintf("  %d/%d", t.selected+1, t.sessions.Len())) + "\n")
	b.WriteString(t.viewport.View())

	out := t.styles.Window.Render(b.String()) + "\n"
	switch {
	case t.status == "":
	case t.statusErr:
		out += t.styles.Error.Render(t.status) + "\n"
	default:
		out += t.styles.Status.Render(t.status) + "\n"
	}
	return out
}

func (t *Terminal) refresh() {
	s, ok := t.sessions.At(t.selected)
	if !ok {
		t.viewport.SetContent("")
		return
	}
	t.viewport.SetContent(RenderSession(s, t.styles, "$"))
}

// RenderSession lays out every command of s in order. Output text is styled
// line by line and otherwise left exactly as recorded.
func RenderSession(s transcript.Session, styles Styles, prompt string) string {
	var b strings.Builder
	for i, cmd := range s.Commands {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(styles.Prompt.Render(prompt) + " " + styles.Input.Render(cmd.Input) + "\n")
		b.WriteString(Lines(styles.Output, cmd.Output))
	}
	return b.String()
}
