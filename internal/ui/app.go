// Package ui is the bubbletea rendering surface for the hero banner and the
// transcript viewer.
package ui

import (
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/llamademo/internal/logs"
	"github.com/san-kum/llamademo/internal/sched"
)

type view int

const (
	viewHero view = iota
	viewTerminal
)

var viewNames = map[view]string{
	viewHero:     "hero",
	viewTerminal: "terminal",
}

// App hosts the hero and terminal views. Either may be nil, but not both.
// All scheduled callbacks run inside Update through the shared Tea
// scheduler.
type App struct {
	sched    *sched.Tea
	styles   Styles
	hero     *Hero
	terminal *Terminal
	active   view
	width    int
	height   int
	log      *slog.Logger
}

func NewApp(s *sched.Tea, styles Styles, hero *Hero, terminal *Terminal, log *slog.Logger) App {
	if log == nil {
		log = logs.Discard()
	}
	a := App{
		sched:    s,
		styles:   styles,
		hero:     hero,
		terminal: terminal,
		width:    80,
		height:   24,
		log:      log,
	}
	if hero == nil {
		a.active = viewTerminal
	}
	return a
}

func (a App) Init() tea.Cmd {
	if a.hero != nil {
		a.hero.Start()
	}
	return a.sched.Flush()
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sched.FireMsg:
		a.sched.Dispatch(msg)
		return a, a.sched.Flush()
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.terminal != nil {
			a.terminal.Resize(msg.Width, msg.Height-3)
		}
		return a, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			a.teardown()
			return a, tea.Quit
		case "1":
			if a.hero != nil {
				a.active = viewHero
			}
			return a, nil
		case "2":
			if a.terminal != nil {
				a.active = viewTerminal
			}
			return a, nil
		}
	}

	if a.active == viewTerminal && a.terminal != nil {
		t, cmd := a.terminal.Update(msg)
		*a.terminal = t
		return a, cmd
	}
	return a, nil
}

func (a App) teardown() {
	if a.hero != nil {
		a.hero.Stop()
		a.log.Debug("hero stopped", "rotations", a.hero.Rotator().Rotations(), "live", a.sched.Live())
	}
}

func (a App) View() string {
	var b strings.Builder
	b.WriteString(a.tabs() + "\n\n")

	switch a.active {
	case viewHero:
		b.WriteString(a.hero.View(a.width))
	case viewTerminal:
		b.WriteString(a.terminal.View())
	}

	b.WriteString("\n" + a.styles.KeyHint.Render(a.hints()) + "\n")
	return b.String()
}

func (a App) tabs() string {
	var parts []string
	for _, v := range []view{viewHero, viewTerminal} {
		if (v == viewHero && a.hero == nil) || (v == viewTerminal && a.terminal == nil) {
			continue
		}
		label := string(rune('1'+int(v))) + " " + viewNames[v]
		if v == a.active {
			parts = append(parts, a.styles.TabActive.Render(label))
		} else {
			parts = append(parts, a.styles.Tab.Render(label))
		}
	}
	return "  " + strings.Join(parts, "   ")
}

func (a App) hints() string {
	if a.active == viewTerminal {
		return "  ←→ session   ↑↓ scroll   c copy   1/2 switch   q quit"
	}
	return "  1/2 switch   q quit"
}

// Run starts the program and blocks until it exits. The hero is torn down
// on every exit path.
func Run(a App, opts ...tea.ProgramOption) error {
	defer a.teardown()
	_, err := tea.NewProgram(a, opts...).Run()
	return err
}
