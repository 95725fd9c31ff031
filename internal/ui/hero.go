package ui

import (
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/llamademo/internal/rotator"
	"github.com/san-kum/llamademo/internal/sched"
	"github.com/san-kum/llamademo/internal/scramble"
	"github.com/san-kum/llamademo/internal/transcript"
)

const heroTagline = "AI Agent for Developers"

var logoRows = []string{
	"██  ██  ██",
	"  ██  ██  ",
}

// heroFrame is the animator observer backing the hero view.
type heroFrame struct {
	state scramble.State
}

func (f *heroFrame) OnFrame(s scramble.State)       { f.state = s }
func (f *heroFrame) OnComplete(scramble.Completion) {}

type HeroOptions struct {
	Words  []string
	Period time.Duration
	Target scramble.Target
	Rand   *rand.Rand
	Logger *slog.Logger
	// Title overrides the tablet window title.
	Title string
}

// Hero is the rotating scramble banner.
type Hero struct {
	styles  Styles
	anim    *scramble.Animator
	rot     *rotator.Rotator
	frame   *heroFrame
	preview transcript.Session
}

func NewHero(s sched.Scheduler, styles Styles, opts HeroOptions) (*Hero, error) {
	frame := &heroFrame{}
	animOpts := []scramble.Option{scramble.WithObserver(frame)}
	if opts.Rand != nil {
		animOpts = append(animOpts, scramble.WithRand(opts.Rand))
	}
	anim := scramble.New(s, animOpts...)

	var rotOpts []rotator.Option
	if opts.Logger != nil {
		rotOpts = append(rotOpts, rotator.WithLogger(opts.Logger))
	}
	rot, err := rotator.New(s, anim, opts.Words, opts.Period, opts.Target, rotOpts...)
	if err != nil {
		return nil, err
	}
	frame.state = scramble.State{Display: rot.Current()}

	preview := transcript.HeroPreview()
	if opts.Title != "" {
		preview.Title = opts.Title
	}
	return &Hero{
		styles:  styles,
		anim:    anim,
		rot:     rot,
		frame:   frame,
		preview: preview,
	}, nil
}

func (h *Hero) Start() { h.rot.StartRotating() }

// Stop tears the banner down. No animator or rotator callback runs after it
// returns.
func (h *Hero) Stop() { h.rot.Teardown() }

func (h *Hero) Display() scramble.State { return h.frame.state }

func (h *Hero) Rotator() *rotator.Rotator { return h.rot }

func (h *Hero) View(width int) string {
	var b strings.Builder

	for _, row := range logoRows {
		b.WriteString(h.styles.Logo.Render(row) + "\n")
	}
	b.WriteString("\n")

	s := h.frame.state
	if s.Running {
		b.WriteString(h.styles.LogoAnimating.Render(spaced(s.Display)) + "\n")
		b.WriteString(h.styles.ProgressBar(s.Settled, len([]rune(s.Display)), 18) + "\n")
	} else {
		b.WriteString(h.styles.LogoText.Render(s.Display) + "\n\n")
	}
	b.WriteString("\n" + h.styles.Title.Render(heroTagline) + "\n\n")

	var tablet strings.Builder
	tablet.WriteString(h.styles.WindowTitle.Render(h.preview.Title) + "  " + h.styles.Status.Render("cross-platform mode") + "\n\n")
	tablet.WriteString(h.styles.Prompt.Render("llamaware v2.1.0 - enterprise platform ready") + "\n")
	tablet.WriteString(h.styles.Status.Render("16 enterprise features | linux | macos | windows") + "\n\n")
	tablet.WriteString(RenderSession(h.preview, h.styles, "›"))
	b.WriteString(h.styles.Window.Render(tablet.String()))

	block := b.String()
	if width <= 0 {
		return block
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, block)
}

// spaced mirrors the wide letter spacing used while a word is scrambling.
func spaced(s string) string {
	runes := []rune(s)
	parts := make([]string, len(runes))
	for i, r := range runes {
		parts[i] = string(r)
	}
	return strings.Join(parts, " ")
}
