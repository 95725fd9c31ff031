package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type Styles struct {
	Logo          lipgloss.Style
	LogoText      lipgloss.Style
	LogoAnimating lipgloss.Style
	Title         lipgloss.Style
	Window        lipgloss.Style
	WindowTitle   lipgloss.Style
	Prompt        lipgloss.Style
	Input         lipgloss.Style
	Output        lipgloss.Style
	Status        lipgloss.Style
	Error         lipgloss.Style
	Muted         lipgloss.Style
	KeyHint       lipgloss.Style
	TabActive     lipgloss.Style
	Tab           lipgloss.Style
	BarFilled     lipgloss.Style
	BarEmpty      lipgloss.Style
	Controls      [3]lipgloss.Style
}

func NewStyles(t Theme) Styles {
	return NewStylesFor(lipgloss.DefaultRenderer(), t)
}

// NewStylesFor builds styles bound to r, which decides the color profile.
func NewStylesFor(r *lipgloss.Renderer, t Theme) Styles {
	return Styles{
		Logo:          r.NewStyle().Foreground(t.Primary),
		LogoText:      r.NewStyle().Foreground(t.Text),
		LogoAnimating: r.NewStyle().Foreground(t.Primary).Bold(true),
		Title:         r.NewStyle().Foreground(t.Text).Bold(true),
		Window: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),
		WindowTitle: r.NewStyle().Foreground(t.Text).Bold(true),
		Prompt:      r.NewStyle().Foreground(t.Secondary).Bold(true),
		Input:       r.NewStyle().Foreground(t.Text).TabWidth(lipgloss.NoTabConversion),
		Output:      r.NewStyle().Foreground(t.Muted).TabWidth(lipgloss.NoTabConversion),
		Status:      r.NewStyle().Foreground(t.Success),
		Error:       r.NewStyle().Foreground(t.Error),
		Muted:       r.NewStyle().Foreground(t.Muted),
		KeyHint:     r.NewStyle().Foreground(t.Muted).Italic(true),
		TabActive:   r.NewStyle().Foreground(t.Primary).Bold(true).Underline(true),
		Tab:         r.NewStyle().Foreground(t.Muted),
		BarFilled:   r.NewStyle().Foreground(t.Primary),
		BarEmpty:    r.NewStyle().Foreground(t.Border),
		Controls: [3]lipgloss.Style{
			r.NewStyle().Foreground(lipgloss.Color("#ff5f57")),
			r.NewStyle().Foreground(lipgloss.Color("#ffbd2e")),
			r.NewStyle().Foreground(lipgloss.Color("#28ca42")),
		},
	}
}

// ProgressBar renders done/total as a fixed-width bar.
func (s Styles) ProgressBar(done, total, width int) string {
	if width <= 0 {
		return ""
	}
	filled := 0
	if total > 0 {
		filled = done * width / total
	}
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return s.BarFilled.Render(strings.Repeat("━", filled)) + s.BarEmpty.Render(strings.Repeat("─", width-filled))
}

// Lines styles each line of text separately. Rendering a multi-line block
// in one call would pad short lines to the widest one, which changes the
// literal layout of transcript output.
func Lines(style lipgloss.Style, text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line == "" {
			continue
		}
		lines[i] = style.Render(line)
	}
	return strings.Join(lines, "\n")
}
