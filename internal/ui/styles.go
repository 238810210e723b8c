package ui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ANSI256 palette.
var (
	colorPass  = lipgloss.Color("71")  // green
	colorFail  = lipgloss.Color("167") // red
	colorWarn  = lipgloss.Color("179") // amber
	colorMuted = lipgloss.Color("245") // medium gray
)

// Styler applies colors when enabled and returns text unchanged otherwise.
type Styler struct {
	enabled bool
	pass    lipgloss.Style
	fail    lipgloss.Style
	warn    lipgloss.Style
	muted   lipgloss.Style
}

// NewStyler creates a styler. Pass the result of ShouldUseColor. The color
// decision is made by the caller, so the renderer is pinned to ANSI256
// instead of probing the process's own terminal.
func NewStyler(enabled bool) Styler {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.ANSI256)
	return Styler{
		enabled: enabled,
		pass:    r.NewStyle().Foreground(colorPass),
		fail:    r.NewStyle().Foreground(colorFail),
		warn:    r.NewStyle().Foreground(colorWarn),
		muted:   r.NewStyle().Foreground(colorMuted),
	}
}

func (s Styler) paint(style lipgloss.Style, text string) string {
	if !s.enabled {
		return text
	}
	return style.Render(text)
}

// Pass returns text in the success color.
func (s Styler) Pass(text string) string { return s.paint(s.pass, text) }

// Fail returns text in the failure color.
func (s Styler) Fail(text string) string { return s.paint(s.fail, text) }

// Warn returns text in the warning color.
func (s Styler) Warn(text string) string { return s.paint(s.warn, text) }

// Muted returns text in the muted color.
func (s Styler) Muted(text string) string { return s.paint(s.muted, text) }
