package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// styles renders terminal accents for one writer. Colors are only emitted
// when the writer is a color-capable terminal and NO_COLOR is unset.
type styles struct {
	title   lipgloss.Style
	label   lipgloss.Style
	muted   lipgloss.Style
	warning lipgloss.Style
}

// Palette.
var (
	accent = lipgloss.Color("#DA702C")
	muted  = lipgloss.Color("245")
	yellow = lipgloss.Color("#F1C40F")
)

func newStyles(env *Env, w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	if env.Getenv("NO_COLOR") != "" {
		r.SetColorProfile(termenv.Ascii)
	}
	return styles{
		title:   r.NewStyle().Foreground(accent).Bold(true),
		label:   r.NewStyle().Bold(true),
		muted:   r.NewStyle().Foreground(muted),
		warning: r.NewStyle().Foreground(yellow).Bold(true),
	}
}
