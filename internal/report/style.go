package report

import (
	"io"

	"github.com/IvanShishkin/burrow/pkg/models"
	"github.com/charmbracelet/lipgloss"
	units "github.com/docker/go-units"
	"github.com/muesli/termenv"
)

// palette holds the styles used by the console renderers
type palette struct {
	dir    lipgloss.Style
	link   lipgloss.Style
	file   lipgloss.Style
	header lipgloss.Style
	muted  lipgloss.Style
	warn   lipgloss.Style
}

// newPalette creates styles bound to w. In auto mode color is used only
// when w is a terminal.
func newPalette(w io.Writer, mode string) palette {
	r := lipgloss.NewRenderer(w)
	switch mode {
	case "always":
		r.SetColorProfile(termenv.ANSI256)
	case "never":
		r.SetColorProfile(termenv.Ascii)
	}

	return palette{
		dir:    r.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		link:   r.NewStyle().Foreground(lipgloss.Color("14")),
		file:   r.NewStyle(),
		header: r.NewStyle().Bold(true),
		muted:  r.NewStyle().Foreground(lipgloss.Color("245")),
		warn:   r.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
	}
}

// kind returns the style for an entry kind
func (p palette) kind(k models.Kind) lipgloss.Style {
	switch k {
	case models.KindDir:
		return p.dir
	case models.KindSymlink:
		return p.link
	default:
		return p.file
	}
}

// humanSize formats bytes with binary units, e.g. 1.5KiB
func humanSize(size int64) string {
	return units.BytesSize(float64(size))
}
