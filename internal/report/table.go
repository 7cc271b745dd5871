package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/IvanShishkin/burrow/pkg/models"
	"github.com/mattn/go-runewidth"
)

const (
	timeLayout   = "2006-01-02 15:04:05"
	maxNameWidth = 60
	columnGap    = "  "
)

// typeLabel returns the table label for an entry kind
func typeLabel(k models.Kind) string {
	switch k {
	case models.KindDir:
		return "DIR"
	case models.KindSymlink:
		return "LINK"
	default:
		return "FILE"
	}
}

// displayName returns the name shown for an entry. Recursive listings
// use the path relative to the root so rows stay unambiguous.
func displayName(e models.Entry) string {
	name := e.RelPath
	if name == "" {
		name = e.Name
	}
	if e.IsLink() && e.LinkTarget != "" {
		name += " -> " + e.LinkTarget
	}
	return name
}

// renderTable writes one row per entry: Type, Name, Size, Last Modified
func (g *Generator) renderTable(w io.Writer, result *models.ScanResult) error {
	p := newPalette(w, g.opts.Color)

	headers := []string{"TYPE", "NAME", "SIZE", "LAST MODIFIED"}
	rows := make([][]string, 0, len(result.Entries))
	for _, e := range result.Entries {
		rows = append(rows, []string{
			typeLabel(e.Kind),
			runewidth.Truncate(displayName(e), maxNameWidth, "…"),
			g.formatSize(e.Size),
			e.ModTime.Format(timeLayout),
		})
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if cw := runewidth.StringWidth(cell); cw > widths[i] {
				widths[i] = cw
			}
		}
	}

	var sb strings.Builder

	cells := make([]string, len(headers))
	for i, h := range headers {
		cells[i] = p.header.Render(runewidth.FillRight(h, widths[i]))
	}
	sb.WriteString(strings.Join(cells, columnGap) + "\n")

	for i := range headers {
		cells[i] = p.muted.Render(strings.Repeat("─", widths[i]))
	}
	sb.WriteString(strings.Join(cells, columnGap) + "\n")

	for n, row := range rows {
		kind := result.Entries[n].Kind
		cells[0] = p.kind(kind).Render(runewidth.FillRight(row[0], widths[0]))
		cells[1] = p.kind(kind).Render(runewidth.FillRight(row[1], widths[1]))
		cells[2] = runewidth.FillLeft(row[2], widths[2])
		cells[3] = p.muted.Render(runewidth.FillRight(row[3], widths[3]))
		sb.WriteString(strings.Join(cells, columnGap) + "\n")
	}

	sb.WriteString(g.footer(p, result))

	_, err := io.WriteString(w, sb.String())
	return err
}

// footer summarizes the result below table and tree output
func (g *Generator) footer(p palette, result *models.ScanResult) string {
	var sb strings.Builder
	s := result.Summary

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("%d files, %d dirs, %d symlinks, %s total",
		s.Files, s.Dirs, s.Symlinks, byteTotal(s.TotalBytes, g.opts.HumanSizes)))
	if s.Skipped > 0 {
		sb.WriteString(fmt.Sprintf(", %d skipped", s.Skipped))
	}
	sb.WriteString(p.muted.Render(fmt.Sprintf(" (%s)", FormatDuration(result.Duration))))
	sb.WriteString("\n")

	if result.Truncated {
		sb.WriteString(p.warn.Render(fmt.Sprintf("⚠ Listing truncated after %d entries, results are incomplete", len(result.Entries))))
		sb.WriteString("\n")
	}

	return sb.String()
}

// byteTotal formats the summary byte count
func byteTotal(total int64, human bool) string {
	if human {
		return humanSize(total)
	}
	return fmt.Sprintf("%d bytes", total)
}
