package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/IvanShishkin/burrow/pkg/models"
)

// renderMarkdown writes a Markdown report
func (g *Generator) renderMarkdown(w io.Writer, result *models.ScanResult) error {
	var sb strings.Builder
	s := result.Summary

	sb.WriteString("# Burrow Report\n\n")

	// Summary
	sb.WriteString("## Summary\n\n")
	sb.WriteString("| Parameter | Value |\n")
	sb.WriteString("|-----------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Root | `%s` |\n", result.Root))
	sb.WriteString(fmt.Sprintf("| Files | %d |\n", s.Files))
	sb.WriteString(fmt.Sprintf("| Directories | %d |\n", s.Dirs))
	sb.WriteString(fmt.Sprintf("| Symlinks | %d |\n", s.Symlinks))
	sb.WriteString(fmt.Sprintf("| Total Size | %s |\n", byteTotal(s.TotalBytes, g.opts.HumanSizes)))
	sb.WriteString(fmt.Sprintf("| Skipped | %d |\n", s.Skipped))
	sb.WriteString(fmt.Sprintf("| Duration | %s |\n", FormatDuration(result.Duration)))
	sb.WriteString("\n")

	if result.Truncated {
		sb.WriteString("> ⚠️ **Listing truncated**: the entry cap was reached and results are incomplete.\n\n")
	}

	if len(result.Entries) == 0 {
		sb.WriteString("> Directory is empty.\n")
		_, err := io.WriteString(w, sb.String())
		return err
	}

	// Entries
	sb.WriteString("## Entries\n\n")
	sb.WriteString("| Type | Name | Size | Last Modified |\n")
	sb.WriteString("|------|------|-----:|---------------|\n")
	for _, e := range result.Entries {
		sb.WriteString(fmt.Sprintf("| %s | `%s` | %s | %s |\n",
			typeLabel(e.Kind),
			escapeMarkdown(displayName(e)),
			g.formatSize(e.Size),
			e.ModTime.Format(timeLayout)))
	}

	if len(result.Diagnostics) > 0 {
		sb.WriteString("\n## Skipped\n\n")
		sb.WriteString("| Path | Operation | Error |\n")
		sb.WriteString("|------|-----------|-------|\n")
		for _, d := range result.Diagnostics {
			sb.WriteString(fmt.Sprintf("| `%s` | %s | %s |\n",
				escapeMarkdown(d.Path), d.Op, escapeMarkdown(d.Err)))
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// escapeMarkdown keeps pipes and backticks from breaking table cells
func escapeMarkdown(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	return strings.ReplaceAll(s, "`", "'")
}
