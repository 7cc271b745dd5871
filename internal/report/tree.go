package report

import (
	"io"
	"strings"

	"github.com/IvanShishkin/burrow/pkg/models"
)

// treePrefix returns the marker for an entry kind
func treePrefix(k models.Kind) string {
	switch k {
	case models.KindDir:
		return "[D]"
	case models.KindSymlink:
		return "[L]"
	default:
		return "[F]"
	}
}

// lastSiblings marks the entries that are the last child of their parent.
// entries must be in pre-order with depth annotations.
func lastSiblings(entries []models.Entry) []bool {
	last := make([]bool, len(entries))
	seen := make(map[int]bool)

	for i := len(entries) - 1; i >= 0; i-- {
		d := entries[i].Depth
		for depth := range seen {
			if depth > d {
				delete(seen, depth)
			}
		}
		last[i] = !seen[d]
		seen[d] = true
	}
	return last
}

// renderTree writes one line per entry indented by depth
func (g *Generator) renderTree(w io.Writer, result *models.ScanResult) error {
	p := newPalette(w, g.opts.Color)
	last := lastSiblings(result.Entries)

	var sb strings.Builder
	sb.WriteString(p.header.Render(result.Root))
	sb.WriteString("\n")

	// open[d] is true while the ancestor at depth d has siblings below it
	var open []bool
	for i, e := range result.Entries {
		depth := e.Depth
		if depth < 1 {
			depth = 1
		}
		for len(open) < depth {
			open = append(open, false)
		}

		for level := 1; level < depth; level++ {
			if open[level-1] {
				sb.WriteString("│   ")
			} else {
				sb.WriteString("    ")
			}
		}
		if last[i] {
			sb.WriteString("└── ")
		} else {
			sb.WriteString("├── ")
		}
		open[depth-1] = !last[i]

		name := e.Name
		if e.IsLink() && e.LinkTarget != "" {
			name += " -> " + e.LinkTarget
		}
		sb.WriteString(p.kind(e.Kind).Render(treePrefix(e.Kind) + " " + name))
		if e.IsFile() && g.opts.HumanSizes {
			sb.WriteString(p.muted.Render(" (" + humanSize(e.Size) + ")"))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(g.footer(p, result))

	_, err := io.WriteString(w, sb.String())
	return err
}
