package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/IvanShishkin/burrow/pkg/models"
	"go.uber.org/zap"
)

// Options selects the output format and destination
type Options struct {
	Format     string // table, tree, json, yaml, md
	OutputFile string // empty writes to the generator's output (stdout)
	Color      string // auto, always, never
	HumanSizes bool
}

// FormatDuration formats duration to a human-readable string with max 2 decimal places
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.2fms", float64(d.Nanoseconds())/1e6)
	} else if d < time.Minute {
		return fmt.Sprintf("%.2fs", d.Seconds())
	} else if d < time.Hour {
		mins := int(d.Minutes())
		secs := d.Seconds() - float64(mins*60)
		return fmt.Sprintf("%dm%.2fs", mins, secs)
	}
	hours := int(d.Hours())
	mins := int(d.Minutes()) - hours*60
	secs := d.Seconds() - float64(hours*3600) - float64(mins*60)
	return fmt.Sprintf("%dh%dm%.2fs", hours, mins, secs)
}

// Generator renders scan results in various formats
type Generator struct {
	opts   Options
	logger *zap.Logger
	out    io.Writer
}

// NewGenerator creates a new report generator
func NewGenerator(opts Options, logger *zap.Logger) (*Generator, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Format == "" {
		opts.Format = "table"
	}
	if opts.Color == "" {
		opts.Color = "auto"
	}

	switch opts.Format {
	case "table", "tree", "json", "yaml", "md", "markdown":
	default:
		return nil, fmt.Errorf("unknown report format: %s", opts.Format)
	}

	return &Generator{
		opts:   opts,
		logger: logger,
		out:    os.Stdout,
	}, nil
}

// SetOutput replaces the writer used when no output file is configured
func (g *Generator) SetOutput(w io.Writer) {
	g.out = w
}

// Generate writes the report. When an output file is configured its
// absolute path is returned; otherwise the path is empty.
func (g *Generator) Generate(result *models.ScanResult) (string, error) {
	if g.opts.OutputFile == "" {
		return "", g.Render(g.out, result)
	}

	g.logger.Info("Generating report",
		zap.String("format", g.opts.Format),
		zap.String("output", g.opts.OutputFile))

	f, err := os.Create(g.opts.OutputFile)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", g.opts.OutputFile, err)
	}

	if err := g.Render(f, result); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", g.opts.OutputFile, err)
	}

	absPath, err := filepath.Abs(g.opts.OutputFile)
	if err != nil {
		return g.opts.OutputFile, nil
	}
	return absPath, nil
}

// Render writes the report for result to w in the configured format
func (g *Generator) Render(w io.Writer, result *models.ScanResult) error {
	var err error
	switch g.opts.Format {
	case "table":
		err = g.renderTable(w, result)
	case "tree":
		err = g.renderTree(w, result)
	case "json":
		err = g.renderJSON(w, result)
	case "yaml":
		err = g.renderYAML(w, result)
	case "md", "markdown":
		err = g.renderMarkdown(w, result)
	}

	if err != nil {
		return fmt.Errorf("failed to generate %s report: %w", g.opts.Format, err)
	}
	return nil
}

// formatSize renders a byte count, optionally humanized
func (g *Generator) formatSize(size int64) string {
	if g.opts.HumanSizes {
		return humanSize(size)
	}
	return fmt.Sprintf("%d", size)
}
