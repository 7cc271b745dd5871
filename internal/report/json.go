package report

import (
	"encoding/json"
	"io"

	"github.com/IvanShishkin/burrow/pkg/models"
)

// entryView adds the derived is_link flag to an entry
type entryView struct {
	models.Entry `yaml:",inline"`
	IsLink       bool `json:"is_link" yaml:"is_link"`
}

// document is the serialized shape shared by the JSON and YAML reports
type document struct {
	Root        string              `json:"root" yaml:"root"`
	Entries     []entryView         `json:"entries" yaml:"entries"`
	Summary     models.Summary      `json:"summary" yaml:"summary"`
	Truncated   bool                `json:"truncated" yaml:"truncated"`
	Diagnostics []models.Diagnostic `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
	Duration    string              `json:"duration" yaml:"duration"`
}

// newDocument converts a result into its serialized form
func newDocument(result *models.ScanResult) document {
	entries := make([]entryView, 0, len(result.Entries))
	for _, e := range result.Entries {
		entries = append(entries, entryView{Entry: e, IsLink: e.IsLink()})
	}

	return document{
		Root:        result.Root,
		Entries:     entries,
		Summary:     result.Summary,
		Truncated:   result.Truncated,
		Diagnostics: result.Diagnostics,
		Duration:    FormatDuration(result.Duration),
	}
}

// renderJSON writes the result as indented JSON
func (g *Generator) renderJSON(w io.Writer, result *models.ScanResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(newDocument(result))
}
