// Package filter implements the composable entry predicates applied after
// traversal. Directories always pass so the tree structure stays intact.
package filter

import (
	"strings"

	"github.com/IvanShishkin/burrow/pkg/models"
)

// Filter is a single predicate over entries
type Filter interface {
	// Name returns a short identifier used in logs
	Name() string
	// Matches reports whether the entry should be kept
	Matches(entry models.Entry) bool
}

// Extension keeps entries whose name ends with Suffix
type Extension struct {
	Suffix          string
	CaseInsensitive bool
}

func (f Extension) Name() string { return "extension" }

func (f Extension) Matches(entry models.Entry) bool {
	if f.CaseInsensitive {
		return strings.HasSuffix(strings.ToLower(entry.Name), strings.ToLower(f.Suffix))
	}
	return strings.HasSuffix(entry.Name, f.Suffix)
}

// MinSize keeps entries of at least Bytes bytes
type MinSize struct {
	Bytes int64
}

func (f MinSize) Name() string { return "min-size" }

func (f MinSize) Matches(entry models.Entry) bool {
	return entry.Size >= f.Bytes
}

// Keyword keeps entries whose name contains Substring
type Keyword struct {
	Substring       string
	CaseInsensitive bool
}

func (f Keyword) Name() string { return "keyword" }

func (f Keyword) Matches(entry models.Entry) bool {
	if f.CaseInsensitive {
		return strings.Contains(strings.ToLower(entry.Name), strings.ToLower(f.Substring))
	}
	return strings.Contains(entry.Name, f.Substring)
}

// Pipeline folds its filters with logical AND
type Pipeline struct {
	filters []Filter
}

// NewPipeline creates a pipeline from the given filters
func NewPipeline(filters ...Filter) *Pipeline {
	return &Pipeline{filters: filters}
}

// Add appends a filter to the pipeline
func (p *Pipeline) Add(f Filter) {
	p.filters = append(p.filters, f)
}

// Len returns the number of active filters
func (p *Pipeline) Len() int {
	return len(p.filters)
}

// Keep reports whether entry passes every filter. Directories always pass;
// symlinks are filtered like files.
func (p *Pipeline) Keep(entry models.Entry) bool {
	if entry.IsDir() {
		return true
	}
	for _, f := range p.filters {
		if !f.Matches(entry) {
			return false
		}
	}
	return true
}

// Apply returns the entries that pass, preserving order.
// The input slice is not modified.
func (p *Pipeline) Apply(entries []models.Entry) []models.Entry {
	if len(p.filters) == 0 {
		return entries
	}

	kept := make([]models.Entry, 0, len(entries))
	for _, e := range entries {
		if p.Keep(e) {
			kept = append(kept, e)
		}
	}
	return kept
}

// FromSpec builds the pipeline for the non-gitignore parts of spec
func FromSpec(spec models.FilterSpec) *Pipeline {
	p := NewPipeline()
	if spec.Extension != "" {
		p.Add(Extension{Suffix: spec.Extension, CaseInsensitive: spec.CaseInsensitive})
	}
	if spec.MinSize > 0 {
		p.Add(MinSize{Bytes: spec.MinSize})
	}
	if spec.Keyword != "" {
		p.Add(Keyword{Substring: spec.Keyword, CaseInsensitive: spec.CaseInsensitive})
	}
	return p
}
