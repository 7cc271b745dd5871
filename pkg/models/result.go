package models

import "time"

// Summary holds counters computed over the final entry set
type Summary struct {
	Files      int   `json:"files" yaml:"files"`
	Dirs       int   `json:"dirs" yaml:"dirs"`
	Symlinks   int   `json:"symlinks" yaml:"symlinks"`
	TotalBytes int64 `json:"total_bytes" yaml:"total_bytes"` // Regular files only
	Skipped    int   `json:"skipped" yaml:"skipped"`         // Unreadable entries and subtrees
}

// Diagnostic records a non-fatal failure recovered during traversal
type Diagnostic struct {
	Path string `json:"path" yaml:"path"`
	Op   string `json:"op" yaml:"op"` // "lstat" or "readdir"
	Err  string `json:"error" yaml:"error"`
}

// ScanResult is the output of one scan
type ScanResult struct {
	Root        string        `json:"root" yaml:"root"`
	Entries     []Entry       `json:"entries" yaml:"entries"`
	Summary     Summary       `json:"summary" yaml:"summary"`
	Truncated   bool          `json:"truncated" yaml:"truncated"`
	Diagnostics []Diagnostic  `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
	StartTime   time.Time     `json:"start_time" yaml:"start_time"`
	Duration    time.Duration `json:"duration" yaml:"duration"`
}

// AddEntry appends an entry and updates the summary counters
func (r *ScanResult) AddEntry(e Entry) {
	r.Entries = append(r.Entries, e)

	switch e.Kind {
	case KindDir:
		r.Summary.Dirs++
	case KindSymlink:
		r.Summary.Symlinks++
	default:
		r.Summary.Files++
		r.Summary.TotalBytes += e.Size
	}
}
