package models

import "fmt"

// DefaultMaxEntries is the safety cap used when a request does not set one
const DefaultMaxEntries = 5000

// SortKey selects the ordering applied to siblings
type SortKey string

const (
	SortNone     SortKey = ""
	SortName     SortKey = "name"
	SortSize     SortKey = "size"
	SortModified SortKey = "modified"
)

// ParseSortKey converts user input into a SortKey
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(s) {
	case SortNone, SortName, SortSize, SortModified:
		return SortKey(s), nil
	case "mtime", "time":
		return SortModified, nil
	default:
		return SortNone, fmt.Errorf("unknown sort key %q (want name, size or modified)", s)
	}
}

// FilterSpec holds the optional filter settings of a request.
// Zero values mean the filter is inactive.
type FilterSpec struct {
	Extension        string // Required name suffix, e.g. ".txt"
	MinSize          int64  // Inclusive lower bound on size in bytes
	Keyword          string // Required substring of the name
	CaseInsensitive  bool   // Applies to Extension and Keyword
	RespectGitignore bool   // Drop files matched by <root>/.gitignore
}

// Active reports whether any filter is configured
func (f FilterSpec) Active() bool {
	return f.Extension != "" || f.MinSize > 0 || f.Keyword != "" || f.RespectGitignore
}

// ScanRequest is the immutable configuration of a single scan
type ScanRequest struct {
	Root       string     // Directory to scan
	Recursive  bool       // Descend into subdirectories
	MaxDepth   int        // 0 = unbounded; only used when Recursive
	ShowHidden bool       // Include dot entries
	MaxEntries int        // Safety cap on visited entries
	Filters    FilterSpec // Filter pipeline settings
	Sort       SortKey    // Sibling ordering; SortNone keeps traversal order
	SortDirs   bool       // Sort directories among siblings too
}

// DepthLimit returns the deepest level the walker may emit,
// or 0 when there is no limit
func (r ScanRequest) DepthLimit() int {
	if !r.Recursive {
		return 1
	}
	if r.MaxDepth < 0 {
		return 0
	}
	return r.MaxDepth
}

// EntryCap returns the effective safety cap
func (r ScanRequest) EntryCap() int {
	if r.MaxEntries <= 0 {
		return DefaultMaxEntries
	}
	return r.MaxEntries
}
