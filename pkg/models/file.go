package models

import (
	"encoding/json"
	"time"
)

// Kind is the classification of a filesystem entry
type Kind int

const (
	KindFile Kind = iota
	KindDir
	KindSymlink
)

// String returns the lowercase name of the kind
func (k Kind) String() string {
	switch k {
	case KindDir:
		return "dir"
	case KindSymlink:
		return "symlink"
	default:
		return "file"
	}
}

// MarshalJSON encodes the kind as its name
func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// MarshalYAML encodes the kind as its name
func (k Kind) MarshalYAML() (interface{}, error) {
	return k.String(), nil
}

// Entry is one classified filesystem object found during a scan.
// Entries are created by the walker and never modified afterwards.
type Entry struct {
	Name       string    `json:"name" yaml:"name"`                                   // Base name
	Path       string    `json:"path" yaml:"path"`                                   // Absolute path
	RelPath    string    `json:"rel_path" yaml:"rel_path"`                           // Path relative to the scan root
	Kind       Kind      `json:"kind" yaml:"kind"`                                   // Assigned once by the classifier
	Size       int64     `json:"size_bytes" yaml:"size_bytes"`                       // As reported by lstat
	ModTime    time.Time `json:"modified_at" yaml:"modified_at"`                     // As reported by lstat
	Depth      int       `json:"depth" yaml:"depth"`                                 // Root children are depth 1
	IsHidden   bool      `json:"is_hidden" yaml:"is_hidden"`                         // Dot-prefixed (or hidden attribute on Windows)
	LinkTarget string    `json:"link_target,omitempty" yaml:"link_target,omitempty"` // Readlink result for symlinks
}

// IsDir reports whether the entry is a directory
func (e Entry) IsDir() bool {
	return e.Kind == KindDir
}

// IsFile reports whether the entry is a regular file
func (e Entry) IsFile() bool {
	return e.Kind == KindFile
}

// IsLink reports whether the entry is a symbolic link
func (e Entry) IsLink() bool {
	return e.Kind == KindSymlink
}
