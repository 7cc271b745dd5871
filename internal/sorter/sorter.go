// Package sorter reorders scan entries within each directory without
// changing the parent/child structure of the traversal.
package sorter

import (
	"path/filepath"
	"sort"

	"github.com/IvanShishkin/burrow/pkg/models"
)

// Options controls sibling ordering
type Options struct {
	Key models.SortKey
	// SortDirs sorts directories together with files. By default
	// directories keep their traversal slots and only files move.
	SortDirs bool
}

// Sort returns entries reordered within each group of siblings.
// entries must be in depth-first pre-order, as produced by the walker.
// The input slice is not modified.
func Sort(entries []models.Entry, opts Options) []models.Entry {
	if opts.Key == models.SortNone || len(entries) < 2 {
		return entries
	}

	less := lessFunc(opts.Key)

	// Group sibling indices by parent directory, keeping first-seen order
	dirs := make(map[string]bool)
	for _, e := range entries {
		if e.IsDir() {
			dirs[e.Path] = true
		}
	}

	children := make(map[string][]int)
	var top []int
	for i, e := range entries {
		parent := filepath.Dir(e.Path)
		if dirs[parent] {
			children[parent] = append(children[parent], i)
		} else {
			top = append(top, i)
		}
	}

	sortGroup(entries, top, less, opts.SortDirs)
	for _, group := range children {
		sortGroup(entries, group, less, opts.SortDirs)
	}

	out := make([]models.Entry, 0, len(entries))
	var emit func(group []int)
	emit = func(group []int) {
		for _, i := range group {
			out = append(out, entries[i])
			if entries[i].IsDir() {
				emit(children[entries[i].Path])
			}
		}
	}
	emit(top)

	return out
}

// sortGroup reorders the index slice of one sibling group in place
func sortGroup(entries []models.Entry, group []int, less func(a, b models.Entry) bool, sortDirs bool) {
	if sortDirs {
		sort.SliceStable(group, func(i, j int) bool {
			return less(entries[group[i]], entries[group[j]])
		})
		return
	}

	// Directories stay in their slots; files are sorted into the rest
	var slots, files []int
	for pos, idx := range group {
		if !entries[idx].IsDir() {
			slots = append(slots, pos)
			files = append(files, idx)
		}
	}
	sort.SliceStable(files, func(i, j int) bool {
		return less(entries[files[i]], entries[files[j]])
	})
	for n, pos := range slots {
		group[pos] = files[n]
	}
}

func lessFunc(key models.SortKey) func(a, b models.Entry) bool {
	switch key {
	case models.SortSize:
		return func(a, b models.Entry) bool {
			if a.Size != b.Size {
				return a.Size < b.Size
			}
			return a.Name < b.Name
		}
	case models.SortModified:
		return func(a, b models.Entry) bool {
			if !a.ModTime.Equal(b.ModTime) {
				return a.ModTime.Before(b.ModTime)
			}
			return a.Name < b.Name
		}
	default:
		return func(a, b models.Entry) bool {
			return a.Name < b.Name
		}
	}
}
