package filesystem

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/IvanShishkin/burrow/pkg/models"
	"go.uber.org/zap"
)

// WalkResult is the raw, unfiltered output of a traversal
type WalkResult struct {
	Entries     []models.Entry
	Truncated   bool
	Diagnostics []models.Diagnostic
}

// Walker walks the filesystem and classifies what it finds
type Walker struct {
	fs     FS
	logger *zap.Logger
}

// NewWalker creates a new filesystem walker
func NewWalker(fsys FS, logger *zap.Logger) *Walker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Walker{
		fs:     fsys,
		logger: logger,
	}
}

// walkState carries the counters of one traversal
type walkState struct {
	classifier *Classifier
	showHidden bool
	limit      int // deepest emitted level, 0 = unbounded
	cap        int
	result     *WalkResult
}

// Walk enumerates the entries below root in depth-first pre-order.
// root must be an existing directory. Failing to list root itself is
// returned as an error; any other failure is recorded as a diagnostic
// and the walk continues with the next sibling.
func (w *Walker) Walk(root string, req models.ScanRequest) (*WalkResult, error) {
	st := &walkState{
		classifier: NewClassifier(w.fs, root),
		showHidden: req.ShowHidden,
		limit:      req.DepthLimit(),
		cap:        req.EntryCap(),
		result:     &WalkResult{},
	}

	infos, err := w.fs.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", root, err)
	}

	w.visit(st, root, infos, 1)

	if st.result.Truncated {
		w.logger.Warn("Entry cap reached, scan truncated",
			zap.String("root", root),
			zap.Int("max_entries", st.cap))
	}

	return st.result, nil
}

// visit emits the children of dir and descends into subdirectories
func (w *Walker) visit(st *walkState, dir string, infos []os.FileInfo, depth int) {
	for _, info := range infos {
		if st.result.Truncated {
			return
		}

		path := filepath.Join(dir, info.Name())

		// Hidden entries are dropped before they are counted
		if !st.showHidden && isHidden(info.Name(), info) {
			w.logger.Debug("Skipping hidden entry", zap.String("path", path))
			continue
		}

		entry, err := st.classifier.Classify(path, depth)
		if err != nil {
			w.softSkip(st, path, "lstat", err)
			continue
		}

		if len(st.result.Entries) >= st.cap {
			st.result.Truncated = true
			return
		}
		st.result.Entries = append(st.result.Entries, entry)

		if !entry.IsDir() {
			continue
		}
		if st.limit > 0 && depth >= st.limit {
			w.logger.Debug("Depth limit reached, not descending",
				zap.String("path", path),
				zap.Int("depth", depth))
			continue
		}

		children, err := w.fs.ReadDir(path)
		if err != nil {
			w.softSkip(st, path, "readdir", err)
			continue
		}
		w.visit(st, path, children, depth+1)
	}
}

// softSkip records a non-fatal failure and keeps walking
func (w *Walker) softSkip(st *walkState, path, op string, err error) {
	w.logger.Warn("Error accessing path",
		zap.String("path", path),
		zap.String("op", op),
		zap.Error(err))

	st.result.Diagnostics = append(st.result.Diagnostics, models.Diagnostic{
		Path: path,
		Op:   op,
		Err:  err.Error(),
	})
}

// isHidden checks if a file is hidden
func isHidden(name string, info os.FileInfo) bool {
	// Unix-like systems: files starting with dot
	if len(name) > 0 && name[0] == '.' {
		return true
	}
	return hasHiddenAttribute(info)
}

// IsHiddenName reports whether name carries the hidden dot prefix
func IsHiddenName(name string) bool {
	return isHidden(name, nil)
}
