package filesystem

import (
	"os"
	"path/filepath"

	"github.com/IvanShishkin/burrow/pkg/models"
)

// Classifier turns paths into entries using link-aware metadata
type Classifier struct {
	fs   FS
	root string
}

// NewClassifier creates a classifier for entries below root
func NewClassifier(fsys FS, root string) *Classifier {
	return &Classifier{fs: fsys, root: root}
}

// Classify stats path without following symlinks and builds its entry.
// A symlink is always KindSymlink, whatever it points to.
func (c *Classifier) Classify(path string, depth int) (models.Entry, error) {
	info, err := c.fs.Lstat(path)
	if err != nil {
		return models.Entry{}, err
	}

	entry := models.Entry{
		Name:     filepath.Base(path),
		Path:     path,
		RelPath:  c.relPath(path),
		Kind:     KindOf(info),
		Size:     info.Size(),
		ModTime:  info.ModTime(),
		Depth:    depth,
		IsHidden: isHidden(info.Name(), info),
	}

	if entry.Kind == models.KindSymlink {
		// Dangling or unreadable links keep an empty target
		if target, err := c.fs.Readlink(path); err == nil {
			entry.LinkTarget = target
		}
	}

	return entry, nil
}

func (c *Classifier) relPath(path string) string {
	rel, err := filepath.Rel(c.root, path)
	if err != nil {
		return path
	}
	return rel
}

// KindOf maps lstat mode bits to an entry kind.
// Devices, sockets and pipes count as files.
func KindOf(info os.FileInfo) models.Kind {
	mode := info.Mode()
	switch {
	case mode&os.ModeSymlink != 0:
		return models.KindSymlink
	case mode.IsDir():
		return models.KindDir
	default:
		return models.KindFile
	}
}
