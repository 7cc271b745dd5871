package filter

import (
	"bytes"
	"path/filepath"

	"github.com/IvanShishkin/burrow/internal/filesystem"
	"github.com/IvanShishkin/burrow/pkg/models"
	gitignore "github.com/monochromegane/go-gitignore"
)

// Gitignore drops entries matched by a .gitignore file
type Gitignore struct {
	root    string
	matcher gitignore.IgnoreMatcher
}

// NewGitignore parses the .gitignore at the top of root. Patterns are
// matched against absolute entry paths relative to root.
func NewGitignore(fsys filesystem.FS, root string) (*Gitignore, error) {
	content, err := filesystem.ReadSmallFile(fsys, filepath.Join(root, ".gitignore"))
	if err != nil {
		return nil, err
	}
	return &Gitignore{
		root:    filepath.Clean(root),
		matcher: gitignore.NewGitIgnoreFromReader(root, bytes.NewReader(content)),
	}, nil
}

func (f *Gitignore) Name() string { return "gitignore" }

// Matches reports false when the entry or any directory between it and
// the root is ignored
func (f *Gitignore) Matches(entry models.Entry) bool {
	if f.matcher.Match(entry.Path, entry.IsDir()) {
		return false
	}
	for dir := filepath.Dir(entry.Path); len(dir) > len(f.root); dir = filepath.Dir(dir) {
		if f.matcher.Match(dir, true) {
			return false
		}
	}
	return true
}
