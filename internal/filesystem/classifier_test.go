package filesystem

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/IvanShishkin/burrow/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifier_Kinds(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need extra privileges on Windows")
	}

	root := t.TempDir()
	file := filepath.Join(root, "file.txt")
	dir := filepath.Join(root, "dir")
	fileLink := filepath.Join(root, "file-link")
	dirLink := filepath.Join(root, "dir-link")
	dangling := filepath.Join(root, "dangling")

	require.NoError(t, os.WriteFile(file, []byte("hello"), 0644))
	require.NoError(t, os.Mkdir(dir, 0755))
	require.NoError(t, os.Symlink(file, fileLink))
	require.NoError(t, os.Symlink(dir, dirLink))
	require.NoError(t, os.Symlink(filepath.Join(root, "missing"), dangling))

	mtime := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, os.Chtimes(file, mtime, mtime))

	c := NewClassifier(OSFS(), root)

	tests := []struct {
		path   string
		kind   models.Kind
		target string
	}{
		{file, models.KindFile, ""},
		{dir, models.KindDir, ""},
		{fileLink, models.KindSymlink, file},
		{dirLink, models.KindSymlink, dir},
		{dangling, models.KindSymlink, filepath.Join(root, "missing")},
	}

	for _, tt := range tests {
		t.Run(filepath.Base(tt.path), func(t *testing.T) {
			entry, err := c.Classify(tt.path, 1)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, entry.Kind)
			assert.Equal(t, tt.target, entry.LinkTarget)
			assert.Equal(t, filepath.Base(tt.path), entry.Name)
			assert.Equal(t, filepath.Base(tt.path), entry.RelPath)
			assert.Equal(t, 1, entry.Depth)
		})
	}

	entry, err := c.Classify(file, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(5), entry.Size)
	assert.True(t, entry.ModTime.Equal(mtime))
}

func TestClassifier_MissingPath(t *testing.T) {
	c := NewClassifier(OSFS(), t.TempDir())

	_, err := c.Classify("/nonexistent/file.txt", 1)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestIsHiddenName(t *testing.T) {
	tests := []struct {
		name     string
		expected bool
	}{
		{".git", true},
		{".env", true},
		{"visible.txt", false},
		{"dot.in.middle", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsHiddenName(tt.name); got != tt.expected {
				t.Errorf("IsHiddenName(%q) = %v, want %v", tt.name, got, tt.expected)
			}
		})
	}
}

func TestReadSmallFile(t *testing.T) {
	fs := newMemTree(t, nil)
	_, err := ReadSmallFile(fs, "/root/.gitignore")
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), ".gitignore")
	require.NoError(t, os.WriteFile(path, []byte("*.log\n"), 0644))

	content, err := ReadSmallFile(OSFS(), path)
	require.NoError(t, err)
	assert.Equal(t, "*.log\n", string(content))
}
