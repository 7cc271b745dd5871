package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/IvanShishkin/burrow/pkg/models"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/require"
)

// newMemTree builds an in-memory tree under /root. Names ending in "/" are
// directories, everything else is a file of the given size.
func newMemTree(t *testing.T, files map[string]int) billy.Filesystem {
	t.Helper()

	fs := memfs.New()
	require.NoError(t, fs.MkdirAll("/root", 0755))
	for name, size := range files {
		path := filepath.Join("/root", name)
		if strings.HasSuffix(name, "/") {
			require.NoError(t, fs.MkdirAll(path, 0755))
			continue
		}
		require.NoError(t, util.WriteFile(fs, path, make([]byte, size), 0644))
	}
	return fs
}

// faultyFS injects errors for selected paths
type faultyFS struct {
	FS
	readDirErr map[string]error
	lstatErr   map[string]error
}

func (f *faultyFS) ReadDir(path string) ([]os.FileInfo, error) {
	if err, ok := f.readDirErr[path]; ok {
		return nil, err
	}
	return f.FS.ReadDir(path)
}

func (f *faultyFS) Lstat(path string) (os.FileInfo, error) {
	if err, ok := f.lstatErr[path]; ok {
		return nil, err
	}
	return f.FS.Lstat(path)
}

func manyFiles(n int) map[string]int {
	files := make(map[string]int, n)
	for i := 0; i < n; i++ {
		files[fmt.Sprintf("f%05d.dat", i)] = 1
	}
	return files
}

func relPaths(entries []models.Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, filepath.ToSlash(e.RelPath))
	}
	return out
}
