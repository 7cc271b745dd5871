package filesystem

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
)

// FS is the read-only subset of a billy filesystem used by the explorer
type FS interface {
	Stat(filename string) (os.FileInfo, error)
	Lstat(filename string) (os.FileInfo, error)
	ReadDir(path string) ([]os.FileInfo, error)
	Readlink(link string) (string, error)
	Open(filename string) (billy.File, error)
}

// OSFS returns the host filesystem. Paths are used as given, without chroot.
func OSFS() FS {
	return hostFS{FS: osfs.Default}
}

// hostFS lists directories without failing when a child changes
// between the listing and its stat
type hostFS struct {
	FS
}

func (h hostFS) ReadDir(path string) ([]os.FileInfo, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	return dirInfos(entries), nil
}

// dirInfos stats listed children. Children removed in the meantime are
// dropped; other stat failures keep a name-only placeholder so the
// classifier reports them.
func dirInfos(entries []fs.DirEntry) []os.FileInfo {
	infos := make([]os.FileInfo, 0, len(entries))
	for _, e := range entries {
		info, err := e.Info()
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			info = nameInfo(e.Name())
		}
		infos = append(infos, info)
	}
	return infos
}

// nameInfo is a FileInfo that only knows its name
type nameInfo string

func (n nameInfo) Name() string       { return string(n) }
func (n nameInfo) Size() int64        { return 0 }
func (n nameInfo) Mode() fs.FileMode  { return 0 }
func (n nameInfo) ModTime() time.Time { return time.Time{} }
func (n nameInfo) IsDir() bool        { return false }
func (n nameInfo) Sys() interface{}   { return nil }
