package filesystem

import (
	"fmt"
	"io"
)

// maxSmallFile bounds ReadSmallFile so a huge file cannot be slurped by mistake
const maxSmallFile = 1 << 20

// ReadSmallFile reads a small auxiliary file such as .gitignore
func ReadSmallFile(fsys FS, path string) ([]byte, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	content, err := io.ReadAll(io.LimitReader(f, maxSmallFile+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if len(content) > maxSmallFile {
		return nil, fmt.Errorf("file %s exceeds %d bytes", path, maxSmallFile)
	}

	return content, nil
}
