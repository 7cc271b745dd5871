//go:build !windows
// +build !windows

package filesystem

import "os"

// hasHiddenAttribute is always false on Unix, where only the dot prefix counts
func hasHiddenAttribute(info os.FileInfo) bool {
	return false
}
