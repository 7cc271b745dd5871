//go:build windows
// +build windows

package filesystem

import (
	"os"
	"syscall"
)

// hasHiddenAttribute checks FILE_ATTRIBUTE_HIDDEN (Windows)
func hasHiddenAttribute(info os.FileInfo) bool {
	if info == nil {
		return false
	}
	attrs, ok := info.Sys().(*syscall.Win32FileAttributeData)
	if !ok {
		return false
	}
	return attrs.FileAttributes&syscall.FILE_ATTRIBUTE_HIDDEN != 0
}
