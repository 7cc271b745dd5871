package core

import (
	"errors"
	"fmt"
)

// ErrorKind classifies fatal scan failures
type ErrorKind int

const (
	RootNotFound ErrorKind = iota + 1
	RootNotADirectory
	RootPermissionDenied
)

// Sentinel errors for matching with errors.Is
var (
	ErrRootNotFound         = errors.New("root not found")
	ErrRootNotADirectory    = errors.New("root is not a directory")
	ErrRootPermissionDenied = errors.New("root permission denied")
)

func (k ErrorKind) String() string {
	switch k {
	case RootNotFound:
		return "RootNotFound"
	case RootNotADirectory:
		return "RootNotADirectory"
	case RootPermissionDenied:
		return "RootPermissionDenied"
	default:
		return "Unknown"
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case RootNotFound:
		return ErrRootNotFound
	case RootNotADirectory:
		return ErrRootNotADirectory
	case RootPermissionDenied:
		return ErrRootPermissionDenied
	default:
		return nil
	}
}

// ScanError is returned when a scan cannot start. No entries are
// produced alongside it.
type ScanError struct {
	Kind ErrorKind
	Path string
	Err  error
}

func (e *ScanError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind.sentinel(), e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind.sentinel(), e.Path)
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel for the error's kind
func (e *ScanError) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}

// Exit codes returned by the CLI
const (
	ExitOK               = 0
	ExitError            = 1
	ExitNotFound         = 2
	ExitPermissionDenied = 3
	ExitNotADirectory    = 4
)

// ExitCode maps an error returned by Scan to a process exit code
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrRootNotFound):
		return ExitNotFound
	case errors.Is(err, ErrRootPermissionDenied):
		return ExitPermissionDenied
	case errors.Is(err, ErrRootNotADirectory):
		return ExitNotADirectory
	default:
		return ExitError
	}
}
