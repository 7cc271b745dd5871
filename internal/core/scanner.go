package core

import (
	"errors"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/IvanShishkin/burrow/internal/filesystem"
	"github.com/IvanShishkin/burrow/internal/filter"
	"github.com/IvanShishkin/burrow/internal/sorter"
	"github.com/IvanShishkin/burrow/pkg/models"
	"go.uber.org/zap"
)

// ProgressCallback is called when the scan enters a new phase
type ProgressCallback func(phase string, count int)

// Scanner runs the traversal, filter, sort and aggregation stages
type Scanner struct {
	fs               filesystem.FS
	logger           *zap.Logger
	progressCallback ProgressCallback
}

// NewScanner creates a new scanner instance
func NewScanner(fsys filesystem.FS, logger *zap.Logger) *Scanner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scanner{
		fs:     fsys,
		logger: logger,
	}
}

// SetProgressCallback sets the progress callback function
func (s *Scanner) SetProgressCallback(cb ProgressCallback) {
	s.progressCallback = cb
}

// reportProgress calls the progress callback if set
func (s *Scanner) reportProgress(phase string, count int) {
	if s.progressCallback != nil {
		s.progressCallback(phase, count)
	}
}

// Scan performs one scan. Failures on the root are returned as a
// *ScanError with a nil result; everything below the root is soft-skipped
// and reported through ScanResult.Diagnostics.
func (s *Scanner) Scan(req models.ScanRequest) (*models.ScanResult, error) {
	start := time.Now()

	root, err := s.resolveRoot(req.Root)
	if err != nil {
		return nil, err
	}
	req.Root = root

	s.logger.Info("Starting scan",
		zap.String("root", root),
		zap.Bool("recursive", req.Recursive),
		zap.Int("depth_limit", req.DepthLimit()),
		zap.Int("max_entries", req.EntryCap()))

	s.reportProgress("walking", 0)
	walked, err := filesystem.NewWalker(s.fs, s.logger).Walk(root, req)
	if err != nil {
		return nil, rootError(root, err)
	}
	s.reportProgress("walked", len(walked.Entries))

	pipeline := s.buildPipeline(req)
	entries := pipeline.Apply(walked.Entries)
	s.reportProgress("filtered", len(entries))

	entries = sorter.Sort(entries, sorter.Options{Key: req.Sort, SortDirs: req.SortDirs})

	result := Aggregate(root, entries, walked)
	result.StartTime = start
	result.Duration = time.Since(start)
	s.reportProgress("done", len(result.Entries))

	s.logger.Info("Scan completed",
		zap.Duration("duration", result.Duration),
		zap.Int("entries", len(result.Entries)),
		zap.Int("skipped", result.Summary.Skipped),
		zap.Bool("truncated", result.Truncated))

	return result, nil
}

// resolveRoot makes root absolute and checks that it is a directory
func (s *Scanner) resolveRoot(root string) (string, error) {
	if root == "" {
		root = "."
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", &ScanError{Kind: RootNotFound, Path: root, Err: err}
	}

	info, err := s.fs.Stat(abs)
	if err != nil {
		return "", rootError(abs, err)
	}
	if !info.IsDir() {
		return "", &ScanError{Kind: RootNotADirectory, Path: abs}
	}
	return abs, nil
}

// rootError classifies a failure on the scan root
func rootError(root string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return &ScanError{Kind: RootNotFound, Path: root, Err: err}
	}
	// Anything else means the root exists but cannot be listed
	return &ScanError{Kind: RootPermissionDenied, Path: root, Err: err}
}

// buildPipeline assembles the filters active for req
func (s *Scanner) buildPipeline(req models.ScanRequest) *filter.Pipeline {
	pipeline := filter.FromSpec(req.Filters)

	if req.Filters.RespectGitignore {
		gi, err := filter.NewGitignore(s.fs, req.Root)
		if err != nil {
			s.logger.Debug("No usable .gitignore, filter disabled",
				zap.String("root", req.Root),
				zap.Error(err))
		} else {
			pipeline.Add(gi)
		}
	}

	s.logger.Debug("Filter pipeline ready", zap.Int("filters", pipeline.Len()))
	return pipeline
}
