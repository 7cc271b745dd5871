package core

import (
	"github.com/IvanShishkin/burrow/internal/filesystem"
	"github.com/IvanShishkin/burrow/pkg/models"
)

// Aggregate builds the result from the final entry sequence. Counters
// only see entries that survived filtering; truncation and diagnostics
// come from the walk.
func Aggregate(root string, entries []models.Entry, walked *filesystem.WalkResult) *models.ScanResult {
	result := &models.ScanResult{
		Root:    root,
		Entries: make([]models.Entry, 0, len(entries)),
	}

	for _, e := range entries {
		result.AddEntry(e)
	}

	if walked != nil {
		result.Truncated = walked.Truncated
		result.Diagnostics = walked.Diagnostics
		result.Summary.Skipped = len(walked.Diagnostics)
	}

	return result
}
