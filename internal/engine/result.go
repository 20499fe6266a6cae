package engine

import (
	"time"

	"github.com/leapstack-labs/reactlint/pkg/core"
	"github.com/leapstack-labs/reactlint/pkg/lint"
	"github.com/leapstack-labs/reactlint/pkg/source"
)

// FileResult holds the diagnostics for one file.
type FileResult struct {
	Path        string
	Diagnostics []lint.Diagnostic
	// Cached is true when the diagnostics came from the result cache.
	Cached bool
	// HasErrors is true when the parser recovered from syntax errors.
	HasErrors bool
	// Lines converts diagnostic offsets into line/column positions.
	Lines *source.LineIndex
}

// Position returns the line/column position of a diagnostic offset.
func (f *FileResult) Position(offset int) source.Position {
	if f.Lines == nil {
		return source.Position{Line: 1, Column: 1, Offset: offset}
	}
	return f.Lines.Position(offset)
}

// Result is the outcome of one lint run.
type Result struct {
	// RunID identifies the run in the cache; empty without a cache.
	RunID string
	// Files are sorted by path.
	Files []FileResult
	// Skipped lists discovered files that are not JavaScript or
	// TypeScript after all, such as Qt Linguist .ts translations.
	Skipped []string
	// Cached counts files served from the cache.
	Cached   int
	Duration time.Duration
}

// Diagnostics returns every diagnostic, ordered by file then position.
func (r *Result) Diagnostics() []lint.Diagnostic {
	var all []lint.Diagnostic
	for _, f := range r.Files {
		all = append(all, f.Diagnostics...)
	}
	return all
}

// Count returns the number of diagnostics at or above threshold.
func (r *Result) Count(threshold core.Severity) int {
	n := 0
	for _, f := range r.Files {
		for _, d := range f.Diagnostics {
			if d.Severity.AtLeast(threshold) {
				n++
			}
		}
	}
	return n
}

// HasIssues reports whether any diagnostic is at or above threshold.
func (r *Result) HasIssues(threshold core.Severity) bool {
	return r.Count(threshold) > 0
}

// CountBySeverity tallies diagnostics per severity.
func (r *Result) CountBySeverity() map[core.Severity]int {
	counts := make(map[core.Severity]int)
	for _, f := range r.Files {
		for _, d := range f.Diagnostics {
			counts[d.Severity]++
		}
	}
	return counts
}
