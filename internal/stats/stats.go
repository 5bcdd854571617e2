// Package stats holds the value types that flow out of the analyzer
// and into the tracker: per-file statistics and the errors accumulated
// while gathering them.
package stats

import (
	"time"

	"fileanalyzer/internal/errs"
)

// FileStats holds the tallies collected while reading a single file.
// The zero value has all counts zero and a nil CharFrequencies map;
// stats.New allocates the map.
type FileStats struct {
	WordCount       int
	LineCount       int
	CharFrequencies map[rune]int64
	SizeBytes       int64
}

// Analysis is the always-produced result of analyzing one file. Even a
// total failure yields an Analysis with Stats at defaults and a
// non-empty Errors slice.
type Analysis struct {
	Filename       string
	Stats          FileStats
	Errors         []*errs.Error
	ProcessingTime time.Duration
}

// New returns an Analysis for filename with defaulted stats and no
// errors recorded yet.
func New(filename string) Analysis {
	return Analysis{
		Filename: filename,
		Stats: FileStats{
			CharFrequencies: make(map[rune]int64),
		},
	}
}

// IsSuccessful reports whether no errors were recorded.
func (a *Analysis) IsSuccessful() bool {
	return len(a.Errors) == 0
}

// AddError appends e to the ordered error sequence.
func (a *Analysis) AddError(e *errs.Error) {
	a.Errors = append(a.Errors, e)
}
