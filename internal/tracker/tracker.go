// Package tracker implements the shared, mutex-protected progress
// accumulator workers and the reporter read from concurrently, plus
// the per-run cancellation flag that lives alongside it.
package tracker

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"fileanalyzer/internal/stats"
)

// Summary is a cheap, immutable snapshot of the tracker's aggregate
// counters, suitable for rendering by a reporter without holding the
// tracker's lock.
type Summary struct {
	Total           int
	FilesCompleted  int
	TotalErrors     int
	Elapsed         time.Duration
	PercentComplete float64
}

// Shared is the reference-counted handle that the orchestrator, the
// reporter goroutine, and every worker closure hold. Its zero value is
// not usable; construct with New.
type Shared struct {
	mu        sync.Mutex
	completed []stats.Analysis
	total     int
	errors    int
	errorsLog []string
	startTime time.Time

	cancelled atomic.Bool

	// poisoned emulates mutex poisoning: Go's sync.Mutex does not track
	// panics the way a poisoned lock would, so a panic caught while the
	// mutex is held sets this flag instead. Once set it is permanent —
	// every further mutation is silently skipped, and every reader
	// returns the "no snapshot available" sentinel.
	poisoned atomic.Bool
}

// New returns a fresh Shared tracker with its clock started.
func New() *Shared {
	return &Shared{startTime: time.Now()}
}

// SetTotal sets the expected file count. Call once, before dispatch.
// A no-op once the tracker is poisoned.
func (s *Shared) SetTotal(total int) {
	if s.poisoned.Load() {
		return
	}
	defer s.guard()
	s.mu.Lock()
	defer s.mu.Unlock()

	s.total = total
}

// Record atomically appends analysis to the completed sequence,
// advances files_completed and total_errors, and pushes a formatted
// "{filename}: {error}" line into the error log for each error the
// analysis carries. total_files is not enforced as an upper bound: a
// rerun may push files_completed past total, and that overshoot is
// tolerated silently. If the tracker is already poisoned, Record is a
// silent no-op, matching a poisoned-mutex write being skipped rather
// than attempted.
func (s *Shared) Record(analysis stats.Analysis) {
	if s.poisoned.Load() {
		return
	}
	defer s.guard()
	s.mu.Lock()
	defer s.mu.Unlock()

	s.completed = append(s.completed, analysis)
	s.errors += len(analysis.Errors)
	for _, e := range analysis.Errors {
		s.errorsLog = append(s.errorsLog, fmt.Sprintf("%s: %s", analysis.Filename, e.Error()))
	}
}

// guard recovers a panic that unwound through a locked critical
// section, marks the tracker poisoned, and re-panics so the caller
// (the worker pool's own panic boundary) still observes and absorbs
// it. Deferred first in every mutating method, so it runs after the
// mutex has been unlocked by that method's own unlock defer — a
// poisoned tracker never leaves its mutex held.
func (s *Shared) guard() {
	if r := recover(); r != nil {
		s.poisoned.Store(true)
		panic(r)
	}
}

// Snapshot returns the current aggregate counters, and false if the
// tracker is poisoned — the "no snapshot available" sentinel a reader
// gets instead of a torn or stale view when a worker panicked while
// holding the lock. PercentComplete is 100·files_completed/total when
// total > 0, else 0.
func (s *Shared) Snapshot() (Summary, bool) {
	if s.poisoned.Load() {
		return Summary{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	pct := 0.0
	if s.total > 0 {
		pct = 100 * float64(len(s.completed)) / float64(s.total)
	}

	return Summary{
		Total:           s.total,
		FilesCompleted:  len(s.completed),
		TotalErrors:     s.errors,
		Elapsed:         time.Since(s.startTime),
		PercentComplete: pct,
	}, true
}

// Completed returns an independent copy of every recorded analysis, in
// the order workers acquired the lock, and false if the tracker is
// poisoned.
func (s *Shared) Completed() ([]stats.Analysis, bool) {
	if s.poisoned.Load() {
		return nil, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]stats.Analysis, len(s.completed))
	copy(out, s.completed)
	return out, true
}

// Errors returns an independent copy of the formatted error log, and
// false if the tracker is poisoned.
func (s *Shared) Errors() ([]string, bool) {
	if s.poisoned.Load() {
		return nil, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, len(s.errorsLog))
	copy(out, s.errorsLog)
	return out, true
}

// IsPoisoned reports whether a worker panicked while holding the
// tracker's lock. Permanent once true.
func (s *Shared) IsPoisoned() bool {
	return s.poisoned.Load()
}

// Cancel marks the run cancelled. Cancellation is one-shot: once set,
// a Shared stays cancelled for the remainder of the run.
func (s *Shared) Cancel() {
	s.cancelled.Store(true)
}

// IsCancelled reports whether Cancel has been called on this tracker.
func (s *Shared) IsCancelled() bool {
	return s.cancelled.Load()
}
