package tracker

import (
	"sync"
	"testing"

	"fileanalyzer/internal/errs"
	"fileanalyzer/internal/stats"

	"github.com/stretchr/testify/require"
)

func TestTracker_RecordUpdatesCounters(t *testing.T) {
	tr := New()
	tr.SetTotal(2)

	a1 := stats.New("a.txt")
	a2 := stats.New("b.txt")
	a2.AddError(errs.New(errs.FileNotFound, "b.txt"))

	tr.Record(a1)
	tr.Record(a2)

	snap, ok := tr.Snapshot()
	require.True(t, ok)
	require.Equal(t, 2, snap.FilesCompleted)
	require.Equal(t, 1, snap.TotalErrors)
	require.Equal(t, 100.0, snap.PercentComplete)

	completed, ok := tr.Completed()
	require.True(t, ok)
	require.Len(t, completed, 2)

	errorsLog, ok := tr.Errors()
	require.True(t, ok)
	require.Len(t, errorsLog, 1)
	require.Contains(t, errorsLog[0], "b.txt")
}

func TestTracker_PercentageZeroWhenTotalZero(t *testing.T) {
	tr := New()
	snap, ok := tr.Snapshot()
	require.True(t, ok)
	require.Equal(t, 0.0, snap.PercentComplete)
}

func TestTracker_Invariants(t *testing.T) {
	tr := New()
	tr.SetTotal(3)

	for i := 0; i < 3; i++ {
		a := stats.New("f.txt")
		if i == 1 {
			a.AddError(errs.New(errs.IoError, "boom"))
			a.AddError(errs.New(errs.ParseError, "also boom"))
		}
		tr.Record(a)
	}

	snap, ok := tr.Snapshot()
	require.True(t, ok)
	completed, ok := tr.Completed()
	require.True(t, ok)
	require.Equal(t, len(completed), snap.FilesCompleted)

	var wantErrors int
	for _, a := range completed {
		wantErrors += len(a.Errors)
	}
	require.Equal(t, wantErrors, snap.TotalErrors)
}

func TestTracker_OvershootTolerated(t *testing.T) {
	tr := New()
	tr.SetTotal(1)
	tr.Record(stats.New("a.txt"))
	tr.Record(stats.New("b.txt"))

	snap, ok := tr.Snapshot()
	require.True(t, ok)
	require.Equal(t, 2, snap.FilesCompleted)
	require.Greater(t, snap.PercentComplete, 100.0)
}

func TestTracker_CancelIsOneShot(t *testing.T) {
	tr := New()
	require.False(t, tr.IsCancelled())
	tr.Cancel()
	require.True(t, tr.IsCancelled())
}

func TestTracker_ConcurrentRecord(t *testing.T) {
	tr := New()
	tr.SetTotal(100)

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tr.Record(stats.New("f.txt"))
		}()
	}
	wg.Wait()

	snap, ok := tr.Snapshot()
	require.True(t, ok)
	require.Equal(t, 100, snap.FilesCompleted)
}

func TestTracker_PoisonedAfterPanicWhileLocked(t *testing.T) {
	tr := New()
	tr.SetTotal(2)

	// A nil *errs.Error in Errors is the kind of bug that would panic
	// Record mid-critical-section (Error() on a nil receiver) — the
	// scenario the poison flag exists to contain.
	bad := stats.New("bad.txt")
	bad.Errors = append(bad.Errors, nil)

	func() {
		defer func() { recover() }()
		tr.Record(bad)
	}()

	require.True(t, tr.IsPoisoned())

	_, ok := tr.Snapshot()
	require.False(t, ok)
	_, ok = tr.Completed()
	require.False(t, ok)
	_, ok = tr.Errors()
	require.False(t, ok)

	tr.SetTotal(5)
	tr.Record(stats.New("a.txt"))
	require.True(t, tr.IsPoisoned())
}
