package workerpool

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPool_ZeroSizePanics(t *testing.T) {
	require.Panics(t, func() {
		New(0)
	})
}

func TestPool_ExecutesAllTasks(t *testing.T) {
	pool := New(2)
	var counter int64

	for i := 0; i < 5; i++ {
		pool.Execute(func() {
			atomic.AddInt64(&counter, 1)
		})
	}

	time.Sleep(100 * time.Millisecond)
	pool.Shutdown()

	require.EqualValues(t, 5, atomic.LoadInt64(&counter))
}

func TestPool_ShutdownDrainsQueueAndJoinsWorkers(t *testing.T) {
	pool := New(4)
	var mu sync.Mutex
	seen := make(map[int]bool)

	for i := 0; i < 10; i++ {
		i := i
		pool.Execute(func() {
			mu.Lock()
			seen[i] = true
			mu.Unlock()
		})
	}

	pool.Shutdown()

	require.Len(t, seen, 10)
}

func TestPool_ShutdownIsIdempotent(t *testing.T) {
	pool := New(2)
	pool.Execute(func() {})
	pool.Shutdown()
	require.NotPanics(t, func() {
		pool.Shutdown()
	})
}

func TestPool_TaskCanReenterPool(t *testing.T) {
	// The queue lock must be released before a task runs, or a task that
	// calls Execute on its own pool would deadlock.
	pool := New(1)
	done := make(chan struct{})

	pool.Execute(func() {
		pool.Execute(func() {
			close(done)
		})
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("reentrant Execute deadlocked")
	}

	pool.Shutdown()
}

func TestPool_PanickingTaskDoesNotStopTheWorker(t *testing.T) {
	pool := New(1)
	var ran int64

	pool.Execute(func() {
		panic("boom")
	})
	pool.Execute(func() {
		atomic.AddInt64(&ran, 1)
	})

	pool.Shutdown()
	require.EqualValues(t, 1, atomic.LoadInt64(&ran))
}

func TestPool_NumWorkers(t *testing.T) {
	pool := New(3)
	require.Equal(t, 3, pool.NumWorkers())
	pool.Shutdown()
}
