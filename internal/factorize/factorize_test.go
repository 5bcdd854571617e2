package factorize

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDo_FactorizesEachNumber(t *testing.T) {
	var out bytes.Buffer
	done := make(chan struct{})

	err := Do(done, []int{12, 17, 100}, &out, Config{FactorizationWorkers: 2, WriteWorkers: 2})
	require.NoError(t, err)

	lines := out.String()
	require.Contains(t, lines, "12 = 2 * 2 * 3")
	require.Contains(t, lines, "17 = 17")
	require.Contains(t, lines, "100 = 2 * 2 * 5 * 5")
}

func TestDo_NegativeAndOne(t *testing.T) {
	var out bytes.Buffer
	done := make(chan struct{})

	err := Do(done, []int{-6, 1}, &out)
	require.NoError(t, err)

	require.Contains(t, out.String(), "-6 = -1 * 2 * 3")
	require.Contains(t, out.String(), "1 = 1")
}

func TestDo_CancelledBeforeStart(t *testing.T) {
	var out bytes.Buffer
	done := make(chan struct{})
	close(done)

	err := Do(done, []int{4, 9}, &out)
	require.ErrorIs(t, err, ErrCancelled)
}

func TestDo_RejectsInvalidConfig(t *testing.T) {
	var out bytes.Buffer
	done := make(chan struct{})

	err := Do(done, []int{4}, &out, Config{FactorizationWorkers: 0, WriteWorkers: 1})
	require.Error(t, err)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, strings.NewReader("").UnreadRune()
}

func TestDo_WriterFailureStopsEarly(t *testing.T) {
	done := make(chan struct{})
	numbers := make([]int, 500)
	for i := range numbers {
		numbers[i] = i + 2
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- Do(done, numbers, failingWriter{}, Config{FactorizationWorkers: 4, WriteWorkers: 4})
	}()

	select {
	case err := <-errCh:
		require.ErrorIs(t, err, ErrWriterFailed)
	case <-time.After(2 * time.Second):
		t.Fatal("Do did not return after writer failure")
	}
}
