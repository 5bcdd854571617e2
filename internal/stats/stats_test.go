package stats

import (
	"testing"

	"fileanalyzer/internal/errs"

	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	a := New("test.txt")
	require.Equal(t, "test.txt", a.Filename)
	require.Zero(t, a.Stats.WordCount)
	require.Zero(t, a.Stats.LineCount)
	require.Zero(t, a.Stats.SizeBytes)
	require.Empty(t, a.Stats.CharFrequencies)
	require.True(t, a.IsSuccessful())
}

func TestAddError_FlipsSuccess(t *testing.T) {
	a := New("test.txt")
	a.AddError(errs.New(errs.FileNotFound, "test.txt"))
	require.False(t, a.IsSuccessful())
	require.Len(t, a.Errors, 1)
}
