package orchestrator

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"fileanalyzer/internal/cache"
)

func TestRun_ProcessesDiscoveredFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("hello world\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("foo bar baz\n"), 0o644))

	var out bytes.Buffer
	outcome := Run(Params{
		Directories:    []string{dir},
		Extensions:     []string{"txt"},
		Workers:        2,
		RequestedCount: 2,
		NoDownload:     true,
		Out:            &out,
		ReportInterval: time.Millisecond,
	})

	require.Equal(t, 2, outcome.TotalDiscovered)
	summary, ok := outcome.Tracker.Snapshot()
	require.True(t, ok)
	require.Equal(t, 2, summary.FilesCompleted)
	require.False(t, outcome.Tracker.IsCancelled())
}

func TestRun_NoFilesFound(t *testing.T) {
	dir := t.TempDir()

	var out bytes.Buffer
	outcome := Run(Params{
		Directories:    []string{dir},
		Extensions:     []string{"txt"},
		Workers:        1,
		RequestedCount: 5,
		NoDownload:     true,
		Out:            &out,
		ReportInterval: time.Millisecond,
	})

	require.Equal(t, 0, outcome.TotalDiscovered)
	require.Contains(t, out.String(), "No files found.")
}

func TestRun_UsesCacheOnSecondPass(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("hello\n"), 0o644))

	c := cache.NewAnalysisCache(4)
	var out bytes.Buffer

	params := Params{
		Directories:    []string{dir},
		Extensions:     []string{"txt"},
		Workers:        1,
		RequestedCount: 1,
		NoDownload:     true,
		Cache:          c,
		Out:            &out,
		ReportInterval: time.Millisecond,
	}

	Run(params)
	require.Equal(t, 1, c.Size())

	outcome := Run(params)
	summary, ok := outcome.Tracker.Snapshot()
	require.True(t, ok)
	require.Equal(t, 1, summary.FilesCompleted)
}

func TestRender_NoFilesToDisplay(t *testing.T) {
	var out bytes.Buffer
	outcome := Run(Params{
		Directories:    []string{t.TempDir()},
		Extensions:     []string{"txt"},
		Workers:        1,
		RequestedCount: 1,
		NoDownload:     true,
		Out:            &out,
		ReportInterval: time.Millisecond,
	})

	var report bytes.Buffer
	Render(&report, outcome, 10, "results.txt")
	require.Contains(t, report.String(), "No files to display.")
}

func TestRender_ShowsTopCharactersAndStatus(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("aaa bbb\n"), 0o644))

	var out bytes.Buffer
	outcome := Run(Params{
		Directories:    []string{dir},
		Extensions:     []string{"txt"},
		Workers:        1,
		RequestedCount: 1,
		NoDownload:     true,
		Out:            &out,
		ReportInterval: time.Millisecond,
	})

	var report bytes.Buffer
	Render(&report, outcome, 10, "results.txt")

	require.Contains(t, report.String(), "Processing Complete!")
	require.Contains(t, report.String(), "Top Characters:")
	require.Contains(t, report.String(), "Success")
}

func TestFormatProgressBar_ZeroTotal(t *testing.T) {
	require.Equal(t, "[========================================] 0%", formatProgressBar(0, 0, 40))
}

func TestFormatProgressBar_HalfFilled(t *testing.T) {
	bar := formatProgressBar(5, 10, 40)
	require.Contains(t, bar, "50.0%")
	require.Contains(t, bar, "(5/10)")
}
