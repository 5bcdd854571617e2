// Package orchestrator wires discovery, the analysis cache, the
// worker pool, the progress tracker, and — when a run comes up short
// of its requested file count — the downloader, into a single run of
// the analyzer.
package orchestrator

import (
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"fileanalyzer/internal/analyzer"
	"fileanalyzer/internal/cache"
	"fileanalyzer/internal/cancel"
	"fileanalyzer/internal/discovery"
	"fileanalyzer/internal/downloader"
	"fileanalyzer/internal/logging"
	"fileanalyzer/internal/tracker"
	"fileanalyzer/internal/workerpool"
)

// Params configures a single Run.
type Params struct {
	Directories    []string
	Extensions     []string
	Workers        int
	RequestedCount int
	BooksDir       string
	NoDownload     bool
	DisplayCount   int
	Cache          *cache.AnalysisCache
	Logger         *zap.Logger
	Out            io.Writer

	// ReportInterval overrides the progress reporter's redraw cadence.
	// Zero defaults to one second, matching the original tool's
	// once-a-second progress reporter thread.
	ReportInterval time.Duration
}

// Outcome is everything Render needs to produce the final report.
type Outcome struct {
	TotalDiscovered int
	Tracker         *tracker.Shared
}

// Run discovers files, optionally tops them up via the downloader,
// dispatches each to the worker pool, and blocks until every task
// completes or the process-wide cancellation flag fires.
func Run(p Params) Outcome {
	fmt.Fprintln(p.Out, "\nDiscovering files...")
	files := discovery.Walk(discovery.OSFileSystem{}, p.Directories, p.Extensions, p.Out)
	totalDiscovered := len(files)
	fmt.Fprintf(p.Out, "Found %d files\n", totalDiscovered)

	if !p.NoDownload && totalDiscovered < p.RequestedCount {
		result, err := downloader.FillDemand(p.BooksDir, totalDiscovered, p.RequestedCount, p.Out)
		logging.CheckError(p.Logger, err, "download fill demand failed")

		if result.NewlyDownloaded > 0 {
			files = discovery.Walk(discovery.OSFileSystem{}, p.Directories, p.Extensions, p.Out)
			totalDiscovered = len(files)
			fmt.Fprintf(p.Out, "Found %d files after download\n", totalDiscovered)
		}
	}

	if len(files) == 0 {
		fmt.Fprintln(p.Out, "\nNo files found.")
		return Outcome{TotalDiscovered: 0, Tracker: tracker.New()}
	}

	limit := p.RequestedCount
	if limit <= 0 || limit > len(files) {
		limit = len(files)
	}
	toProcess := files[:limit]

	if limit < totalDiscovered {
		fmt.Fprintf(p.Out, "Processing %d files (limited from %d discovered files)\n", limit, totalDiscovered)
	} else {
		fmt.Fprintf(p.Out, "Processing %d files\n", limit)
	}

	t := tracker.New()
	t.SetTotal(limit)

	fmt.Fprintf(p.Out, "\nStarting processing with %d worker threads...\n", p.Workers)
	fmt.Fprintln(p.Out, "Press Ctrl+C to safely cancel processing")

	interval := p.ReportInterval
	if interval <= 0 {
		interval = time.Second
	}

	reporterDone := make(chan struct{})
	go reportProgress(t, p.Out, interval, reporterDone)

	pool := workerpool.New(p.Workers)
	for _, path := range toProcess {
		path := path
		pool.Execute(func() { analyzeOne(path, t, p.Cache, p.Logger) })
	}
	pool.Shutdown()

	if cancel.Requested() {
		t.Cancel()
	}
	<-reporterDone

	return Outcome{TotalDiscovered: totalDiscovered, Tracker: t}
}

func analyzeOne(path string, t *tracker.Shared, c *cache.AnalysisCache, logger *zap.Logger) {
	if cancel.Requested() {
		return
	}

	if c != nil {
		if info, err := os.Stat(path); err == nil {
			if hit, ok := c.Lookup(path, info.Size(), info.ModTime()); ok {
				if !cancel.Requested() {
					t.Record(hit)
				}
				return
			}
		}
	}

	analysis := analyzer.Analyze(path, io.Discard)
	logging.Info(logger, "analyzed file", zap.String("path", path), zap.Bool("ok", analysis.IsSuccessful()))

	if c != nil {
		if info, err := os.Stat(path); err == nil {
			c.Store(path, info.Size(), info.ModTime(), analysis)
		}
	}

	if cancel.Requested() {
		return
	}
	t.Record(analysis)
}

// reportProgress prints a single, periodically redrawn progress line
// until every expected file has been recorded or the tracker itself is
// marked cancelled, then closes done.
func reportProgress(t *tracker.Shared, out io.Writer, interval time.Duration, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastCount := -1
	start := time.Now()

	for range ticker.C {
		summary, ok := t.Snapshot()
		if !ok {
			fmt.Fprintln(out, "\n[progress unavailable: tracker lock poisoned by a worker panic]")
			return
		}
		if summary.FilesCompleted != lastCount {
			bar := formatProgressBar(summary.FilesCompleted, summary.Total, 40)
			fmt.Fprintf(out, "\r\x1b[K%s | Elapsed: %.1fs", bar, time.Since(start).Seconds())
			lastCount = summary.FilesCompleted
		}

		if (summary.Total > 0 && summary.FilesCompleted >= summary.Total) || t.IsCancelled() {
			fmt.Fprintln(out)
			return
		}
	}
}

func formatProgressBar(completed, total, width int) string {
	if total == 0 {
		return "[" + repeat("=", width) + "] 0%"
	}

	percentage := float64(completed) / float64(total) * 100.0
	filled := int(percentage / 100.0 * float64(width))
	if filled > width {
		filled = width
	}
	empty := width - filled

	return fmt.Sprintf("[%s%s] %.1f%% (%d/%d)", repeat("=", filled), repeat(" ", empty), percentage, completed, total)
}

func repeat(s string, n int) string {
	if n <= 0 {
		return ""
	}
	out := make([]byte, 0, n*len(s))
	for i := 0; i < n; i++ {
		out = append(out, s...)
	}
	return string(out)
}
