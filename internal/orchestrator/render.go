package orchestrator

import (
	"fmt"
	"io"
	"strings"

	"fileanalyzer/internal/sortutil"
	"fileanalyzer/internal/stats"
)

const maxErrorSummaryLines = 10

// Render writes the final report — status banner, aggregate
// statistics, a sample of per-file results, and an error summary — to
// out, mirroring the original tool's display_results layout exactly.
func Render(out io.Writer, outcome Outcome, displayCount int, resultsPath string) {
	t := outcome.Tracker
	summary, ok := t.Snapshot()
	if !ok {
		fmt.Fprintln(out, "\n"+strings.Repeat("=", 80))
		fmt.Fprintln(out, "No snapshot available (tracker lock poisoned by a worker panic)")
		fmt.Fprintln(out, strings.Repeat("=", 80))
		fmt.Fprintf(out, "\nFull results saved to: %s\n\n\n", resultsPath)
		return
	}

	fmt.Fprintln(out, "\n"+strings.Repeat("=", 80))
	if t.IsCancelled() {
		fmt.Fprintln(out, "Processing Cancelled by User")
	} else {
		fmt.Fprintln(out, "Processing Complete!")
	}
	fmt.Fprintln(out, strings.Repeat("=", 80))

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Final Statistics:")
	fmt.Fprintf(out, "  Total Files Discovered: %d\n", outcome.TotalDiscovered)
	fmt.Fprintf(out, "  Total Files Analyzed: %d\n", summary.FilesCompleted)
	fmt.Fprintf(out, "  Successfully Analyzed: %d\n", summary.FilesCompleted-summary.TotalErrors)
	fmt.Fprintf(out, "  Total Errors: %d\n", summary.TotalErrors)
	fmt.Fprintf(out, "  Total Time: %.2fs\n", summary.Elapsed.Seconds())
	fmt.Fprintln(out)

	// Snapshot already confirmed the tracker isn't poisoned, and
	// poisoning is permanent, so these reads cannot fail here.
	analyses, _ := t.Completed()
	actualCount := len(analyses)
	showCount := displayCount
	if showCount > actualCount {
		showCount = actualCount
	}

	if showCount == 0 {
		fmt.Fprintln(out, "No files to display.")
		fmt.Fprintf(out, "\nFull results saved to: %s\n\n\n", resultsPath)
		return
	}

	fmt.Fprintf(out, "Results (%d of %d files):\n", showCount, actualCount)
	fmt.Fprintln(out, strings.Repeat("-", 80))

	for _, a := range analyses[:showCount] {
		renderAnalysis(out, a)
	}

	errorLog, _ := t.Errors()
	renderErrorSummary(out, errorLog)

	fmt.Fprintln(out, strings.Repeat("=", 80))
	fmt.Fprintf(out, "\nFull results saved to: %s\n\n\n", resultsPath)
}

func renderAnalysis(out io.Writer, a stats.Analysis) {
	fmt.Fprintf(out, "\nFile: %s\n", a.Filename)

	status := " Success"
	if !a.IsSuccessful() {
		status = " Errors!!!"
	}
	fmt.Fprintf(out, "  Status: %s\n", status)
	fmt.Fprintf(out, "  Processing Time: %.3fms\n", a.ProcessingTime.Seconds()*1000.0)
	fmt.Fprintf(out, "  File Size: %d bytes\n", a.Stats.SizeBytes)
	fmt.Fprintf(out, "  Lines: %d\n", a.Stats.LineCount)
	fmt.Fprintf(out, "  Words: %d\n", a.Stats.WordCount)

	if a.Stats.LineCount > 0 {
		fmt.Fprintf(out, "  Avg Words per Line: %.2f\n", float64(a.Stats.WordCount)/float64(a.Stats.LineCount))
	}

	if len(a.Stats.CharFrequencies) > 0 {
		renderTopCharacters(out, a.Stats.CharFrequencies)
	}

	if len(a.Errors) > 0 {
		fmt.Fprintln(out, "  Errors:")
		for _, e := range a.Errors {
			fmt.Fprintf(out, "    - %s\n", e.Error())
		}
	} else {
		fmt.Fprintln(out, "  No errors while processing file")
	}
}

type charCount struct {
	ch    rune
	count int64
}

func renderTopCharacters(out io.Writer, freqs map[rune]int64) {
	pairs := make([]charCount, 0, len(freqs))
	for ch, n := range freqs {
		pairs = append(pairs, charCount{ch, n})
	}
	sortutil.SortBy(pairs, func(a, b charCount) bool { return a.count > b.count })

	fmt.Fprintln(out, "  Top Characters:")
	n := len(pairs)
	if n > 5 {
		n = 5
	}
	for _, p := range pairs[:n] {
		fmt.Fprintf(out, "    %s : %d\n", displayChar(p.ch), p.count)
	}
}

func displayChar(ch rune) string {
	switch ch {
	case ' ':
		return "[space]"
	case '\n':
		return "[newline]"
	case '\t':
		return "[tab]"
	default:
		return string(ch)
	}
}

func renderErrorSummary(out io.Writer, errors []string) {
	if len(errors) == 0 {
		return
	}

	fmt.Fprintln(out, "\n"+strings.Repeat("-", 80))
	fmt.Fprintln(out, "Error Summary:")

	n := len(errors)
	if n > maxErrorSummaryLines {
		n = maxErrorSummaryLines
	}
	for _, e := range errors[:n] {
		fmt.Fprintf(out, "  - %s\n", e)
	}
	if len(errors) > maxErrorSummaryLines {
		fmt.Fprintf(out, "  ... and %d more errors\n", len(errors)-maxErrorSummaryLines)
	}
}
