// Package analyzer implements the per-file analysis pipeline: validate
// a path, read it line by line, and fold every failure into the
// returned Analysis rather than propagating it to the caller.
package analyzer

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
	"unicode"

	"fileanalyzer/internal/errs"
	"fileanalyzer/internal/stats"
)

// MaxLineErrors is the ceiling on consecutive per-line read failures
// before a file is abandoned as corrupted.
const MaxLineErrors = 10

// maxReportedLineErrors caps how many of the early per-line failures
// get a warning written to the warn sink; later ones stay silent until
// the MaxLineErrors ceiling is crossed.
const maxReportedLineErrors = 3

// Analyze reads path and returns a complete Analysis. It never returns
// an error at this boundary: any failure, from path validation through
// line reads, is folded into the returned record's Errors. Per-line
// warnings go to warn, if non-nil.
func Analyze(path string, warn io.Writer) stats.Analysis {
	start := time.Now()
	analysis := stats.New(path)

	if err := validatePath(path); err != nil {
		analysis.AddError(err)
		analysis.ProcessingTime = time.Since(start)
		return analysis
	}

	info, err := os.Stat(path)
	if err != nil {
		analysis.AddError(errs.FromOS(err))
		analysis.ProcessingTime = time.Since(start)
		return analysis
	}
	if !info.Mode().IsRegular() {
		analysis.AddError(errs.New(errs.DirectoryError, "Path is not a regular file: "+path))
		analysis.ProcessingTime = time.Since(start)
		return analysis
	}
	analysis.Stats.SizeBytes = info.Size()

	file, err := os.Open(path)
	if err != nil {
		analysis.AddError(errs.FromOS(err))
		analysis.ProcessingTime = time.Since(start)
		return analysis
	}
	defer file.Close()

	if cerr := calculateStats(file, &analysis.Stats, warn); cerr != nil {
		analysis.AddError(cerr)
	}

	analysis.ProcessingTime = time.Since(start)
	return analysis
}

// validatePath rejects an empty path, a missing path, and directories,
// mapping any existence-check failure through the taxonomy.
func validatePath(path string) *errs.Error {
	if path == "" {
		return errs.New(errs.InvalidPath, "Empty file path")
	}

	info, err := os.Lstat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errs.New(errs.FileNotFound, path)
		}
		return errs.FromOS(err)
	}

	if info.IsDir() {
		return errs.New(errs.DirectoryError, "Path is a directory, not a file: "+path)
	}

	return nil
}

// calculateStats streams r's content line by line, tallying words,
// lines, and character frequencies. A line is only tallied on a
// successful read (including the final, newline-less fragment at
// io.EOF); any other read error increments a consecutive-failure
// counter that a successful read resets to zero. More than
// MaxLineErrors consecutive failures abandons the file as corrupted.
func calculateStats(r io.Reader, out *stats.FileStats, warn io.Writer) *errs.Error {
	reader := bufio.NewReader(r)
	consecutiveErrors := 0
	lineNum := 0

	for {
		line, err := reader.ReadString('\n')
		lineNum++

		switch {
		case err == nil:
			tallyLine(strings.TrimSuffix(line, "\n"), out)
			consecutiveErrors = 0
			continue
		case err == io.EOF:
			if len(line) > 0 {
				tallyLine(line, out)
			}
			return nil
		default:
			consecutiveErrors++
			if warn != nil && consecutiveErrors <= maxReportedLineErrors {
				fmt.Fprintf(warn, "Warning: Failed to read line %d: %s (continuing...)\n", lineNum, err)
			}
			if consecutiveErrors > MaxLineErrors {
				return errs.New(errs.CorruptedFile,
					"Too many read errors (10+ errors, file may be corrupted)")
			}
		}
	}
}

// tallyLine folds one line's content into out: line_count increments,
// word_count gains the number of non-empty whitespace-delimited
// segments, and every character contributes to char_frequencies —
// alphabetic characters contribute each rune of their lowercase folding
// (which for some scripts is more than one rune), everything else
// contributes itself unchanged.
func tallyLine(line string, out *stats.FileStats) {
	line = strings.TrimSuffix(line, "\r")
	out.LineCount++
	out.WordCount += len(strings.Fields(line))

	for _, r := range line {
		if unicode.IsLetter(r) {
			lowered := strings.ToLower(string(r))
			if r == 'İ' {
				// strings.ToLower uses the one-rune simple mapping ("i");
				// the full lowercase of U+0130 is "i" + U+0307.
				lowered = "i̇"
			}
			for _, lower := range lowered {
				out.CharFrequencies[lower]++
			}
		} else {
			out.CharFrequencies[r]++
		}
	}
}
