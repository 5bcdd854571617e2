// Package downloader fills a shortfall between the number of files an
// analysis run found and the number the caller asked to process, by
// fetching public-domain books from Project Gutenberg into the
// configured books directory. It shells out to curl (or, on Windows,
// PowerShell's Invoke-WebRequest) rather than embedding an HTTP
// client, matching the original tool's behavior exactly.
package downloader

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"fileanalyzer/internal/errs"
)

// Result reports what a FillDemand call accomplished.
type Result struct {
	TotalFiles      int
	NewlyDownloaded int
}

// FillDemand downloads books into booksDir until total files reaches
// requested, or the catalog is exhausted. current is the number of
// matching files already on disk before this call. Progress and
// per-book status go to out.
func FillDemand(booksDir string, current, requested int, out io.Writer) (Result, error) {
	if requested <= current {
		return Result{TotalFiles: current}, nil
	}
	needed := requested - current

	fmt.Fprintln(out)
	fmt.Fprintln(out, strings.Repeat("-", 80))
	fmt.Fprintln(out, "Not enough files available!")
	fmt.Fprintf(out, "  Current files: %d\n", current)
	fmt.Fprintf(out, "  Requested files: %d\n", requested)
	fmt.Fprintf(out, "  Need to download: %d\n", needed)
	fmt.Fprintln(out, strings.Repeat("-", 80))
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Downloading books from Project Gutenberg...")
	fmt.Fprintln(out)

	newlyDownloaded := 0
	var downloadTimes []time.Duration
	start := time.Now()

	for _, book := range Catalog {
		if newlyDownloaded >= needed {
			break
		}

		path := book.filePath(booksDir)
		if _, err := os.Stat(path); err == nil {
			fmt.Fprintf(out, "   %s (already exists)\n", book.Name)
			continue
		}

		bookStart := time.Now()
		if err := downloadBook(book, booksDir, out); err != nil {
			fmt.Fprintf(out, "\n   Error downloading %s: %s\n", book.Name, err)
			continue
		}

		elapsed := time.Since(bookStart)
		downloadTimes = append(downloadTimes, elapsed)
		newlyDownloaded++

		printProgress(out, downloadTimes, newlyDownloaded, needed, time.Since(start))
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Downloaded %d new files\n", newlyDownloaded)

	total := current + newlyDownloaded
	if total < requested {
		fmt.Fprintln(out)
		fmt.Fprintln(out, strings.Repeat("-", 80))
		fmt.Fprintln(out, "Not enough unique book IDs available to meet the demand!")
		fmt.Fprintf(out, "  Only %d files present, %d requested\n", total, requested)
		fmt.Fprintln(out, strings.Repeat("-", 80))
	}

	return Result{TotalFiles: total, NewlyDownloaded: newlyDownloaded}, nil
}

func downloadBook(book Book, booksDir string, out io.Writer) error {
	path := book.filePath(booksDir)

	if _, err := os.Stat(path); err == nil {
		fmt.Fprintf(out, "    %s (already exists)\n", book.Name)
		return nil
	} else if !os.IsNotExist(err) {
		return errs.FromOS(err)
	}

	if err := os.MkdirAll(booksDir, 0o755); err != nil {
		return errs.FromOS(err)
	}

	url := book.url()
	fmt.Fprintf(out, "  Downloading %s from %s\n", book.Name, url)

	if runtime.GOOS == "windows" {
		return downloadWithPowerShell(url, path, out)
	}
	return downloadWithCurl(url, path, out)
}

func downloadWithCurl(url, path string, out io.Writer) error {
	cmd := exec.Command("curl", "-s", "-o", path, url)
	if err := cmd.Run(); err != nil {
		if _, ok := err.(*exec.ExitError); ok {
			return errs.New(errs.IoError, "curl failed to download "+url)
		}
		return errs.New(errs.SystemResource, "curl not available: "+err.Error())
	}
	fmt.Fprintln(out, "      Successfully downloaded")
	return nil
}

func downloadWithPowerShell(url, path string, out io.Writer) error {
	ps := fmt.Sprintf("Invoke-WebRequest -Uri '%s' -OutFile '%s' -ErrorAction Stop", url, path)
	cmd := exec.Command("powershell", "-NoProfile", "-Command", ps)
	if err := cmd.Run(); err != nil {
		if _, ok := err.(*exec.ExitError); ok {
			return errs.New(errs.IoError, "download failed for "+url)
		}
		return errs.New(errs.SystemResource, "PowerShell not available: "+err.Error())
	}
	fmt.Fprintln(out, "      Successfully downloaded")
	return nil
}

func printProgress(out io.Writer, times []time.Duration, done, needed int, elapsedTotal time.Duration) {
	var avg time.Duration
	if len(times) > 0 {
		var sum time.Duration
		for _, d := range times {
			sum += d
		}
		avg = sum / time.Duration(len(times))
	}

	remaining := needed - done
	estimatedRemaining := avg.Seconds() * float64(remaining)

	percent := float64(done) / float64(needed) * 100.0
	const barLength = 40
	filled := int(percent / 100.0 * barLength)
	if filled > barLength {
		filled = barLength
	}
	bar := strings.Repeat("=", filled) + strings.Repeat(" ", barLength-filled)

	hours := estimatedRemaining / 3600.0
	minutes := (estimatedRemaining - hours*3600) / 60.0
	secs := estimatedRemaining - hours*3600 - minutes*60

	fmt.Fprintf(out, "\r[%s] %.1f%% (%d/%d) | ", bar, percent, done, needed)
	switch {
	case hours > 0:
		fmt.Fprintf(out, "ETA: %.0fh %.0fm %.0fs", hours, minutes, secs)
	case minutes > 0:
		fmt.Fprintf(out, "ETA: %.0fm %.0fs", minutes, secs)
	default:
		fmt.Fprintf(out, "ETA: %.0fs", secs)
	}
	fmt.Fprintf(out, " | Elapsed: %.1fs", elapsedTotal.Seconds())
}
