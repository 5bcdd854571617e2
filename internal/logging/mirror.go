package logging

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sync"
)

// Mirror duplicates every write to stdout and, if one could be opened,
// a buffered results file — matching the original's "write to console
// and file" logger, which clears the results file once at startup and
// appends+flushes on every call afterward. When the file cannot be
// created (permissions, read-only filesystem), Mirror degrades to
// stdout-only rather than failing the run.
type Mirror struct {
	mu     sync.Mutex
	stdout io.Writer
	file   *os.File
	buf    *bufio.Writer
}

// NewMirror opens path for truncated write and returns a Mirror
// writing to both it and stdout. If path cannot be opened, the
// returned Mirror silently writes to stdout only, and ok is false.
func NewMirror(path string) (m *Mirror, ok bool) {
	m = &Mirror{stdout: os.Stdout}

	file, err := os.Create(path)
	if err != nil {
		return m, false
	}
	m.file = file
	m.buf = bufio.NewWriter(file)
	return m, true
}

// Write implements io.Writer, sending p to stdout and, if open, the
// results file, flushing the file after every call so a crash mid-run
// does not lose buffered output.
func (m *Mirror) Write(p []byte) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n, err := m.stdout.Write(p)
	if err != nil {
		return n, err
	}

	if m.buf != nil {
		if _, ferr := m.buf.Write(p); ferr != nil {
			return n, nil
		}
		_ = m.buf.Flush()
	}
	return n, nil
}

// Println writes text followed by a newline through Write.
func (m *Mirror) Println(text string) {
	fmt.Fprintln(m, text)
}

// Path returns the results file path, for the "results saved to" line
// printed once a run completes. Empty if the file never opened.
func (m *Mirror) Path() string {
	if m.file == nil {
		return ""
	}
	return m.file.Name()
}

// Close flushes and closes the results file, if one is open.
func (m *Mirror) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.buf != nil {
		_ = m.buf.Flush()
	}
	if m.file != nil {
		return m.file.Close()
	}
	return nil
}
