// Package discovery walks a set of directories and returns the paths
// of files matching an extension whitelist.
package discovery

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// FileSystem abstracts the directory/file operations discovery needs,
// parameterizing the walk on an interface rather than calling the os
// package directly — this is what lets Walk be exercised by a mock in
// tests instead of touching disk.
type FileSystem interface {
	ReadDir(path string) ([]os.DirEntry, error)
	Join(elem ...string) string
	// Stat follows symlinks, matching the original's use of Rust's
	// symlink-following fs::metadata: symlink traversal follows
	// the link target's metadata, not the link itself.
	Stat(path string) (os.FileInfo, error)
}

// OSFileSystem is the real, disk-backed FileSystem.
type OSFileSystem struct{}

func (OSFileSystem) ReadDir(path string) ([]os.DirEntry, error) { return os.ReadDir(path) }
func (OSFileSystem) Join(elem ...string) string                 { return filepath.Join(elem...) }
func (OSFileSystem) Stat(path string) (os.FileInfo, error)      { return os.Stat(path) }

// Walk recursively scans each of dirs for files whose lowercased
// extension (without the leading dot) appears in extensions, returning
// every match. Directory-read errors and unreadable entries are
// reported to warn (if non-nil) and skipped rather than aborting
// discovery.
func Walk(fsys FileSystem, dirs []string, extensions []string, warn io.Writer) []string {
	allowed := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		allowed[strings.ToLower(ext)] = true
	}

	var out []string
	for _, dir := range dirs {
		walkDir(fsys, dir, allowed, warn, &out)
	}
	return out
}

func walkDir(fsys FileSystem, dir string, allowed map[string]bool, warn io.Writer, out *[]string) {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		warnf(warn, "Warning: Cannot read directory '%s': %s (skipping directory)", dir, err)
		return
	}

	for _, entry := range entries {
		path := fsys.Join(dir, entry.Name())

		info, err := fsys.Stat(path)
		if err != nil {
			warnf(warn, "Warning: Cannot access %s: %s (skipping)", path, err)
			continue
		}

		if info.IsDir() {
			walkDir(fsys, path, allowed, warn, out)
			continue
		}
		if !info.Mode().IsRegular() {
			continue
		}

		ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(entry.Name())), ".")
		if allowed[ext] {
			*out = append(*out, path)
		}
	}
}

func warnf(warn io.Writer, format string, args ...any) {
	if warn == nil {
		return
	}
	fmt.Fprintf(warn, format+"\n", args...)
}
