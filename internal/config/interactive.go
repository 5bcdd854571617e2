package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"fileanalyzer/internal/cancel"
)

// PromptDirectories interactively collects the directories to scan,
// the same way the original tool did: repeatedly ask for a path,
// accept "done" to stop, offer to create a missing directory, and
// warn (without rejecting) when a directory holds no whitelisted
// extensions. If the operator accepts every prompt with no input at
// all, the default books directory is used.
func PromptDirectories(in io.Reader, out io.Writer, extensions []string) []string {
	reader := bufio.NewReader(in)
	var directories []string

	for {
		if cancel.Requested() {
			return directories
		}

		if len(directories) == 0 {
			fmt.Fprintf(out, "Enter directory path (the default is: %s, or add your own directory. "+
				"The default will download books from https://www.gutenberg.org if needed), "+
				"type 'done' to finish adding directories: ", defaultBooksDir)
		} else {
			fmt.Fprint(out, "Enter another directory path, or 'done' to finish: ")
		}

		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			fmt.Fprintln(out, "Error reading input")
			return directories
		}
		trimmed := strings.TrimSpace(line)

		if cancel.Requested() {
			return directories
		}

		if strings.EqualFold(trimmed, "done") {
			if len(directories) == 0 {
				fmt.Fprintf(out, "Using default directory: %s\n", defaultBooksDir)
				directories = append(directories, defaultBooksDir)
			}
			return directories
		}

		path := trimmed
		if path == "" {
			if len(directories) != 0 {
				fmt.Fprintln(out, "Please enter a valid directory path")
				continue
			}
			fmt.Fprintf(out, "Using default directory: %s\n", defaultBooksDir)
			directories = append(directories, defaultBooksDir)
			continue
		}

		directories = addDirectory(reader, out, directories, path, extensions)
	}
}

func addDirectory(reader *bufio.Reader, out io.Writer, directories []string, path string, extensions []string) []string {
	info, err := os.Stat(path)
	switch {
	case err == nil && info.IsDir():
		fmt.Fprintf(out, " Directory '%s' found\n", path)
		warnIfNoMatchingFiles(out, path, extensions)

		for _, d := range directories {
			if d == path {
				fmt.Fprintln(out, " This directory is already added")
				return directories
			}
		}
		return append(directories, path)

	case err == nil:
		fmt.Fprintf(out, " Path '%s' exists but is not a directory\n", path)
		return directories

	case os.IsNotExist(err):
		fmt.Fprintf(out, " Directory '%s' does not exist\n", path)
		fmt.Fprint(out, "Would you like to create this directory? (yes/no): ")

		response, _ := reader.ReadString('\n')
		response = strings.TrimSpace(response)
		if strings.EqualFold(response, "yes") || strings.EqualFold(response, "y") {
			if mkErr := os.MkdirAll(path, 0o755); mkErr != nil {
				fmt.Fprintf(out, " Failed to create directory '%s': %s\n", path, mkErr)
				return directories
			}
			fmt.Fprintf(out, " Directory '%s' created successfully\n", path)
			return append(directories, path)
		}
		fmt.Fprintf(out, "Skipping directory '%s'\n", path)
		return directories

	default:
		fmt.Fprintf(out, " Cannot access '%s': %s\n", path, err)
		return directories
	}
}

func warnIfNoMatchingFiles(out io.Writer, path string, extensions []string) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return
	}

	allowed := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		allowed[strings.ToLower(ext)] = true
	}

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.TrimPrefix(strings.ToLower(pathExt(e.Name())), ".")
		if allowed[ext] {
			return
		}
	}

	fmt.Fprintln(out, "Warning: No .txt or .md files found in this directory")
	fmt.Fprintln(out, "  (Other file types will be ignored)")
}

func pathExt(name string) string {
	i := strings.LastIndex(name, ".")
	if i < 0 {
		return ""
	}
	return name[i:]
}

// PromptDisplayCount asks how many file results to show, accepting any
// integer in [1, 1000] — the prompt text still says "(1-200)", a
// harmless cosmetic mismatch with the wider range it actually honors.
func PromptDisplayCount(in io.Reader, out io.Writer) int {
	reader := bufio.NewReader(in)

	for {
		if cancel.Requested() {
			return 0
		}

		fmt.Fprint(out, "\nHow many file results to display? (1-200): ")
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return 0
		}

		if cancel.Requested() {
			return 0
		}

		if n, ok := parseCount(strings.TrimSpace(line)); ok {
			return n
		}
		fmt.Fprintln(out, "Invalid input. Please enter a number between 1 and 1000.")
	}
}

// Stdin is the default reader interactive prompts use outside tests.
var Stdin io.Reader = os.Stdin
