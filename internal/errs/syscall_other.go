//go:build !unix

package errs

import "errors"

// On non-unix platforms (Windows) the syscall errno values the unix
// build maps DirectoryError/SystemResource/InvalidPath from don't apply
// the same way; fall back to IoError/InvalidPath defaults via FromOS's
// higher-priority fs.ErrNotExist/fs.ErrPermission/fs.ErrInvalid checks.
var (
	errNoMatch = errors.New("no platform-specific syscall mapping")
)

func syscallNotADirectory() error { return errNoMatch }
func syscallIsADirectory() error  { return errNoMatch }
func syscallNoSpace() error       { return errNoMatch }
func syscallNameTooLong() error   { return errNoMatch }
