//go:build unix

package errs

import "syscall"

func syscallNotADirectory() error { return syscall.ENOTDIR }
func syscallIsADirectory() error  { return syscall.EISDIR }
func syscallNoSpace() error       { return syscall.ENOSPC }
func syscallNameTooLong() error   { return syscall.ENAMETOOLONG }
