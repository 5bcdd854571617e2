package errs

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromOS_NotExist(t *testing.T) {
	_, err := os.Stat("/definitely/does/not/exist/anywhere")
	require.Error(t, err)

	e := FromOS(err)
	require.Equal(t, FileNotFound, e.Kind)
}

func TestKindString(t *testing.T) {
	require.Equal(t, "DirectoryError", DirectoryError.String())
	require.Equal(t, "IoError", Kind(999).String())
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{FileNotFound, "File not found: x"},
		{PermissionDenied, "Permission denied: x"},
		{DirectoryError, "Directory error: x"},
		{CorruptedFile, "Corrupted or unreadable file: x"},
		{InvalidPath, "Invalid path: x"},
		{SystemResource, "System resource error: x"},
		{SymlinkError, "Symbolic link error: x"},
		{Cancelled, "Cancelled: x"},
		{ParseError, "Parse error: x"},
		{IoError, "IO Error: x"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, New(tt.kind, "x").Error())
	}
}

func TestUnwrap(t *testing.T) {
	cause := os.ErrClosed
	e := wrap(IoError, "closed", cause)
	require.ErrorIs(t, e, cause)
}
