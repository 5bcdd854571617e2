package downloader

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFillDemand_NoShortfallIsNoop(t *testing.T) {
	var out bytes.Buffer
	result, err := FillDemand(t.TempDir(), 10, 5, &out)
	require.NoError(t, err)
	require.Equal(t, 10, result.TotalFiles)
	require.Equal(t, 0, result.NewlyDownloaded)
	require.Empty(t, out.String())
}

func TestDownloadBook_SkipsExistingFile(t *testing.T) {
	dir := t.TempDir()
	book := Catalog[0]
	require.NoError(t, os.WriteFile(book.filePath(dir), []byte("already here"), 0o644))

	var out bytes.Buffer
	err := downloadBook(book, dir, &out)
	require.NoError(t, err)
	require.Contains(t, out.String(), "already exists")
}

func TestBook_URLAndPath(t *testing.T) {
	b := Book{ID: 1661, Name: "Sherlock_Holmes"}
	require.Equal(t, "https://www.gutenberg.org/ebooks/1661.txt.utf-8", b.url())
	require.Equal(t, filepath.ToSlash(b.filePath("books")), "books/Sherlock_Holmes.txt")
}

func TestCatalog_NonEmptyAndUnique(t *testing.T) {
	require.NotEmpty(t, Catalog)

	seen := make(map[int]bool, len(Catalog))
	for _, b := range Catalog {
		require.False(t, seen[b.ID], "duplicate catalog id %d", b.ID)
		seen[b.ID] = true
	}
}
