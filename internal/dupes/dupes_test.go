package dupes

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLog = slog.New(slog.NewTextHandler(io.Discard, nil))

func write(t *testing.T, dir, rel, content string) string {
	t.Helper()
	path := filepath.Join(dir, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFind_ByHash(t *testing.T) {
	dir := t.TempDir()
	a := write(t, dir, "a.mkv", "same content")
	b := write(t, dir, "sub/b.mkv", "same content")
	write(t, dir, "c.mkv", "different")

	groups, err := Find(dir, []string{".mkv"}, true, ByHash, testLog)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	for _, paths := range groups {
		assert.ElementsMatch(t, []string{a, b}, paths)
	}
}

func TestFind_ByHash_SameSizeDifferentContent(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "a.mkv", "aaaa")
	write(t, dir, "b.mkv", "bbbb")

	groups, err := Find(dir, []string{".mkv"}, false, ByHash, testLog)
	require.NoError(t, err)
	assert.Empty(t, groups)
}

func TestFind_BySize(t *testing.T) {
	dir := t.TempDir()
	a := write(t, dir, "a.mkv", "aaaa")
	b := write(t, dir, "b.mkv", "bbbb")
	write(t, dir, "c.mkv", "c")

	groups, err := Find(dir, []string{".mkv"}, false, BySize, testLog)
	require.NoError(t, err)
	require.Contains(t, groups, "4")
	assert.ElementsMatch(t, []string{a, b}, groups["4"])
}

func TestFind_ByName(t *testing.T) {
	dir := t.TempDir()
	a := write(t, dir, "one/Movie.mkv", "x")
	b := write(t, dir, "two/movie.mkv", "yy")

	groups, err := Find(dir, []string{".mkv"}, true, ByName, testLog)
	require.NoError(t, err)
	require.Contains(t, groups, "movie.mkv")
	assert.ElementsMatch(t, []string{a, b}, groups["movie.mkv"])
}

func TestFind_IgnoresOtherExtensions(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "a.mkv", "same")
	write(t, dir, "b.txt", "same")

	groups, err := Find(dir, []string{".mkv"}, false, ByHash, testLog)
	require.NoError(t, err)
	assert.Empty(t, groups)
}

func TestFind_MissingDir(t *testing.T) {
	_, err := Find(filepath.Join(t.TempDir(), "nope"), []string{".mkv"}, false, ByHash, testLog)
	assert.Error(t, err)
}
