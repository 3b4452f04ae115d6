package sheet

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscoverExpandsGlobs(t *testing.T) {
	dir := t.TempDir()
	mustWrite(t, filepath.Join(dir, "a.cssval.yaml"))
	mustWrite(t, filepath.Join(dir, "nested", "b.cssval.yaml"))
	mustWrite(t, filepath.Join(dir, "nested", "notes.txt"))

	files, stats, err := Discover([]string{filepath.Join(dir, "**", "*.cssval.yaml")})
	require.NoError(t, err)
	assert.Len(t, files, 2)
	assert.Equal(t, 2, stats.FilesDiscovered)
	assert.Equal(t, 2, stats.FilesScanned)
	assert.Equal(t, 0, stats.FilesSkipped)
}

func TestDiscoverDeduplicatesAcrossPatterns(t *testing.T) {
	dir := t.TempDir()
	path := mustWrite(t, filepath.Join(dir, "a.cssval.yaml"))

	files, _, err := Discover([]string{
		filepath.Join(dir, "*.cssval.yaml"),
		filepath.Join(dir, "a.*"),
	})
	require.NoError(t, err)
	require.Equal(t, []string{path}, files)
}

func TestDiscoverSkipsDirectories(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub.cssval.yaml"), 0755))
	mustWrite(t, filepath.Join(dir, "real.cssval.yaml"))

	files, _, err := Discover([]string{filepath.Join(dir, "*.cssval.yaml")})
	require.NoError(t, err)
	require.Len(t, files, 1)
}

func mustWrite(t *testing.T, path string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("values: {}\n"), 0644))
	return path
}
