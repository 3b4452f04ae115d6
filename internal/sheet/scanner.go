package sheet

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// ScanStats tracks sheet discovery statistics.
type ScanStats struct {
	FilesDiscovered int // Total files found by glob patterns
	FilesScanned    int // Files kept after filtering
	FilesSkipped    int // Files skipped by gitignore rules
}

var (
	gitIgnoreCache *ignore.GitIgnore
	gitIgnoreOnce  sync.Once
)

// loadGitIgnore loads the project .gitignore once. Missing files
// degrade gracefully to no filtering.
func loadGitIgnore() *ignore.GitIgnore {
	gitIgnoreOnce.Do(func() {
		gi, err := ignore.CompileIgnoreFile(".gitignore")
		if err != nil {
			gitIgnoreCache = nil
			return
		}
		gitIgnoreCache = gi
	})
	return gitIgnoreCache
}

// shouldSkipFile reports whether a discovered sheet file is excluded.
// Gitignore rules only apply to relative paths: absolute paths point
// outside the project and are never filtered by its .gitignore.
func shouldSkipFile(path string) bool {
	if filepath.IsAbs(path) {
		return false
	}

	gi := loadGitIgnore()
	return gi != nil && gi.MatchesPath(path)
}

// Discover expands glob patterns to the list of sheet files to load,
// deduplicated, directories and gitignored files filtered out.
func Discover(patterns []string) ([]string, ScanStats, error) {
	var files []string
	seen := make(map[string]bool)
	stats := ScanStats{}

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, stats, err
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			stats.FilesDiscovered++

			if shouldSkipFile(match) {
				stats.FilesSkipped++
				continue
			}
			files = append(files, match)
			seen[match] = true
			stats.FilesScanned++
		}
	}

	return files, stats, nil
}
