package pipeline

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// Discover walks root and returns every descendant directory that directly
// contains at least one .mp3-suffixed entry, sorted lexicographically for
// deterministic processing order. The root itself is never a candidate.
//
// Unreadable subtrees are reported through onError and skipped; the walk
// itself never aborts.
func Discover(root string, onError func(path string, err error)) []string {
	seen := make(map[string]bool)
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if onError != nil {
				onError(path, err)
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if !strings.EqualFold(filepath.Ext(path), ".mp3") {
			return nil
		}
		dir := filepath.Dir(path)
		if dir != root {
			seen[dir] = true
		}
		return nil
	})

	dirs := make([]string, 0, len(seen))
	for dir := range seen {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)
	return dirs
}
