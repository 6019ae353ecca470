package group

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"mp3weld/internal/config"
)

// ErrDirectoryAccess is returned (wrapped) when a directory listing fails.
// It is the detector's only failure mode; unmatched files are never errors.
var ErrDirectoryAccess = errors.New("cannot list directory")

// DetectGroups scans the immediate listing of dir and partitions numbered
// MP3 files into merge groups according to mode. Groups with fewer than two
// members are dropped: "merging" a single file would only copy it.
//
// The returned slices preserve the directory enumeration order (os.ReadDir
// sorts by filename), which later serves as the sort tiebreak.
func DetectGroups(dir string, mode config.GroupingMode) (map[string][]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDirectoryAccess, err)
	}

	groups := make(map[string][]string)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		key, ok := matchKey(e.Name(), dir, mode)
		if !ok {
			continue
		}
		groups[key] = append(groups[key], filepath.Join(dir, e.Name()))
	}

	for key, files := range groups {
		if len(files) < 2 {
			delete(groups, key)
		}
	}
	return groups, nil
}

// Filename patterns for numbered parts. Extension matching is
// case-insensitive throughout (.mp3, .MP3, .Mp3).
var (
	// "<text> - <digits>.mp3", any whitespace around the dash.
	reTrailingPart = mustPattern(`^(.+?)\s*-\s*(\d+)\.mp3$`)
	// "<digits><dash/space/period separator><text>.mp3".
	reLeadingPart = mustPattern(`^(\d+)\s*[-.\s]\s*(.+)\.mp3$`)
)

// mustPattern compiles a filename pattern with case-insensitive matching,
// so the extension check covers .mp3, .MP3, .Mp3 without repetition.
func mustPattern(expr string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)` + expr)
}

// matchKey reports whether name is a numbered part under the given policy
// and returns its group key.
//
// Prefix mode accepts only the trailing-number form and keys on the trimmed
// text before the dash, so distinct titles in one directory form distinct
// groups. Directory mode also accepts the leading-number form and keys every
// match on the directory's basename, assuming one directory holds exactly
// one logical work.
func matchKey(name, dir string, mode config.GroupingMode) (string, bool) {
	if mode == config.GroupDirectory {
		if reTrailingPart.MatchString(name) || reLeadingPart.MatchString(name) {
			return filepath.Base(dir), true
		}
		return "", false
	}

	m := reTrailingPart.FindStringSubmatch(name)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

// HasMP3Entry reports whether any entry in entries carries the .mp3
// extension (case-insensitive). Used by the walker to decide which
// directories enter the pipeline at all.
func HasMP3Entry(entries []os.DirEntry) bool {
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), ".mp3") {
			return true
		}
	}
	return false
}
