package group

import (
	"path/filepath"
	"sort"
	"strconv"
)

// Sequence number extraction patterns, tried in order. The trailing form
// wins over the leading form when both could apply.
var (
	reTrailingNum = mustPattern(`-\s*(\d+)\.mp3$`)
	reLeadingNum  = mustPattern(`^(\d+)\s*[-.\s]`)
)

// SequenceNumber extracts the part number from a filename: the digits before
// the extension ("... - 07.mp3" -> 7), else the digits at the start
// ("01 - Chapter.mp3" -> 1), else 0. Extraction never fails; files without
// a recognizable number sort first.
func SequenceNumber(path string) int {
	name := filepath.Base(path)
	if m := reTrailingNum.FindStringSubmatch(name); m != nil {
		n, _ := strconv.Atoi(m[1])
		return n
	}
	if m := reLeadingNum.FindStringSubmatch(name); m != nil {
		n, _ := strconv.Atoi(m[1])
		return n
	}
	return 0
}

// SortBySequence returns the files ordered ascending by sequence number.
// The sort is stable: ties (including multiple zero fallbacks) keep their
// input order. The input slice is not modified.
func SortBySequence(files []string) []string {
	sorted := append([]string(nil), files...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return SequenceNumber(sorted[i]) < SequenceNumber(sorted[j])
	})
	return sorted
}
