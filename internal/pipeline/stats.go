package pipeline

// RunStats tracks aggregate counters and byte totals across a run.
type RunStats struct {
	Dirs             int // candidate directories visited
	Merged           int
	Skipped          int
	Failed           int
	Unreadable       int // directories that could not be listed
	TotalOutputBytes int64

	// Rows holds per-directory counts for the summary table, in
	// processing order. Directories without any group activity are
	// omitted.
	Rows []DirStats
}

// DirStats holds merge counters for one directory.
type DirStats struct {
	Dir     string
	Merged  int
	Skipped int
	Failed  int
}

func (d *DirStats) active() bool {
	return d.Merged+d.Skipped+d.Failed > 0
}
