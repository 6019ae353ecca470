package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"mp3weld/internal/concat"
	"mp3weld/internal/config"
	"mp3weld/internal/display"
	"mp3weld/internal/group"
	"mp3weld/internal/logging"
	"mp3weld/internal/tag"
)

// Merger is the concatenation backend. Satisfied by [concat.Merger];
// defined here so tests can exercise the full pipeline without ffmpeg.
type Merger interface {
	Merge(ctx context.Context, sources []string, dest string) concat.Result
}

// Run is the top-level entry point. It discovers candidate directories under
// cfg.RootDir and processes them one at a time, each group sequentially,
// blocking on every ffmpeg invocation. Returns aggregate stats.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger, m Merger) RunStats {
	var stats RunStats

	dirs := Discover(cfg.RootDir, func(path string, err error) {
		log.Warn("Skipping unreadable path: %v", err)
		stats.Unreadable++
	})
	stats.Dirs = len(dirs)

	log.Info("Found %d directories with MP3 files", len(dirs))
	log.Info("Grouping mode: %s", cfg.Mode)
	fmt.Println()

	for _, dir := range dirs {
		if ctx.Err() != nil {
			log.Warn("Interrupted")
			break
		}
		processDirectory(ctx, cfg, log, m, dir, &stats)
	}

	logSummary(cfg, log, &stats)
	return stats
}

// processDirectory detects groups in one directory and merges each in
// sorted key order. Listing failures are logged and skipped; the walk
// continues with the next directory.
func processDirectory(
	ctx context.Context,
	cfg *config.Config,
	log *logging.Logger,
	m Merger,
	dir string,
	stats *RunStats,
) {
	log.Info("Processing: %s", dir)

	groups, err := group.DetectGroups(dir, cfg.Mode)
	if err != nil {
		log.Warn("  %v", err)
		stats.Unreadable++
		return
	}
	if len(groups) == 0 {
		log.Debug("  No part groups found")
		return
	}

	keys := make([]string, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	ds := DirStats{Dir: dir}
	for _, key := range keys {
		if ctx.Err() != nil {
			break
		}
		processGroup(ctx, cfg, log, m, dir, key, groups[key], stats, &ds)
	}
	if ds.active() {
		stats.Rows = append(stats.Rows, ds)
	}
	fmt.Println()
}

// processGroup merges one group: skip-if-exists check, sequence sort,
// concat, optional tagging. Failures never abort the run.
func processGroup(
	ctx context.Context,
	cfg *config.Config,
	log *logging.Logger,
	m Merger,
	dir, key string,
	files []string,
	stats *RunStats,
	ds *DirStats,
) {
	dest := filepath.Join(dir, key+".mp3")
	log.Info("  Found %d parts for '%s'", len(files), key)

	// Destination existing means a previous run already produced this
	// group; skipping here is what makes re-runs a no-op.
	if cfg.SkipExisting {
		if _, err := os.Stat(dest); err == nil {
			log.Warn("  Skip (exists): %s", filepath.Base(dest))
			stats.Skipped++
			ds.Skipped++
			return
		}
	}

	ordered := group.SortBySequence(files)
	for _, f := range ordered {
		log.Debug("    %2d  %s", group.SequenceNumber(f), filepath.Base(f))
	}

	if cfg.DryRun {
		log.Success("  [DRY] Would merge %d parts -> %s", len(ordered), filepath.Base(dest))
		stats.Merged++
		ds.Merged++
		return
	}

	log.Info("  Merging %d parts into '%s'...", len(ordered), filepath.Base(dest))
	start := time.Now()
	res := m.Merge(ctx, ordered, dest)
	if !res.OK() {
		log.Error("  Merge failed: %v", res.Err)
		logStderr(log, res.Stderr)
		if !cfg.KeepPartial {
			os.Remove(dest)
		}
		stats.Failed++
		ds.Failed++
		return
	}

	if cfg.WriteTags {
		if err := tag.Apply(dest, key, filepath.Base(dir)); err != nil {
			log.Warn("  Tagging failed: %v", err)
		}
	}

	var outSize int64
	if fi, err := os.Stat(dest); err == nil {
		outSize = fi.Size()
	}
	stats.TotalOutputBytes += outSize
	stats.Merged++
	ds.Merged++

	log.Success("  Merged into %s (%s) in %.1fs",
		filepath.Base(dest), display.FormatBytes(outSize), time.Since(start).Seconds())
}

// logStderr logs the tail of ffmpeg's diagnostic output after a failed merge.
func logStderr(log *logging.Logger, stderr string) {
	if stderr == "" {
		return
	}
	log.Error("  Last ffmpeg output:")
	lines := strings.Split(strings.TrimSpace(stderr), "\n")
	start := 0
	if len(lines) > 20 {
		start = len(lines) - 20
	}
	for _, l := range lines[start:] {
		log.Error("    %s", l)
	}
}

func logSummary(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	log.Info("==============================")
	log.Info("Done: %d merged, %d skipped, %d failed", stats.Merged, stats.Skipped, stats.Failed)
	if stats.Unreadable > 0 {
		log.Warn("Unreadable paths skipped: %d", stats.Unreadable)
	}

	if len(stats.Rows) > 0 {
		rows := make([]display.SummaryRow, 0, len(stats.Rows))
		for _, r := range stats.Rows {
			rows = append(rows, display.SummaryRow{
				Dir:     r.Dir,
				Merged:  r.Merged,
				Skipped: r.Skipped,
				Failed:  r.Failed,
			})
		}
		fmt.Println(display.RenderSummary(rows))
	}

	if cfg.DryRun {
		log.Info("Total output written: n/a (dry run)")
		return
	}
	if stats.Merged > 0 {
		log.Success("Total output written: %s", display.FormatBytes(stats.TotalOutputBytes))
	}
}
