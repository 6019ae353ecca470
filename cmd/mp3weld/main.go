// Command mp3weld is the CLI entrypoint for the multi-part MP3 merger.
//
// It parses flags, validates configuration and the target directory, and
// either runs system diagnostics (--check) or the merge pipeline.
package main

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/gofrs/flock"

	"mp3weld/internal/check"
	"mp3weld/internal/concat"
	"mp3weld/internal/config"
	"mp3weld/internal/display"
	"mp3weld/internal/logging"
	"mp3weld/internal/pipeline"
)

// version and commit are injected at build time via -ldflags.
// When built with plain "go build" (no make), these retain their defaults.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "mp3weld: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	// Phase 1: Bootstrap — validate config, then bring up the logger.
	// Errors before this point surface through cobra on stderr.
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.NewLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Close()

	// Phase 2: Logger available — all output goes through log from here on.
	display.PrintBanner()

	if cfg.CheckOnly {
		if !check.RunCheck(cfg, log) {
			return errors.New("system check failed")
		}
		return nil
	}

	// Resolve the target once; everything downstream gets an explicit
	// absolute root, never the process working directory.
	rootAbs, err := absPath(cfg.RootDir)
	if err != nil {
		return fmt.Errorf("target directory %s: %w", cfg.RootDir, err)
	}
	cfg.RootDir = rootAbs
	if err := cfg.ValidateRoot(); err != nil {
		return err
	}

	log.Info("=== mp3weld v%s (%s) ===", version, commit)
	log.Info("Target: %s", cfg.RootDir)
	if cfg.DryRun {
		log.Warn("DRY RUN — no files will be written")
	}
	log.Info("")

	// Fail fast if ffmpeg is unavailable; nothing has been touched yet.
	if err := check.CheckDeps(cfg); err != nil {
		return err
	}

	// Single-instance guard: two runs over the same tree would race on the
	// skip-if-exists check and the outputs themselves.
	lock := flock.New(lockPath(cfg.RootDir))
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("run lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("another mp3weld run is active on %s", cfg.RootDir)
	}
	defer lock.Unlock()

	// Phase 3: Signal handling — cancel context on SIGINT/SIGTERM so the
	// pipeline stops between groups without leaving partial output behind.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn("Received interrupt, finishing current merge…")
		cancel()
	}()

	// Phase 4: Run pipeline (walk → detect → sort → merge).
	stats := pipeline.Run(ctx, cfg, log, concat.NewMerger(cfg))

	if stats.Failed > 0 {
		return fmt.Errorf("%d merge(s) failed", stats.Failed)
	}
	return nil
}

// absPath returns the absolute, symlink-resolved path so the lock key and
// all logged paths are stable regardless of how the target was spelled.
func absPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}

// lockPath derives the per-root lock file location under the system temp
// directory, keyed by a hash of the resolved root.
func lockPath(rootAbs string) string {
	h := fnv.New32a()
	h.Write([]byte(rootAbs))
	return filepath.Join(os.TempDir(), fmt.Sprintf("mp3weld-%08x.lock", h.Sum32()))
}
