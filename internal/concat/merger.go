package concat

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"

	"mp3weld/internal/config"
)

// Merger runs ffmpeg concat merges. Bin is the ffmpeg binary (name or
// path), TempDir is where transient manifests are written.
type Merger struct {
	Bin     string
	TempDir string
}

// NewMerger builds a Merger from runtime configuration.
func NewMerger(cfg *config.Config) *Merger {
	return &Merger{Bin: cfg.FFmpegBin, TempDir: cfg.ManifestDir}
}

// Result holds the outcome of a single merge. Err is nil on success; Stderr
// carries ffmpeg's diagnostic output for the caller to log on failure.
type Result struct {
	Stderr string
	Err    error
}

// OK reports whether the merge succeeded.
func (r Result) OK() bool { return r.Err == nil }

// Merge concatenates sources (already ordered) into dest without
// re-encoding: the manifest lists the inputs, -safe 0 permits absolute
// paths, -c copy keeps the streams bit-for-bit, -y overwrites dest.
//
// The manifest is removed on every exit path. Errors preparing or invoking
// ffmpeg are returned in the Result, never propagated.
func (m *Merger) Merge(ctx context.Context, sources []string, dest string) Result {
	manifest, err := createManifest(m.TempDir, sources)
	if err != nil {
		return Result{Err: fmt.Errorf("write manifest: %w", err)}
	}
	defer os.Remove(manifest)

	cmd := exec.CommandContext(ctx, m.Bin,
		"-hide_banner", "-nostdin", "-loglevel", "error",
		"-f", "concat",
		"-safe", "0",
		"-i", manifest,
		"-c", "copy",
		"-y",
		dest,
	)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err = cmd.Run()
	return Result{Stderr: stderr.String(), Err: err}
}
