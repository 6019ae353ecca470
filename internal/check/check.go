// Package check provides system diagnostics (--check mode) and the
// pre-pipeline dependency validation for ffmpeg.
package check

import (
	"errors"
	"os/exec"
	"strings"

	"mp3weld/internal/config"
)

// ErrFfmpegNotFound is returned by CheckDeps when the configured ffmpeg
// binary cannot be resolved.
var ErrFfmpegNotFound = errors.New("ffmpeg not found on PATH")

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
}

// CheckDeps is the pre-pipeline validation: the configured ffmpeg binary
// must be resolvable. Run once before any directory is touched; absence is
// a fatal startup condition, never a per-directory failure.
func CheckDeps(cfg *config.Config) error {
	if _, err := exec.LookPath(cfg.FFmpegBin); err != nil {
		return ErrFfmpegNotFound
	}
	return nil
}

// RunCheck runs the interactive --check flow: ffmpeg presence, version, and
// concat demuxer support. Returns false when ffmpeg is unusable.
func RunCheck(cfg *config.Config, log Logger) bool {
	log.Info("=== System Check ===")

	if _, err := exec.LookPath(cfg.FFmpegBin); err != nil {
		log.Error("ffmpeg not found (looked for %q)", cfg.FFmpegBin)
		return false
	}

	ok := true
	if !checkVersion(cfg.FFmpegBin, log) {
		ok = false
	}
	if !checkConcatDemuxer(cfg.FFmpegBin, log) {
		ok = false
	}
	return ok
}

// checkVersion logs the first line of `ffmpeg -version`.
func checkVersion(bin string, log Logger) bool {
	out, err := exec.Command(bin, "-version").Output()
	if err != nil {
		log.Warn("ffmpeg found but -version failed: %v", err)
		return false
	}
	firstLine := strings.TrimSpace(string(out))
	if idx := strings.Index(firstLine, "\n"); idx > 0 {
		firstLine = firstLine[:idx]
	}
	log.Success("ffmpeg: %s", firstLine)
	return true
}

// checkConcatDemuxer verifies the build lists the concat demuxer, which the
// merge pipeline depends on.
func checkConcatDemuxer(bin string, log Logger) bool {
	out, err := exec.Command(bin, "-hide_banner", "-demuxers").Output()
	if err != nil {
		log.Warn("Could not list demuxers: %v", err)
		return false
	}
	for _, line := range strings.Split(string(out), "\n") {
		fields := strings.Fields(line)
		if len(fields) >= 2 && fields[1] == "concat" {
			log.Success("concat demuxer available")
			return true
		}
	}
	log.Error("ffmpeg build lacks the concat demuxer")
	return false
}
