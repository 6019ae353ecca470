// Package config holds runtime configuration: defaults, the optional TOML
// config file, and validation. CLI flags are bound in cmd/mp3weld and
// override file values.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// --- Enum types for validated string fields ---

// GroupingMode selects how matching files in one directory are grouped.
type GroupingMode string

const (
	// GroupPrefix groups by the filename text before " - <digits>.mp3";
	// one directory can yield several groups.
	GroupPrefix GroupingMode = "prefix"
	// GroupDirectory collapses all matches in a directory into a single
	// group keyed by the directory's own name.
	GroupDirectory GroupingMode = "directory"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig],
// optionally overlaid by [LoadFile], and then mutated by CLI flags before
// being passed (by pointer) to packages that need it.
type Config struct {
	// Target (set from the positional arg).
	RootDir string

	// Grouping policy.
	Mode GroupingMode // Default: "prefix".

	// Behavior flags.
	DryRun       bool
	SkipExisting bool // Default: true. Cleared by --force.
	KeepPartial  bool // Keep a truncated destination after a failed merge.
	WriteTags    bool // Tag merged output with ID3v2 title/album.

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
	CheckOnly bool      // Run --check diagnostics and exit.

	// External tool settings (config file only, not flag-exposed).
	FFmpegBin   string // Default: "ffmpeg" (resolved via PATH).
	ManifestDir string // Default: os.TempDir(). Where concat manifests are written.
}

// DefaultConfig returns a Config with all defaults. Used as the base before
// the config file and CLI flags apply overrides.
func DefaultConfig() Config {
	return Config{
		Mode:         GroupPrefix,
		SkipExisting: true,
		ColorMode:    ColorAuto,
		FFmpegBin:    "ffmpeg",
		ManifestDir:  os.TempDir(),
	}
}

// ParseGroupingMode validates a grouping mode string (case-insensitive).
func ParseGroupingMode(s string) (GroupingMode, error) {
	switch strings.ToLower(s) {
	case "prefix":
		return GroupPrefix, nil
	case "directory", "dir":
		return GroupDirectory, nil
	}
	return "", fmt.Errorf("invalid grouping mode %q (use 'prefix' or 'directory')", s)
}

// ParseColorMode validates a color mode string (case-insensitive).
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(s) {
	case "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	}
	return "", fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", s)
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks that enum fields hold valid values and that required
// settings are present. When not in CheckOnly mode the root directory must
// be set.
func (c *Config) Validate() error {
	switch c.Mode {
	case GroupPrefix, GroupDirectory:
		// valid
	default:
		return errors.New("invalid grouping mode (use 'prefix' or 'directory')")
	}

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if c.FFmpegBin == "" {
		return errors.New("ffmpeg binary must not be empty")
	}

	if c.CheckOnly {
		return nil
	}
	if c.RootDir == "" {
		return errors.New("need a target directory")
	}
	return nil
}

// ValidateRoot ensures the target exists and is a directory. Called after
// flag parsing, before any processing.
func (c *Config) ValidateRoot() error {
	fi, err := os.Stat(c.RootDir)
	if err != nil {
		return fmt.Errorf("target directory %s: %w", c.RootDir, err)
	}
	if !fi.IsDir() {
		return fmt.Errorf("target %s is not a directory", c.RootDir)
	}
	return nil
}
