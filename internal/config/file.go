package config

// This file implements the optional TOML config file. Pointer fields
// distinguish "not set" from zero values so the file only overrides what it
// actually mentions; CLI flags are applied afterwards and win over both.

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// fileConfig mirrors the on-disk TOML layout.
type fileConfig struct {
	Grouping struct {
		Mode *string `toml:"mode"`
	} `toml:"grouping"`
	Behavior struct {
		Overwrite   *bool `toml:"overwrite"`
		KeepPartial *bool `toml:"keep_partial"`
		WriteTags   *bool `toml:"write_tags"`
	} `toml:"behavior"`
	Logging struct {
		File    *string `toml:"file"`
		Color   *string `toml:"color"`
		Verbose *bool   `toml:"verbose"`
	} `toml:"logging"`
	FFmpeg struct {
		Bin         *string `toml:"bin"`
		ManifestDir *string `toml:"manifest_dir"`
	} `toml:"ffmpeg"`
}

// DefaultPath returns the conventional config file location
// (~/.config/mp3weld/config.toml), or "" when the user config dir is unknown.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "mp3weld", "config.toml")
}

// LoadFile overlays cfg with values from the TOML file at path. When
// required is false (the default lookup path) a missing file is not an
// error; an explicitly requested file must exist.
func LoadFile(path string, cfg *Config, required bool) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config file %s: %w", path, err)
	}

	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("config file %s: %w", path, err)
	}
	return fc.apply(cfg)
}

// apply copies set values into cfg, validating enum strings.
func (fc *fileConfig) apply(cfg *Config) error {
	if fc.Grouping.Mode != nil {
		mode, err := ParseGroupingMode(*fc.Grouping.Mode)
		if err != nil {
			return err
		}
		cfg.Mode = mode
	}
	if fc.Behavior.Overwrite != nil {
		cfg.SkipExisting = !*fc.Behavior.Overwrite
	}
	if fc.Behavior.KeepPartial != nil {
		cfg.KeepPartial = *fc.Behavior.KeepPartial
	}
	if fc.Behavior.WriteTags != nil {
		cfg.WriteTags = *fc.Behavior.WriteTags
	}
	if fc.Logging.File != nil {
		cfg.LogFile = *fc.Logging.File
	}
	if fc.Logging.Color != nil {
		mode, err := ParseColorMode(*fc.Logging.Color)
		if err != nil {
			return err
		}
		cfg.ColorMode = mode
	}
	if fc.Logging.Verbose != nil {
		cfg.Verbose = *fc.Logging.Verbose
	}
	if fc.FFmpeg.Bin != nil {
		cfg.FFmpegBin = *fc.FFmpeg.Bin
	}
	if fc.FFmpeg.ManifestDir != nil {
		cfg.ManifestDir = *fc.FFmpeg.ManifestDir
	}
	return nil
}
