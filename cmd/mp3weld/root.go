package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"mp3weld/internal/config"
)

// newRootCommand builds the CLI. Precedence for every setting is
// defaults < config file < flags, so flag overrides are applied in RunE
// only when the flag was actually passed.
func newRootCommand() *cobra.Command {
	cfg := config.DefaultConfig()

	var (
		configFlag  string
		modeFlag    string
		colorFlag   string
		logFlag     string
		force       bool
		noColor     bool
		keepPartial bool
		writeTags   bool
		verbose     bool
	)

	cmd := &cobra.Command{
		Use:     "mp3weld [flags] <directory>",
		Short:   "Merge numbered multi-part MP3 files via ffmpeg stream copy",
		Long: `mp3weld walks a directory tree, groups numbered MP3 parts
("Tale - 01.mp3", "Tale - 02.mp3", ...) and merges each group into a single
<group>.mp3 next to its sources, using ffmpeg's concat demuxer without
re-encoding. Groups whose output already exists are skipped, so re-running
over a processed tree is a no-op.`,
		Version:       fmt.Sprintf("%s (%s)", version, commit),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			checkOnly, _ := cmd.Flags().GetBool("check")
			if checkOnly {
				return cobra.MaximumNArgs(1)(cmd, args)
			}
			if len(args) != 1 {
				return errors.New("need a target directory")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			path, required := configFlag, configFlag != ""
			if path == "" {
				path = config.DefaultPath()
			}
			if err := config.LoadFile(path, &cfg, required); err != nil {
				return err
			}

			fl := cmd.Flags()
			if fl.Changed("mode") {
				mode, err := config.ParseGroupingMode(modeFlag)
				if err != nil {
					return err
				}
				cfg.Mode = mode
			}
			if fl.Changed("color") {
				mode, err := config.ParseColorMode(colorFlag)
				if err != nil {
					return err
				}
				cfg.ColorMode = mode
			}
			if noColor {
				cfg.ColorMode = config.ColorNever
			}
			if force {
				cfg.SkipExisting = false
			}
			if fl.Changed("keep-partial") {
				cfg.KeepPartial = keepPartial
			}
			if fl.Changed("tag") {
				cfg.WriteTags = writeTags
			}
			if fl.Changed("verbose") {
				cfg.Verbose = verbose
			}
			if fl.Changed("log") {
				cfg.LogFile = logFlag
			}
			if len(args) == 1 {
				cfg.RootDir = config.NormalizeDirArg(args[0])
			}
			return run(&cfg)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&modeFlag, "mode", "m", string(cfg.Mode), "Grouping mode: prefix | directory")
	fl.BoolVarP(&cfg.DryRun, "dry-run", "d", false, "Preview only; do not invoke ffmpeg")
	fl.BoolVarP(&force, "force", "f", false, "Overwrite existing merged outputs instead of skipping")
	fl.BoolVar(&keepPartial, "keep-partial", false, "Keep a truncated output after a failed merge")
	fl.BoolVar(&writeTags, "tag", false, "Write ID3v2 title/album tags onto merged files")
	fl.BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	fl.StringVarP(&logFlag, "log", "l", "", "Append logs to file")
	fl.StringVar(&colorFlag, "color", string(cfg.ColorMode), "Color output: auto | always | never")
	fl.BoolVar(&noColor, "no-color", false, "Disable colored logs (same as --color never)")
	fl.BoolVarP(&cfg.CheckOnly, "check", "c", false, "Run system diagnostics and exit")
	fl.StringVar(&configFlag, "config", "", "Config file path (default ~/.config/mp3weld/config.toml)")

	return cmd
}
