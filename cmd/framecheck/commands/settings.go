package commands

import (
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"github.com/dwikygilang/framecheck/internal/config"
	"github.com/dwikygilang/framecheck/internal/render"
	"github.com/dwikygilang/framecheck/pkg/sequence"
)

// settings are the effective options for one invocation: config file and
// environment values overlaid by explicitly set flags. Positional arguments
// replace the configured folder list when present.
type settings struct {
	folders    []string
	formats    []string
	autoDetect bool

	format  string
	noColor bool
	quiet   bool

	interval time.Duration
	listen   string

	logLevel string
	logJSON  bool
}

func resolveSettings(cmd *cobra.Command, args []string) (settings, error) {
	cfg, err := config.LoadConfig(stringFlag(cmd, "config", ""))
	if err != nil {
		return settings{}, err
	}

	s := settings{
		folders:    cfg.Folders,
		formats:    cfg.Formats,
		autoDetect: cfg.AutoDetect,
		format:     cfg.Output.Format,
		noColor:    cfg.Output.NoColor,
		interval:   time.Duration(cfg.Watch.Interval) * time.Second,
		listen:     cfg.Watch.Listen,
		logLevel:   cfg.Log.Level,
		logJSON:    cfg.Log.JSON,
	}

	if len(args) > 0 {
		s.folders = args
	}

	s.formats = sliceFlag(cmd, "formats", s.formats)
	s.autoDetect = boolFlag(cmd, "auto-detect", s.autoDetect)
	s.format = stringFlag(cmd, "format", s.format)
	s.noColor = boolFlag(cmd, "no-color", s.noColor)
	s.listen = stringFlag(cmd, "listen", s.listen)
	s.quiet = boolFlag(cmd, "quiet", false)

	if secs := intFlag(cmd, "interval", 0); secs > 0 {
		s.interval = time.Duration(secs) * time.Second
	}

	if !slices.Contains(render.Formats(), s.format) {
		return settings{}, fmt.Errorf("%w: %q", render.ErrUnknownFormat, s.format)
	}

	return s, nil
}

func (s settings) analysisOptions() sequence.Options {
	return sequence.Options{
		Formats:          s.formats,
		DisableDetection: !s.autoDetect,
	}
}

// Flag helpers return the fallback when the flag is absent or unset, so file
// and environment configuration shows through unless the user overrode it on
// the command line. The flag is registered when Changed reports true, so the
// typed getters cannot fail there.
func stringFlag(cmd *cobra.Command, name, fallback string) string {
	if !cmd.Flags().Changed(name) {
		return fallback
	}

	v, err := cmd.Flags().GetString(name)
	if err != nil {
		return fallback
	}

	return v
}

func boolFlag(cmd *cobra.Command, name string, fallback bool) bool {
	if !cmd.Flags().Changed(name) {
		return fallback
	}

	v, err := cmd.Flags().GetBool(name)
	if err != nil {
		return fallback
	}

	return v
}

func intFlag(cmd *cobra.Command, name string, fallback int) int {
	if !cmd.Flags().Changed(name) {
		return fallback
	}

	v, err := cmd.Flags().GetInt(name)
	if err != nil {
		return fallback
	}

	return v
}

func sliceFlag(cmd *cobra.Command, name string, fallback []string) []string {
	if !cmd.Flags().Changed(name) {
		return fallback
	}

	v, err := cmd.Flags().GetStringSlice(name)
	if err != nil {
		return fallback
	}

	return v
}

func registerOutputFlags(cmd *cobra.Command) {
	cmd.Flags().String("format", "", "Output format: text, compact, json, yaml (default from config)")
	cmd.Flags().Bool("no-color", false, "Disable colored output")
}

func registerFormatsFlag(cmd *cobra.Command) {
	cmd.Flags().StringSlice("formats", nil, "Frame file extensions to include, without dots (e.g. png,exr)")
}

func registerAutoDetectFlag(cmd *cobra.Command) {
	cmd.Flags().Bool("auto-detect", true, "Infer the filename prefix from the folder contents")
}

func progressf(quiet bool, writer io.Writer, format string, args ...any) {
	if quiet {
		return
	}

	_, _ = fmt.Fprintf(writer, "progress: "+format+"\n", args...)
}
