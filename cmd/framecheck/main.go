// Package main provides the entry point for the framecheck CLI tool.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dwikygilang/framecheck/cmd/framecheck/commands"
	"github.com/dwikygilang/framecheck/pkg/version"
)

// exitCodeMalformedReport distinguishes unparseable validate input from a
// well-formed report that fails the schema (exit 1).
const exitCodeMalformedReport = 2

func main() {
	var (
		configPath string
		quiet      bool
	)

	rootCmd := &cobra.Command{
		Use:   "framecheck",
		Short: "Framecheck - missing frame detection for render sequences",
		Long: `Framecheck inspects folders of numbered frame files (renders, scans,
plates) and reports which frames are missing from each sequence.

Commands:
  check     Report missing frames for one or more folders
  compare   Diff the frame indices found in two folders
  watch     Poll folders and log sequence changes
  validate  Validate a JSON report against the embedded schema
  mcp       Serve framecheck tools over the Model Context Protocol`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: .framecheck.yaml in CWD or $HOME)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress progress output")

	rootCmd.AddCommand(commands.NewCheckCommand())
	rootCmd.AddCommand(commands.NewCompareCommand())
	rootCmd.AddCommand(commands.NewWatchCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewMCPCommand())
	rootCmd.AddCommand(versionCmd())

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		if errors.Is(err, commands.ErrMalformedReport) {
			os.Exit(exitCodeMalformedReport)
		}

		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("framecheck %s (commit: %s, built: %s)\n", version.Version, version.Commit, version.Date)
		},
	}
}
