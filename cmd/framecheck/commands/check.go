// Package commands implements CLI command handlers for framecheck.
package commands

import (
	"errors"
	"runtime"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dwikygilang/framecheck/internal/render"
	"github.com/dwikygilang/framecheck/internal/scan"
	"github.com/dwikygilang/framecheck/pkg/sequence"
)

// folderAnalyzer produces the sequence report for one folder.
type folderAnalyzer func(folder string, opts sequence.Options) (sequence.Report, error)

// ErrNoFolders is returned when neither the arguments nor the config file
// name a folder to check.
var ErrNoFolders = errors.New("no folders given (pass folders as arguments or set 'folders' in the config file)")

// CheckCommand holds dependencies for the check command.
type CheckCommand struct {
	analyze folderAnalyzer
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	return newCheckCommandWithDeps(analyzeFolder)
}

func newCheckCommandWithDeps(analyze folderAnalyzer) *cobra.Command {
	cc := &CheckCommand{analyze: analyze}

	cmd := &cobra.Command{
		Use:   "check [folders...]",
		Short: "Report missing frames for one or more folders",
		Long: `Check folders of numbered frame files for gaps in the sequence.

Missing frames are reported, not failed: the exit code is nonzero only when
a folder cannot be read or the output cannot be written.

Examples:
  framecheck check /renders/shot_010
  framecheck check --formats exr,png --format json /renders/*/
  framecheck check --auto-detect=false /scans/plates`,
		Args: cobra.ArbitraryArgs,
		RunE: cc.run,
	}

	registerOutputFlags(cmd)
	registerFormatsFlag(cmd)
	registerAutoDetectFlag(cmd)

	return cmd
}

func (cc *CheckCommand) run(cmd *cobra.Command, args []string) error {
	s, err := resolveSettings(cmd, args)
	if err != nil {
		return err
	}

	if len(s.folders) == 0 {
		return ErrNoFolders
	}

	if s.noColor {
		color.NoColor = true
	}

	started := time.Now()

	progressf(s.quiet, cmd.ErrOrStderr(), "checking %d folder(s)", len(s.folders))

	entries, err := cc.checkFolders(s)
	if err != nil {
		return err
	}

	progressf(s.quiet, cmd.ErrOrStderr(), "check completed in %s", time.Since(started).Round(time.Millisecond))

	return render.WriteDocument(cmd.OutOrStdout(), s.format, entries)
}

// checkFolders analyzes every folder on a bounded pool, preserving argument
// order in the result. Any folder error fails the whole batch.
func (cc *CheckCommand) checkFolders(s settings) ([]render.Entry, error) {
	opts := s.analysisOptions()
	entries := make([]render.Entry, len(s.folders))
	errs := make([]error, len(s.folders))

	maxParallel := runtime.NumCPU()
	if maxParallel > len(s.folders) {
		maxParallel = len(s.folders)
	}

	sem := make(chan struct{}, maxParallel)

	var wg sync.WaitGroup

	for i, folder := range s.folders {
		wg.Add(1)

		go func() {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			report, err := cc.analyze(folder, opts)
			if err != nil {
				errs[i] = err
				return
			}

			entries[i] = render.Entry{Folder: folder, Report: report}
		}()
	}

	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	return entries, nil
}

func analyzeFolder(folder string, opts sequence.Options) (sequence.Report, error) {
	names, err := scan.List(folder)
	if err != nil {
		return sequence.Report{}, err
	}

	return sequence.Analyze(names, opts), nil
}
