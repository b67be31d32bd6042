package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dwikygilang/framecheck/internal/render"
	"github.com/dwikygilang/framecheck/pkg/sequence"
)

// CompareCommand holds dependencies for the compare command.
type CompareCommand struct {
	analyze folderAnalyzer
}

// NewCompareCommand creates the compare command.
func NewCompareCommand() *cobra.Command {
	return newCompareCommandWithDeps(analyzeFolder)
}

func newCompareCommandWithDeps(analyze folderAnalyzer) *cobra.Command {
	cc := &CompareCommand{analyze: analyze}

	cmd := &cobra.Command{
		Use:   "compare <folder-a> <folder-b>",
		Short: "Diff the frame indices found in two folders",
		Long: `Compare the frame indices found in two folders.

Reports the indices present only in the first folder, only in the second,
and in both. Useful for checking a render against its source plates or two
render passes against each other.

Examples:
  framecheck compare /renders/beauty /renders/depth
  framecheck compare --formats exr --format json /plates/scan /renders/comp`,
		Args: cobra.ExactArgs(2),
		RunE: cc.run,
	}

	registerOutputFlags(cmd)
	registerFormatsFlag(cmd)

	return cmd
}

func (cc *CompareCommand) run(cmd *cobra.Command, args []string) error {
	s, err := resolveSettings(cmd, args)
	if err != nil {
		return err
	}

	if s.noColor {
		color.NoColor = true
	}

	opts := s.analysisOptions()

	reportA, err := cc.analyze(args[0], opts)
	if err != nil {
		return err
	}

	reportB, err := cc.analyze(args[1], opts)
	if err != nil {
		return err
	}

	doc := render.ComparisonDocument{
		A:          render.Entry{Folder: args[0], Report: reportA},
		B:          render.Entry{Folder: args[1], Report: reportB},
		Comparison: sequence.Compare(reportA, reportB),
	}

	return render.WriteComparison(cmd.OutOrStdout(), s.format, doc)
}
