package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dwikygilang/framecheck/pkg/sequence/schema"
)

var (
	// ErrMalformedReport indicates the input is not parseable JSON at all.
	// The CLI maps it to a distinct exit code so scripts can tell garbage
	// input apart from a well-formed report that fails the schema.
	ErrMalformedReport = errors.New("report is not valid JSON")

	// ErrReportInvalid indicates a well-formed report that does not conform
	// to the embedded schema.
	ErrReportInvalid = errors.New("report does not conform to the schema")
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <report.json|->",
		Short: "Validate a JSON report against the embedded schema",
		Long: `Validate a framecheck JSON report against the embedded report schema.

Reads from a file, or from stdin when the argument is "-".

Examples:
  framecheck validate report.json
  framecheck check /renders/shot_010 --format json | framecheck validate -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if boolFlag(cmd, "no-color", false) {
				color.NoColor = true
			}

			return runValidate(cmd.OutOrStdout(), cmd.InOrStdin(), args[0])
		},
	}

	cmd.Flags().Bool("no-color", false, "Disable colored output")

	return cmd
}

func runValidate(out io.Writer, stdin io.Reader, inputPath string) error {
	document, label, err := readReportInput(stdin, inputPath)
	if err != nil {
		return err
	}

	result, err := schema.Validate(document)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedReport, err)
	}

	if result.Valid() {
		_, _ = color.New(color.FgGreen).Fprintf(out, "report is valid (%s)\n", label)
		return nil
	}

	_, _ = color.New(color.FgRed).Fprintf(out, "report validation failed (%s)\n", label)
	_, _ = fmt.Fprintf(out, "\nErrors:\n")

	for _, validationErr := range result.Errors() {
		_, _ = color.New(color.FgRed).Fprintf(out, "  - %s: %s\n", validationErr.Field(), validationErr.Description())
	}

	return ErrReportInvalid
}

func readReportInput(stdin io.Reader, inputPath string) ([]byte, string, error) {
	if inputPath == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, "", fmt.Errorf("reading stdin: %w", err)
		}

		return data, "stdin", nil
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return nil, "", fmt.Errorf("reading report: %w", err)
	}

	return data, inputPath, nil
}
