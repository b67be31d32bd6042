package render

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
)

func writeCompactDocument(w io.Writer, entries []Entry) error {
	for _, e := range entries {
		fmt.Fprintln(w, compactLine(e))
	}

	return nil
}

func writeCompactComparison(w io.Writer, doc ComparisonDocument) error {
	fmt.Fprintln(w, compactLine(doc.A))
	fmt.Fprintln(w, compactLine(doc.B))
	fmt.Fprintf(w, "only_a=%d only_b=%d common=%d\n",
		len(doc.Comparison.OnlyA), len(doc.Comparison.OnlyB), len(doc.Comparison.Common))

	return nil
}

// compactLine renders one folder as a single grep-friendly line.
func compactLine(e Entry) string {
	r := e.Report

	var line string

	switch {
	case r.Empty():
		line = fmt.Sprintf("%s: %s", e.Folder, color.YellowString("no frames detected"))
	case r.Complete():
		line = fmt.Sprintf("%s: %s %d/%d (%.2f%%) range %s",
			e.Folder, color.GreenString("complete"),
			r.FoundCount, r.ExpectedCount, r.Completeness*100, rangeLabel(r.Range))
	default:
		line = fmt.Sprintf("%s: %s %d/%d (%.2f%%) range %s blocks %s",
			e.Folder, color.RedString("missing %d", len(r.Missing)),
			r.FoundCount, r.ExpectedCount, r.Completeness*100, rangeLabel(r.Range),
			missingLabel(r.MissingBlocks))
	}

	if !e.CheckedAt.IsZero() {
		line += fmt.Sprintf(" checked %s", humanize.Time(e.CheckedAt))
	}

	return line
}
