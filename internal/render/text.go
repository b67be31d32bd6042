package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/dwikygilang/framecheck/pkg/sequence"
)

// maxMissingBlocks bounds the missing-range detail printed per folder in
// text output. Machine formats always carry the full list.
const maxMissingBlocks = 200

func writeTextDocument(w io.Writer, entries []Entry) error {
	writeEntryTable(w, entries)
	writeMissingDetail(w, entries)

	return nil
}

func writeTextComparison(w io.Writer, doc ComparisonDocument) error {
	writeEntryTable(w, []Entry{doc.A, doc.B})
	writeMissingDetail(w, []Entry{doc.A, doc.B})

	fmt.Fprintln(w)
	fmt.Fprintf(w, "only in %s (%d): %s\n", doc.A.Folder, len(doc.Comparison.OnlyA), indexSetLabel(doc.Comparison.OnlyA))
	fmt.Fprintf(w, "only in %s (%d): %s\n", doc.B.Folder, len(doc.Comparison.OnlyB), indexSetLabel(doc.Comparison.OnlyB))
	fmt.Fprintf(w, "common (%d): %s\n", len(doc.Comparison.Common), indexSetLabel(doc.Comparison.Common))

	return nil
}

func writeEntryTable(w io.Writer, entries []Entry) {
	withChecked := false

	for _, e := range entries {
		if !e.CheckedAt.IsZero() {
			withChecked = true

			break
		}
	}

	header := table.Row{"Folder", "Pattern", "Range", "Found", "Expected", "Complete", "Status"}
	if withChecked {
		header = append(header, "Checked")
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(header)

	for _, e := range entries {
		r := e.Report

		row := table.Row{
			e.Folder,
			patternLabel(r.Pattern),
			rangeLabel(r.Range),
			humanize.Comma(int64(r.FoundCount)),
			humanize.Comma(int64(r.ExpectedCount)),
			fmt.Sprintf("%.2f%%", r.Completeness*100),
			statusLabel(r),
		}
		if withChecked {
			row = append(row, checkedLabel(e.CheckedAt))
		}

		tw.AppendRow(row)
	}

	tw.Render()
}

func writeMissingDetail(w io.Writer, entries []Entry) {
	for _, e := range entries {
		if len(e.Report.MissingBlocks) == 0 {
			continue
		}

		fmt.Fprintf(w, "%s missing: %s\n", e.Folder, missingLabel(e.Report.MissingBlocks))
	}
}

// patternLabel renders a detected pattern in glob form, e.g. "shot_*.png".
func patternLabel(p sequence.Pattern) string {
	if p.Prefix == "" && p.Ext == "" {
		return "-"
	}

	return p.Prefix + "*" + p.Ext
}

func rangeLabel(r *sequence.FrameRange) string {
	switch {
	case r == nil:
		return "-"
	case r.Start == r.End:
		return fmt.Sprintf("%d", r.Start)
	default:
		return fmt.Sprintf("%d-%d", r.Start, r.End)
	}
}

func statusLabel(r sequence.Report) string {
	switch {
	case r.Empty():
		return color.YellowString("no frames")
	case r.Complete():
		return color.GreenString("complete")
	default:
		return color.RedString("%d missing", len(r.Missing))
	}
}

func checkedLabel(at time.Time) string {
	if at.IsZero() {
		return "-"
	}

	return humanize.Time(at)
}

func missingLabel(blocks []string) string {
	if len(blocks) <= maxMissingBlocks {
		return strings.Join(blocks, ", ")
	}

	head := strings.Join(blocks[:maxMissingBlocks], ", ")

	return fmt.Sprintf("%s … and %d more blocks", head, len(blocks)-maxMissingBlocks)
}

func indexSetLabel(indices []int) string {
	if len(indices) == 0 {
		return "-"
	}

	return strings.Join(sequence.CompressRanges(indices), ", ")
}
