// Package render turns sequence reports into terminal and machine output.
// The text and compact formats are for humans; json and yaml are stable
// machine formats, and json conforms to the embedded check document schema.
package render

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/dwikygilang/framecheck/pkg/sequence"
)

// Output format names accepted by the --format flag and output.format
// config key.
const (
	FormatText    = "text"
	FormatCompact = "compact"
	FormatJSON    = "json"
	FormatYAML    = "yaml"
)

// ErrUnknownFormat indicates an output format name with no renderer.
var ErrUnknownFormat = errors.New("unknown output format")

// Formats lists the accepted output format names in display order.
func Formats() []string {
	return []string{FormatText, FormatCompact, FormatJSON, FormatYAML}
}

// Entry pairs a folder with its analysis result. CheckedAt is display-only
// state for the human formats; the machine formats never carry it, so
// re-running a check over unchanged folders emits byte-identical documents.
type Entry struct {
	Folder    string          `json:"folder" yaml:"folder"`
	Report    sequence.Report `json:"report" yaml:"report"`
	CheckedAt time.Time       `json:"-"      yaml:"-"`
}

// ComparisonDocument is the output of comparing two folders: both sides'
// reports plus the index set algebra between them.
type ComparisonDocument struct {
	A          Entry               `json:"a"          yaml:"a"`
	B          Entry               `json:"b"          yaml:"b"`
	Comparison sequence.Comparison `json:"comparison" yaml:"comparison"`
}

// WriteDocument renders one entry per analyzed folder in the given format.
func WriteDocument(w io.Writer, format string, entries []Entry) error {
	switch format {
	case FormatText:
		return writeTextDocument(w, entries)
	case FormatCompact:
		return writeCompactDocument(w, entries)
	case FormatJSON:
		return writeJSON(w, entries)
	case FormatYAML:
		return writeYAML(w, entries)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// WriteComparison renders a two-folder comparison in the given format.
func WriteComparison(w io.Writer, format string, doc ComparisonDocument) error {
	switch format {
	case FormatText:
		return writeTextComparison(w, doc)
	case FormatCompact:
		return writeCompactComparison(w, doc)
	case FormatJSON:
		return writeJSON(w, doc)
	case FormatYAML:
		return writeYAML(w, doc)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
