// Package sequence infers the numbering scheme of a folder of sequentially
// numbered render files and reports which frame numbers are missing from the
// implied contiguous range.
//
// Analysis is pure: it consumes a filename list, performs no I/O, holds no
// state between calls, and is safe to run concurrently for different folders.
// One folder is assumed to hold one sequence; when several interleave, the
// pattern detected from the lexicographically-first candidate wins and files
// that fit neither it nor the trailing-digit fallback are silently dropped.
package sequence

import (
	"sort"
	"strconv"
	"strings"
)

// defaultFormats is the extension set used when the caller supplies no
// allow-list, matching the common render output formats.
var defaultFormats = map[string]struct{}{
	".exr":  {},
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".tif":  {},
	".tiff": {},
	".bmp":  {},
}

// DefaultFormats returns the built-in extension allow-list, dots included,
// in display order.
func DefaultFormats() []string {
	return []string{".exr", ".png", ".jpg", ".jpeg", ".tif", ".tiff", ".bmp"}
}

// Options control one analysis pass. The zero value filters by the default
// format set and detects the prefix automatically.
type Options struct {
	// Formats is a case-insensitive extension allow-list without leading
	// dots ("png", "exr"). Empty means DefaultFormats.
	Formats []string

	// DisableDetection skips prefix inference: every file goes through
	// trailing-digit extraction only.
	DisableDetection bool
}

// Analyze inspects a folder's filenames and produces the gap report. Input
// order does not matter; candidates are sorted internally and the pattern is
// detected from the lexicographically-first one. Files that yield no index
// are dropped without error, and an empty candidate set yields an empty
// report rather than a failure. See buildReport for the cost model on sparse
// ranges.
func Analyze(filenames []string, opts Options) Report {
	candidates := filterCandidates(filenames, opts.Formats)
	if len(candidates) == 0 {
		return emptyReport(Pattern{})
	}

	sort.Strings(candidates)

	var pat Pattern
	if opts.DisableDetection {
		pat = Pattern{Ext: extensionOf(candidates[0])}
	} else {
		pat = DetectPattern(candidates[0])
	}

	indices := extractIndices(candidates, pat)
	if len(indices) == 0 {
		return emptyReport(pat)
	}

	return buildReport(pat, indices)
}

// filterCandidates keeps the filenames whose extension passes the allow-list,
// or the default format set when the list is empty. Matching is
// case-insensitive on the extension only.
func filterCandidates(filenames, formats []string) []string {
	allowed := normalizeFormats(formats)

	candidates := make([]string, 0, len(filenames))

	for _, name := range filenames {
		ext := strings.ToLower(extensionOf(name))

		if allowed != nil {
			if _, ok := allowed[strings.TrimPrefix(ext, ".")]; ok {
				candidates = append(candidates, name)
			}

			continue
		}

		if _, ok := defaultFormats[ext]; ok {
			candidates = append(candidates, name)
		}
	}

	return candidates
}

// normalizeFormats lowercases the allow-list entries and strips whitespace
// and any leading dot, so "PNG", " png " and ".png" all mean the same thing.
// A list with no usable entries collapses to nil, which selects the default
// set.
func normalizeFormats(formats []string) map[string]struct{} {
	var allowed map[string]struct{}

	for _, f := range formats {
		f = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(f)), ".")
		if f == "" {
			continue
		}

		if allowed == nil {
			allowed = make(map[string]struct{})
		}

		allowed[f] = struct{}{}
	}

	return allowed
}

// extractIndices parses one frame index per candidate, deduplicated and
// sorted ascending. A file carrying the detected prefix and extension has
// both stripped and the remainder parsed as base-10; a remainder that is not
// an integer drops the file with no fallback. Every other file goes through
// the trailing-digit heuristic. Leading zeros are decimal, so "0007" is
// frame 7, and the same index appearing under several names collapses to one
// entry.
func extractIndices(candidates []string, pat Pattern) []int {
	seen := make(map[int]struct{}, len(candidates))

	for _, name := range candidates {
		idx, ok := extractIndex(name, pat)
		if !ok {
			continue
		}

		seen[idx] = struct{}{}
	}

	indices := make([]int, 0, len(seen))
	for idx := range seen {
		indices = append(indices, idx)
	}

	sort.Ints(indices)

	return indices
}

func extractIndex(name string, pat Pattern) (int, bool) {
	if pat.Prefix != "" && pat.Ext != "" &&
		strings.HasPrefix(name, pat.Prefix) && strings.HasSuffix(name, pat.Ext) {
		// Prefix and extension can overlap in a name shorter than both
		// combined; that leaves no body and the file is dropped.
		start, end := len(pat.Prefix), len(name)-len(pat.Ext)
		if end < start {
			return 0, false
		}

		idx, err := strconv.Atoi(name[start:end])
		if err != nil {
			return 0, false
		}

		return idx, true
	}

	m := trailingRe.FindStringSubmatch(name)
	if m == nil {
		return 0, false
	}

	idx, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}

	return idx, true
}
