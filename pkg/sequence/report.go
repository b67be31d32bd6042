package sequence

// FrameRange is the closed interval implied by the lowest and highest index
// found in a folder.
type FrameRange struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end"   yaml:"end"`
}

// Report is the immutable result of analyzing one folder's filenames. Indices
// and Missing partition the full range: every integer in [Range.Start,
// Range.End] appears in exactly one of them, both sorted ascending with no
// duplicates. Range is nil for an empty report and ExpectedCount and
// Completeness are zero. Analyzing the same filename list twice yields
// byte-identical serialized reports.
type Report struct {
	Pattern       Pattern     `json:"pattern"        yaml:"pattern"`
	Indices       []int       `json:"indices"        yaml:"indices"`
	Range         *FrameRange `json:"range"          yaml:"range"`
	Missing       []int       `json:"missing"        yaml:"missing"`
	MissingBlocks []string    `json:"missing_blocks" yaml:"missing_blocks"`
	FoundCount    int         `json:"found_count"    yaml:"found_count"`
	ExpectedCount int         `json:"expected_count" yaml:"expected_count"`
	Completeness  float64     `json:"completeness"   yaml:"completeness"`
}

// Empty reports whether the analysis found no usable frame indices.
func (r Report) Empty() bool {
	return len(r.Indices) == 0
}

// Complete reports whether the folder has every frame in its implied range.
// An empty report is not complete.
func (r Report) Complete() bool {
	return !r.Empty() && len(r.Missing) == 0
}

// emptyReport is the canonical zero-frame result. The detected pattern is
// still carried so callers can see what was inferred before extraction came
// up empty.
func emptyReport(pat Pattern) Report {
	return Report{
		Pattern:       pat,
		Indices:       []int{},
		Missing:       []int{},
		MissingBlocks: []string{},
	}
}

// buildReport derives the gap summary from a sorted, deduplicated index set.
// The missing set is materialized by walking the full [start, end] interval,
// so cost is proportional to the span, not the file count: a folder holding
// frames 1 and 100000 and nothing between yields ~100000 missing entries.
// That mirrors how artists number renders; a stray far-future frame makes the
// hole visible instead of being papered over.
func buildReport(pat Pattern, indices []int) Report {
	start := indices[0]
	end := indices[len(indices)-1]
	expected := end - start + 1

	missing := make([]int, 0, expected-len(indices))
	next := 0

	for v := start; v <= end; v++ {
		if next < len(indices) && indices[next] == v {
			next++

			continue
		}

		missing = append(missing, v)
	}

	return Report{
		Pattern:       pat,
		Indices:       indices,
		Range:         &FrameRange{Start: start, End: end},
		Missing:       missing,
		MissingBlocks: CompressRanges(missing),
		FoundCount:    len(indices),
		ExpectedCount: expected,
		Completeness:  float64(len(indices)) / float64(expected),
	}
}

// Comparison is the set algebra between two folders' frame indices.
type Comparison struct {
	OnlyA  []int `json:"only_a" yaml:"only_a"`
	OnlyB  []int `json:"only_b" yaml:"only_b"`
	Common []int `json:"common" yaml:"common"`
}

// Compare splits the indices of two independently produced reports into the
// frames unique to each side and the frames shared by both. It is pure set
// algebra over the reports' index sets; the filesystem is never re-read and
// the two patterns are never reconciled.
func Compare(a, b Report) Comparison {
	cmp := Comparison{
		OnlyA:  []int{},
		OnlyB:  []int{},
		Common: []int{},
	}

	i, j := 0, 0
	for i < len(a.Indices) && j < len(b.Indices) {
		switch {
		case a.Indices[i] < b.Indices[j]:
			cmp.OnlyA = append(cmp.OnlyA, a.Indices[i])
			i++
		case a.Indices[i] > b.Indices[j]:
			cmp.OnlyB = append(cmp.OnlyB, b.Indices[j])
			j++
		default:
			cmp.Common = append(cmp.Common, a.Indices[i])
			i++
			j++
		}
	}

	cmp.OnlyA = append(cmp.OnlyA, a.Indices[i:]...)
	cmp.OnlyB = append(cmp.OnlyB, b.Indices[j:]...)

	return cmp
}
