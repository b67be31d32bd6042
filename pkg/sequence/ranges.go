package sequence

import (
	"fmt"
	"regexp"
	"strconv"
)

// blockRe matches a single block token: one integer or an inclusive
// "first-last" pair. Values may be negative, so the separator is resolved by
// shape rather than by splitting on the first dash.
var blockRe = regexp.MustCompile(`^(-?\d+)(?:-(-?\d+))?$`)

// CompressRanges collapses a sorted list of distinct integers into human
// readable block tokens: lone values become "7", consecutive runs become
// "10-14". Output order follows input order. An empty input yields an empty
// slice.
func CompressRanges(values []int) []string {
	blocks := []string{}
	if len(values) == 0 {
		return blocks
	}

	start, prev := values[0], values[0]

	flush := func() {
		if start == prev {
			blocks = append(blocks, strconv.Itoa(start))

			return
		}

		blocks = append(blocks, fmt.Sprintf("%d-%d", start, prev))
	}

	for _, v := range values[1:] {
		if v == prev+1 {
			prev = v

			continue
		}

		flush()

		start, prev = v, v
	}

	flush()

	return blocks
}

// ExpandRanges is the inverse of CompressRanges: block tokens back into the
// full ascending integer list. A token that is not an integer or an ascending
// "first-last" pair is an error.
func ExpandRanges(blocks []string) ([]int, error) {
	values := []int{}

	for _, block := range blocks {
		m := blockRe.FindStringSubmatch(block)
		if m == nil {
			return nil, fmt.Errorf("malformed block %q", block)
		}

		first, err := strconv.Atoi(m[1])
		if err != nil {
			return nil, fmt.Errorf("parsing block %q: %w", block, err)
		}

		if m[2] == "" {
			values = append(values, first)

			continue
		}

		last, err := strconv.Atoi(m[2])
		if err != nil {
			return nil, fmt.Errorf("parsing block %q: %w", block, err)
		}

		if last < first {
			return nil, fmt.Errorf("malformed block %q: descending range", block)
		}

		for v := first; v <= last; v++ {
			values = append(values, v)
		}
	}

	return values, nil
}
