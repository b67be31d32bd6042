package sequence_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dwikygilang/framecheck/pkg/sequence"
)

func TestCompressRanges(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		values []int
		want   []string
	}{
		{
			name:   "empty input",
			values: []int{},
			want:   []string{},
		},
		{
			name:   "single value",
			values: []int{7},
			want:   []string{"7"},
		},
		{
			name:   "lone values stay singletons",
			values: []int{1, 3, 5},
			want:   []string{"1", "3", "5"},
		},
		{
			name:   "consecutive run collapses",
			values: []int{13, 14, 15, 16, 17, 18, 19},
			want:   []string{"13-19"},
		},
		{
			name:   "mixed runs and singletons",
			values: []int{1, 2, 4, 7, 8, 9, 12},
			want:   []string{"1-2", "4", "7-9", "12"},
		},
		{
			name:   "pair is a run not two singletons",
			values: []int{5, 6},
			want:   []string{"5-6"},
		},
		{
			name:   "negative values",
			values: []int{-5, -4, -1},
			want:   []string{"-5--4", "-1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, sequence.CompressRanges(tt.values))
		})
	}
}

func TestExpandRanges(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		blocks []string
		want   []int
	}{
		{
			name:   "empty input",
			blocks: []string{},
			want:   []int{},
		},
		{
			name:   "singletons and runs",
			blocks: []string{"1-2", "4", "7-9", "12"},
			want:   []int{1, 2, 4, 7, 8, 9, 12},
		},
		{
			name:   "negative run",
			blocks: []string{"-5--4", "-1"},
			want:   []int{-5, -4, -1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := sequence.ExpandRanges(tt.blocks)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExpandRanges_Malformed(t *testing.T) {
	t.Parallel()

	for _, block := range []string{"", "a", "1-2-3", "5-", "9-3", "1..4"} {
		_, err := sequence.ExpandRanges([]string{block})
		assert.Error(t, err, "block %q", block)
	}
}

func TestCompressRanges_RoundTrip(t *testing.T) {
	t.Parallel()

	lists := [][]int{
		{},
		{42},
		{1, 2, 3, 4, 5},
		{1, 3, 5, 7},
		{1, 2, 4, 7, 8, 9, 12},
		{-3, -2, 0, 1, 5},
	}

	for _, values := range lists {
		got, err := sequence.ExpandRanges(sequence.CompressRanges(values))
		require.NoError(t, err)
		assert.Equal(t, values, got)
	}
}
