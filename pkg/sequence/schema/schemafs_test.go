package schema_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dwikygilang/framecheck/pkg/sequence"
	"github.com/dwikygilang/framecheck/pkg/sequence/schema"
)

type entry struct {
	Folder string          `json:"folder"`
	Report sequence.Report `json:"report"`
}

func TestValidate_CheckDocument(t *testing.T) {
	t.Parallel()

	doc, err := json.Marshal([]entry{
		{
			Folder: "/renders/shot010",
			Report: sequence.Analyze([]string{"shot_0001.png", "shot_0004.png"}, sequence.Options{}),
		},
		{
			Folder: "/renders/shot020",
			Report: sequence.Analyze(nil, sequence.Options{}),
		},
	})
	require.NoError(t, err)

	result, err := schema.Validate(doc)
	require.NoError(t, err)

	assert.True(t, result.Valid(), "errors: %v", result.Errors())
}

func TestValidate_RejectsMalformedDocument(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
	}{
		{
			name: "top level must be an array",
			doc:  `{"folder": "/a", "report": {}}`,
		},
		{
			name: "entry missing report",
			doc:  `[{"folder": "/a"}]`,
		},
		{
			name: "indices must be integers",
			doc: `[{"folder": "/a", "report": {
				"pattern": {}, "indices": ["1"], "range": null,
				"missing": [], "missing_blocks": [],
				"found_count": 0, "expected_count": 0, "completeness": 0
			}}]`,
		},
		{
			name: "malformed block token",
			doc: `[{"folder": "/a", "report": {
				"pattern": {}, "indices": [], "range": null,
				"missing": [], "missing_blocks": ["3--"],
				"found_count": 0, "expected_count": 0, "completeness": 0
			}}]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := schema.Validate([]byte(tt.doc))
			require.NoError(t, err)
			assert.False(t, result.Valid())
		})
	}
}

func TestBytes_EmbeddedSchemaParses(t *testing.T) {
	t.Parallel()

	raw, err := schema.Bytes()
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(raw, &parsed))

	assert.Equal(t, "http://json-schema.org/draft-07/schema#", parsed["$schema"])
}
