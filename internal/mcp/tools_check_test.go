package mcp

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func frameFolder(t *testing.T, names ...string) string {
	t.Helper()

	dir := t.TempDir()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("frame"), 0o644))
	}

	return dir
}

func textContent(t *testing.T, result *mcpsdk.CallToolResult) string {
	t.Helper()

	require.NotEmpty(t, result.Content)

	text, ok := result.Content[0].(*mcpsdk.TextContent)
	require.True(t, ok)

	return text.Text
}

func TestHandleCheck_GappedSequence(t *testing.T) {
	t.Parallel()

	dir := frameFolder(t, "shot_0001.png", "shot_0002.png", "shot_0004.png")

	input := CheckInput{Path: dir}

	result, output, err := handleCheck(context.Background(), &mcpsdk.CallToolRequest{}, input)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.IsError)
	assert.NotNil(t, output.Data)

	text := textContent(t, result)
	assert.Contains(t, text, `"prefix": "shot_"`)
	assert.Contains(t, text, `"missing_blocks"`)
	assert.Contains(t, text, `"completeness": 0.75`)
}

func TestHandleCheck_EmptyPath(t *testing.T) {
	t.Parallel()

	result, _, err := handleCheck(context.Background(), &mcpsdk.CallToolRequest{}, CheckInput{})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
	assert.Contains(t, textContent(t, result), "path parameter is required")
}

func TestHandleCheck_RelativePath(t *testing.T) {
	t.Parallel()

	input := CheckInput{Path: "renders/shot_010"}

	result, _, err := handleCheck(context.Background(), &mcpsdk.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, textContent(t, result), "absolute")
}

func TestHandleCheck_MissingFolder(t *testing.T) {
	t.Parallel()

	input := CheckInput{Path: filepath.Join(t.TempDir(), "gone")}

	result, _, err := handleCheck(context.Background(), &mcpsdk.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, textContent(t, result), "listing folder")
}

func TestHandleCheck_FormatFilter(t *testing.T) {
	t.Parallel()

	dir := frameFolder(t, "a_1.png", "a_2.png", "b_1.exr", "b_2.exr", "b_4.exr")

	exr := CheckInput{Path: dir, Formats: []string{"exr"}}

	result, _, err := handleCheck(context.Background(), &mcpsdk.CallToolRequest{}, exr)
	require.NoError(t, err)
	assert.False(t, result.IsError)

	text := textContent(t, result)
	assert.Contains(t, text, `"found_count": 3`)
	assert.Contains(t, text, `"expected_count": 4`)
}

func TestHandleCheck_DetectionDisabled(t *testing.T) {
	t.Parallel()

	dir := frameFolder(t, "a_1.png", "b_2.png", "c_4.png")

	off := false
	input := CheckInput{Path: dir, AutoDetect: &off}

	result, _, err := handleCheck(context.Background(), &mcpsdk.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.False(t, result.IsError)

	// With detection off every file goes through trailing-digit extraction,
	// so all three indices survive despite the differing prefixes.
	text := textContent(t, result)
	assert.Contains(t, text, `"found_count": 3`)
	assert.NotContains(t, text, `"prefix"`)
}
