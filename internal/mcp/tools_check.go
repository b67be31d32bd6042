package mcp

import (
	"context"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/dwikygilang/framecheck/internal/render"
	"github.com/dwikygilang/framecheck/internal/scan"
	"github.com/dwikygilang/framecheck/pkg/sequence"
)

// handleCheck processes framecheck_check tool calls.
func handleCheck(
	_ context.Context,
	_ *mcpsdk.CallToolRequest,
	input CheckInput,
) (*mcpsdk.CallToolResult, ToolOutput, error) {
	err := validateFolderPath("path", input.Path)
	if err != nil {
		return errorResult(err)
	}

	names, err := scan.List(input.Path)
	if err != nil {
		return errorResult(err)
	}

	report := sequence.Analyze(names, analysisOptions(input.Formats, input.AutoDetect))

	return jsonResult(render.Entry{Folder: input.Path, Report: report})
}
