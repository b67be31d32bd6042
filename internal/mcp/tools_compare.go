package mcp

import (
	"context"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/dwikygilang/framecheck/internal/render"
	"github.com/dwikygilang/framecheck/internal/scan"
	"github.com/dwikygilang/framecheck/pkg/sequence"
)

// handleCompare processes framecheck_compare tool calls.
func handleCompare(
	_ context.Context,
	_ *mcpsdk.CallToolRequest,
	input CompareInput,
) (*mcpsdk.CallToolResult, ToolOutput, error) {
	err := validateFolderPath("path_a", input.PathA)
	if err != nil {
		return errorResult(err)
	}

	err = validateFolderPath("path_b", input.PathB)
	if err != nil {
		return errorResult(err)
	}

	opts := analysisOptions(input.Formats, nil)

	namesA, err := scan.List(input.PathA)
	if err != nil {
		return errorResult(err)
	}

	namesB, err := scan.List(input.PathB)
	if err != nil {
		return errorResult(err)
	}

	reportA := sequence.Analyze(namesA, opts)
	reportB := sequence.Analyze(namesB, opts)

	doc := render.ComparisonDocument{
		A:          render.Entry{Folder: input.PathA, Report: reportA},
		B:          render.Entry{Folder: input.PathB, Report: reportB},
		Comparison: sequence.Compare(reportA, reportB),
	}

	return jsonResult(doc)
}
