package mcp

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/dwikygilang/framecheck/pkg/sequence"
)

// Tool name constants.
const (
	ToolNameCheck   = "framecheck_check"
	ToolNameCompare = "framecheck_compare"
)

// Sentinel errors for tool input validation.
var (
	// ErrEmptyPath indicates a folder path parameter is empty.
	ErrEmptyPath = errors.New("path parameter is required and must not be empty")
	// ErrPathNotAbsolute indicates a folder path parameter is not absolute.
	ErrPathNotAbsolute = errors.New("path must be an absolute path")
)

// Input types (auto-generate JSON schemas via struct tags).

// CheckInput is the input schema for the framecheck_check tool.
type CheckInput struct {
	AutoDetect *bool    `json:"auto_detect,omitempty" jsonschema:"infer the filename prefix from the folder contents (default: true)"`
	Formats    []string `json:"formats,omitempty"     jsonschema:"extension allow-list without dots, e.g. png exr (default: common render formats)"`
	Path       string   `json:"path"                  jsonschema:"absolute path to the folder holding the frame files"`
}

// CompareInput is the input schema for the framecheck_compare tool.
type CompareInput struct {
	Formats []string `json:"formats,omitempty" jsonschema:"extension allow-list without dots, e.g. png exr (default: common render formats)"`
	PathA   string   `json:"path_a"            jsonschema:"absolute path to the first folder"`
	PathB   string   `json:"path_b"            jsonschema:"absolute path to the second folder"`
}

// Output type (used as structured output for generic AddTool).

// ToolOutput is a generic wrapper for tool results.
type ToolOutput struct {
	Data any `json:"data"`
}

// Result helpers.

// errorResult builds a CallToolResult with isError set.
func errorResult(err error) (*mcpsdk.CallToolResult, ToolOutput, error) {
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{
			&mcpsdk.TextContent{Text: err.Error()},
		},
		IsError: true,
	}, ToolOutput{}, nil
}

// jsonResult builds a CallToolResult with JSON-encoded content.
func jsonResult(value any) (*mcpsdk.CallToolResult, ToolOutput, error) {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return errorResult(fmt.Errorf("encode result: %w", err))
	}

	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{
			&mcpsdk.TextContent{Text: string(data)},
		},
	}, ToolOutput{Data: value}, nil
}

// validateFolderPath checks one folder path parameter, naming it in the error.
func validateFolderPath(param, path string) error {
	if path == "" {
		return fmt.Errorf("%s: %w", param, ErrEmptyPath)
	}

	if !filepath.IsAbs(path) {
		return fmt.Errorf("%s: %w", param, ErrPathNotAbsolute)
	}

	return nil
}

// analysisOptions maps tool input onto analysis options. A nil autoDetect
// means detection stays on.
func analysisOptions(formats []string, autoDetect *bool) sequence.Options {
	return sequence.Options{
		Formats:          formats,
		DisableDetection: autoDetect != nil && !*autoDetect,
	}
}
