// Package schema embeds the JSON schema for the check document emitted by
// the json output format.
package schema

import (
	"embed"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// ReportSchemaFS contains the embedded check document JSON schema.
//
//go:embed report-schema.json
var ReportSchemaFS embed.FS

// Bytes returns the raw embedded schema.
func Bytes() ([]byte, error) {
	data, err := ReportSchemaFS.ReadFile("report-schema.json")
	if err != nil {
		return nil, fmt.Errorf("reading embedded schema: %w", err)
	}

	return data, nil
}

// Validate checks a serialized check document against the embedded schema.
func Validate(document []byte) (*gojsonschema.Result, error) {
	schemaBytes, err := Bytes()
	if err != nil {
		return nil, err
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaBytes),
		gojsonschema.NewBytesLoader(document),
	)
	if err != nil {
		return nil, fmt.Errorf("validating document: %w", err)
	}

	return result, nil
}
