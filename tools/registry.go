// Package tools holds the fixed tool catalog and the dispatcher that maps
// tool calls onto helper process invocations.
package tools

import (
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/jsonschema"
)

// Tool names recognized by the dispatcher.
const (
	SearchFiles = "search_files"
	OpenFile    = "open_file"
)

// Definition describes one tool exposed for discovery. Definitions are
// immutable and declared once; argument validation against the schema is
// advisory and happens in the protocol layer, not here.
type Definition struct {
	Name        string
	Description string
	InputSchema *jsonschema.Schema
}

// falseSchema is the boolean `false` schema, used to reject additional
// properties.
func falseSchema() *jsonschema.Schema {
	return &jsonschema.Schema{Not: &jsonschema.Schema{}}
}

// Definitions returns the tool catalog in discovery order.
func Definitions() []Definition {
	return []Definition{
		{
			Name:        SearchFiles,
			Description: "Search files by name and/or content starting at a directory.",
			InputSchema: &jsonschema.Schema{
				Type: "object",
				Properties: map[string]*jsonschema.Schema{
					"name": {
						Type:        "string",
						Description: "Glob or pattern for file names",
					},
					"content": {
						Type:        "string",
						Description: "Substring / text to search inside files",
					},
					"directory": {
						Type:        "string",
						Description: "Root directory to start search",
						Default:     json.RawMessage(`"."`),
					},
				},
				AdditionalProperties: falseSchema(),
			},
		},
		{
			Name:        OpenFile,
			Description: "Open a file or directory in VS Code (uses the vscode-helper binary).",
			InputSchema: &jsonschema.Schema{
				Type: "object",
				Properties: map[string]*jsonschema.Schema{
					"path": {
						Type:        "string",
						Description: "Path to file or directory",
					},
					"open_dir": {
						Type:        "boolean",
						Description: "Treat path as directory",
						Default:     json.RawMessage(`false`),
					},
				},
				Required:             []string{"path"},
				AdditionalProperties: falseSchema(),
			},
		},
	}
}
