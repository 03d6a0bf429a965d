// Package server wires the tool catalog and dispatcher into an MCP server.
package server

import (
	"context"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/sarmad-abualkaz/vscode-helper/tools"
)

// Name and Version identify the server implementation to MCP clients.
const (
	Name    = "vscode-file-finder"
	Version = "0.1.0"
)

// New constructs an MCP server with the file-navigation tools registered.
// Each registered handler forwards the raw argument map to the dispatcher,
// which owns all tool semantics and error rendering.
func New(runner tools.Runner, logger *slog.Logger) *mcp.Server {
	impl := &mcp.Implementation{Name: Name, Version: Version}
	srv := mcp.NewServer(impl, nil)
	dispatcher := tools.NewDispatcher(runner, logger)

	for _, def := range tools.Definitions() {
		name := def.Name
		tool := &mcp.Tool{
			Name:        def.Name,
			Description: def.Description,
			InputSchema: def.InputSchema,
		}
		mcp.AddTool(srv, tool, func(ctx context.Context, ss *mcp.ServerSession, params *mcp.CallToolParamsFor[map[string]any]) (*mcp.CallToolResultFor[any], error) {
			blocks := dispatcher.Dispatch(ctx, tools.CallRequest{Name: name, Arguments: params.Arguments})
			return toResult(blocks), nil
		})
	}
	return srv
}

func toResult(blocks []tools.Content) *mcp.CallToolResultFor[any] {
	content := make([]mcp.Content, 0, len(blocks))
	for _, b := range blocks {
		content = append(content, &mcp.TextContent{Text: b.Text})
	}
	return &mcp.CallToolResultFor[any]{Content: content}
}
