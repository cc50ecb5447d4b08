// Package mcp provides a Model Context Protocol server for expoui.
// It exposes the template registry as MCP tools that any MCP-capable agent can use.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/expoui/internal/emit"
)

// NewServer creates an MCP server with all expoui tools registered.
func NewServer(version string, emitter *emit.Emitter) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "expoui",
		Version: version,
	}, nil)
	registerTools(server, emitter)
	return server
}

func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for tools that only read the registry.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// writeAnnotations returns annotations for generate_template, which
// overwrites its output file with identical content on every call.
func writeAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(false),
		IdempotentHint:  true,
		OpenWorldHint:   boolPtr(false),
	}
}

// registerTools adds all expoui tools to the server.
func registerTools(server *mcp.Server, emitter *emit.Emitter) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_templates",
		Description: "List the built-in Expo UI screen templates with their descriptions and output file names.",
		Annotations: readOnlyAnnotations(),
	}, handleList(emitter))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "show_template",
		Description: "Return the source of a built-in Expo UI screen template without writing any file.",
		Annotations: readOnlyAnnotations(),
	}, handleShow(emitter))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate_template",
		Description: "Write a built-in Expo UI screen template to ExpoUI<Name>Screen.jsx in the output directory.",
		Annotations: writeAnnotations(),
	}, handleGenerate(emitter))
}
