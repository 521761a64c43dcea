// Package mcp provides a Model Context Protocol server for journey2md.
// It exposes the entry mapper and directory conversion as MCP tools.
package mcp

import (
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/journey2md/internal/journey"
)

// NewServer creates an MCP server with all journey2md tools registered.
func NewServer(version string, zones journey.ZoneResolver, logger *slog.Logger) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "journey2md",
		Version: version,
	}, nil)
	registerTools(server, zones, logger)
	return server
}

func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for tools that never touch disk.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// writeAnnotations returns annotations for tools that create files.
// Existing files are only replaced when the caller asks for it.
func writeAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(false),
		OpenWorldHint:   boolPtr(false),
	}
}

func registerTools(server *mcp.Server, zones journey.ZoneResolver, logger *slog.Logger) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "entry_path",
		Description: "Compute the Markdown file path and content for one Journey entry record without writing anything.",
		Annotations: readOnlyAnnotations(),
	}, handleEntryPath(zones))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "convert",
		Description: "Convert a directory of Journey export JSON files into a YYYY/MM/DD tree of Markdown files under an existing target directory.",
		Annotations: writeAnnotations(),
	}, handleConvert(zones, logger))
}
