package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	journeymcp "github.com/gorewood/journey2md/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run journey2md as a Model Context Protocol (MCP) server over stdio.

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "journey2md": {
        "command": "journey2md",
        "args": ["serve"]
      }
    }
  }

Available tools: entry_path, convert`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			server := journeymcp.NewServer(buildVersion(), a.zones, a.logger)
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
