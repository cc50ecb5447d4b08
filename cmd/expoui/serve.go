package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/gorewood/expoui/internal/emit"
	expouimcp "github.com/gorewood/expoui/internal/mcp"
	"github.com/gorewood/expoui/internal/snippet"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run expoui as a Model Context Protocol (MCP) server over stdio.

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "expoui": {
        "command": "expoui",
        "args": ["serve", "--out-dir", "app/screens"]
      }
    }
  }

Available tools: list_templates, show_template, generate_template`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, s, err := newPrinter(cmd)
			if err != nil {
				return err
			}
			server := expouimcp.NewServer(buildVersion(), emit.New(snippet.Default(), s.outDir))
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
