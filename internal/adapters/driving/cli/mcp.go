package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/mevzuat-cli/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

By default, the server communicates over stdio using JSON-RPC and can be
used with Claude Desktop and other MCP-compatible AI assistants.

Tools:
  ask                 - answer a question, optionally searching sources
  search_regulations  - search regulation websites
  page_content        - fetch the text of a regulation page

Use --port to start an HTTP server instead.

Examples:
  # Stdio mode (default, for Claude Desktop)
  mevzuat mcp serve

  # HTTP mode (for MCP Inspector, remote access)
  mevzuat mcp serve --port 8080

Claude Desktop configuration (claude_desktop_config.json):
  {
    "mcpServers": {
      "mevzuat": {
        "command": "/path/to/mevzuat",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	if assistantService == nil {
		return errAssistantUnavailable
	}

	ports := &mcp.Ports{
		Assistant:   assistantService,
		Regulations: regulationService,
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	if closer := startPromptWatch(cmd); closer != nil {
		defer closer.Close() //nolint:errcheck
	}

	if port > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost:%d\n", port)
	}
	return server.Serve(cmd.Context(), port)
}
