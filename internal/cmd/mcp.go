package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Dharmi1503/nlpy-cli/internal/engine"
	"github.com/Dharmi1503/nlpy-cli/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server to integrate with LLM tools",
	Long: `Start a Model Context Protocol (MCP) server over stdio.

Tools provided:
- translate_instruction: translate one instruction into Python
- list_commands: list every supported instruction template

Works with Claude Desktop, Claude Code, Cursor, and other MCP clients.`,
	Example: `  nlpy mcp`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		server := mcp.NewServer(engine.New(), GetVersion())
		return server.Run(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
