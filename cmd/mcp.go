package cmd

import (
	"github.com/pagelens/pagelens/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Pagelens MCP server",
	Long:  `Launch an MCP server that allows AI agents to run accessibility scans via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Stdio carries the protocol, so the usual startup banner
		// must stay off in this mode.
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
