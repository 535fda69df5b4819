package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "planka-mcp",
	Short: "MCP server for Planka boards",
	Long:  `Expose a Planka Kanban board's REST API as MCP tools for agents.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(toolsCmd)
}
