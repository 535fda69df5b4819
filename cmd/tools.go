package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/openkanban/planka-mcp/planka"
	"github.com/openkanban/planka-mcp/workflows"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List every registered tool",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		// Listing needs no upstream; a placeholder client is enough.
		client := planka.NewClient("http://localhost:3000", "", "")
		engine := workflows.NewEngine(client, workflows.WithLogger(slog.Default()))

		for _, ts := range buildToolsets(client, engine) {
			fmt.Printf("%s:\n", ts.Name())
			for _, tool := range ts.Tools() {
				fmt.Printf("  %-28s %s\n", tool.Name, tool.Description)
			}
		}
	},
}
