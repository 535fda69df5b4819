package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const defaultConfigFile = "planka.yaml"

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a config file template",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if _, err := os.Stat(defaultConfigFile); err == nil {
			fmt.Fprintf(os.Stderr, "Error: %s already exists\n", defaultConfigFile)
			os.Exit(1)
		}

		template := `# planka-mcp configuration
# Run with: planka-mcp serve
# Every value can also come from the environment:
#   PLANKA_BASE_URL, PLANKA_AGENT_EMAIL, PLANKA_AGENT_PASSWORD,
#   PLANKA_ADMIN_ID, PLANKA_ADMIN_EMAIL, PLANKA_ADMIN_USERNAME

base_url: http://localhost:3000
agent_email: agent@example.com
agent_password: change-me

# The admin user added as editor to every created board.
# ID wins over email, email over username. All optional.
admin:
  email: admin@example.com

timeout: 30s
`

		if err := os.WriteFile(defaultConfigFile, []byte(template), 0600); err != nil {
			fmt.Fprintf(os.Stderr, "Error creating config: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Created %s\n", defaultConfigFile)
		fmt.Println("Run with: planka-mcp serve")
	},
}
