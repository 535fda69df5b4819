package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/openkanban/planka-mcp/config"
	"github.com/openkanban/planka-mcp/planka"
	"github.com/openkanban/planka-mcp/toolset"
	"github.com/openkanban/planka-mcp/workflows"
)

var (
	configFile string
	httpAddr   string
	debug      bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the MCP tools",
	Long: `Serve every tool over stdio (default), or over HTTP with one
streamable endpoint per toolset when --http is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger(debug)
		slog.SetDefault(logger)

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		client, engine := buildStack(cfg, logger)
		toolsets := buildToolsets(client, engine)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if httpAddr != "" {
			api := toolset.NewAPIServer()
			for _, ts := range toolsets {
				api.RegisterToolset(ts)
			}
			if err := api.Start(httpAddr); err != nil {
				return err
			}
			logger.Info("serving MCP over HTTP",
				"base_url", api.BaseURL(), "toolsets", len(toolsets))
			<-ctx.Done()
			return api.Stop()
		}

		srv := toolset.CombinedServer("planka-mcp", toolsets...)
		logger.Info("serving MCP over stdio")
		return srv.Run(ctx, &mcp.StdioTransport{})
	},
}

// newLogger writes to stderr: stdout belongs to the stdio transport.
func newLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func loadConfig() (*config.Config, error) {
	path := configFile
	if path == defaultConfigFile {
		// The default path is optional; an explicitly given one is not.
		if _, err := os.Stat(path); err != nil {
			path = ""
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w (create one with: planka-mcp init)", err)
	}
	return cfg, nil
}

func buildStack(cfg *config.Config, logger *slog.Logger) (*planka.Client, *workflows.Engine) {
	client := planka.NewClient(cfg.BaseURL, cfg.AgentEmail, cfg.AgentPassword,
		planka.WithTimeout(cfg.Timeout),
		planka.WithLogger(logger),
		planka.WithAdminID(cfg.Admin.ID),
		planka.WithAdminEmail(cfg.Admin.Email),
		planka.WithAdminUsername(cfg.Admin.Username),
	)
	engine := workflows.NewEngine(client, workflows.WithLogger(logger))
	return client, engine
}

func buildToolsets(client *planka.Client, engine *workflows.Engine) []toolset.Toolset {
	return []toolset.Toolset{
		toolset.NewBoardToolset(client),
		toolset.NewCardToolset(client),
		toolset.NewTaskToolset(client),
		toolset.NewLabelToolset(client),
		toolset.NewUserToolset(client),
		toolset.NewWorkflowToolset(engine),
	}
}

func init() {
	serveCmd.Flags().StringVarP(&configFile, "config", "c", defaultConfigFile, "Config file")
	serveCmd.Flags().StringVar(&httpAddr, "http", "", "Serve over HTTP on this address instead of stdio (e.g. :8080)")
	serveCmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging")
}
