package commands

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dwikygilang/framecheck/internal/mcp"
	"github.com/dwikygilang/framecheck/internal/observability"
	"github.com/dwikygilang/framecheck/pkg/version"
)

// NewMCPCommand creates the mcp command.
func NewMCPCommand() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server for AI agent integration",
		Long: `Start a Model Context Protocol (MCP) server on stdio transport.

The server exposes framecheck as tools that AI agents can discover and
invoke:
  - framecheck_check: report missing frames for a folder
  - framecheck_compare: diff the frame indices of two folders

Logs go to stderr as JSON; stdout carries the protocol.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cobraCmd *cobra.Command, _ []string) error {
			providers, err := initMCPObservability(debug)
			if err != nil {
				return err
			}

			defer func() {
				shutdownErr := providers.Shutdown(context.Background())
				if shutdownErr != nil {
					providers.Logger.Warn("observability shutdown failed", "error", shutdownErr)
				}
			}()

			red, redErr := observability.NewREDMetrics(providers.Meter)
			if redErr != nil {
				return redErr
			}

			srv := mcp.NewServer(mcp.ServerDeps{
				Logger:  providers.Logger,
				Metrics: red,
				Tracer:  providers.Tracer,
				Version: version.Version,
			})

			return srv.Run(cobraCmd.Context())
		},
	}

	cmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging to stderr")

	return cmd
}

func initMCPObservability(debug bool) (observability.Providers, error) {
	cfg := observability.DefaultConfig()
	cfg.ServiceVersion = version.Version
	cfg.Mode = observability.ModeMCP
	cfg.LogJSON = true

	if debug {
		cfg.LogLevel = slog.LevelDebug
	}

	cfg = observability.ApplyEnv(cfg)

	return observability.Init(cfg)
}
