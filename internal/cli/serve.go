package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/internal/server"
)

func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve A* searches over HTTP",
		Long: `Serve starts an HTTP server with:

  GET  /healthz     liveness probe
  POST /v1/search   {"grid": "<text map>", "start": [r,c], "end": [r,c]}

The server stops gracefully on interrupt.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.Config.Server
			if addr != "" {
				cfg.Addr = addr
			}
			return server.New(cfg, loggerFromContext(cmd.Context())).ListenAndServe(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, \":8080\")")

	return cmd
}
