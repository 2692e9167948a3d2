package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/textframe/pkg/observability"
	"github.com/matzehuels/textframe/pkg/server"
)

// serveCommand creates the serve command, which exposes the command
// registry over HTTP until interrupted.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve registered commands over HTTP",
		Long: `Serve registered commands over HTTP.

  POST /invoke/{command}   JSON arguments in, {"result": ...} out
  GET  /commands           registered command names
  GET  /healthz            liveness probe
  GET  /version            build information`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = c.Config.Server.Addr
			}
			logger := loggerFromContext(cmd.Context())
			observability.SetHTTPHooks(observability.LogHTTPHooks{Logger: logger})

			srv := server.New(c.Registry, logger, server.Options{
				Addr:        addr,
				ReadTimeout: c.Config.Server.ReadTimeout.Duration,
			})
			printInfo(cmd.ErrOrStderr(), "Serving %d commands on http://%s", len(c.Registry.Names()), addr)
			if err := srv.ListenAndServe(cmd.Context()); err != nil {
				return err
			}
			printSuccess(cmd.ErrOrStderr(), "Server stopped")
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, 127.0.0.1:7878)")
	return cmd
}
