package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/lowent/netforge/internal/server"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr string
}

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	opts := &serveOpts{addr: ":8080"}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the netlist API over HTTP",
		Long: `Serve the netlist API over HTTP.

Endpoints under /api/v1 accept netlist text or circuit snapshots and
return parsed snapshots, emitted text, expanded instance counts, and
hierarchy graphs. The server shuts down gracefully on interrupt.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	return cmd
}

func (c *CLI) runServe(ctx context.Context, opts *serveOpts) error {
	srv := server.New(c.Logger)
	c.Logger.Info("serving netlist API", "addr", opts.addr)
	return srv.ListenAndServe(ctx, opts.addr)
}
