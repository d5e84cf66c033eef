package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/RealZimboGuy/relvalmatrix/internal/config"
	"github.com/RealZimboGuy/relvalmatrix/pkg/relvalmatrix"
)

func newServeCmd() *cobra.Command {
	var port string

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the published catalog over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if port != "" {
				config.Set(config.SERVER_WEB_PORT, port)
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return relvalmatrix.Start(ctx, nil)
		},
	}
	serveCmd.Flags().StringVar(&port, "port", "", "listen port, overrides "+config.SERVER_WEB_PORT)
	return serveCmd
}
