package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"cpusched/api"
)

func newServeCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the scheduling simulator over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("port") {
				port = cfg.Port
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, port)
		},
	}
	cmd.Flags().IntVar(&port, "port", 0, "Listen port (default from config, 9095)")
	return cmd
}

func serve(ctx context.Context, port int) error {
	app := api.NewApp(cfg, logger)

	errCh := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf(":%d", port)
		logger.Info("listening", "addr", addr)
		errCh <- app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logger.Info("shutting down")
		return app.Shutdown()
	}
}
