package commands

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	delivery "node-finder/internal/adapter/delivery/http"
	handler "node-finder/internal/adapter/handler/http"

	"github.com/spf13/cobra"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Example: `  # Serve on the configured port
  nodefinder serve

  # Serve with debug logging
  nodefinder serve --log-level debug`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp(opts, "")
			if err != nil {
				return err
			}
			defer a.logger.Sync()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, a)
		},
	}
}

func serve(ctx context.Context, a *app) error {
	h := handler.NewFinderHandler(a.finder, a.logger)
	server := &fasthttp.Server{
		Handler: delivery.NewHandler(h, delivery.Limits{
			RequestsPerSecond: a.cfg.Server.RequestsPerSecond,
			Burst:             a.cfg.Server.Burst,
		}, a.logger),
		Name: a.cfg.App.Name,
	}

	serverAddr := ":" + a.cfg.Server.Port
	a.logger.Info("Starting HTTP server", zap.String("address", serverAddr))

	errCh := make(chan error, 1)
	go func() { errCh <- server.ListenAndServe(serverAddr) }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	a.logger.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.ShutdownWithContext(shutdownCtx)
}
