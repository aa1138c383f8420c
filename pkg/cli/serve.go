package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/pipewatch/pipewatch/pkg/cli/config"
	"github.com/pipewatch/pipewatch/pkg/controller/server"
	"github.com/pipewatch/pipewatch/pkg/infra"
	"github.com/pipewatch/pipewatch/pkg/infra/backend"
	"github.com/pipewatch/pipewatch/pkg/usecase"
	"github.com/pipewatch/pipewatch/pkg/utils/logging"

	"github.com/urfave/cli/v3"
)

func serveCommand() *cli.Command {
	var (
		addr string

		backendCfg config.Backend
		pollerCfg  config.Poller
		sentryCfg  config.Sentry
	)
	serveFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Binding address",
			Value:       "127.0.0.1:8080",
			Sources:     cli.EnvVars("PIPEWATCH_ADDR"),
			Destination: &addr,
		},
	}

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Run the local dashboard API with background reconciliation",
		Flags: slice.Flatten(
			serveFlags,
			backendCfg.Flags(),
			pollerCfg.Flags(),
			sentryCfg.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting serve",
				slog.Any("Addr", addr),
				slog.Any("Backend", backendCfg),
				slog.Any("Poller", pollerCfg),
				slog.Any("Sentry", sentryCfg),
			)

			if err := sentryCfg.Configure(ctx); err != nil {
				return err
			}

			session, err := backendCfg.Session()
			if err != nil {
				return err
			}

			backendClient, err := backend.New(backendCfg.BaseURL(), session,
				backend.WithHTTPClient(&http.Client{Timeout: 30 * time.Second}),
			)
			if err != nil {
				return err
			}

			clients := infra.New(
				infra.WithBackend(backendClient),
			)

			uc := usecase.New(clients,
				usecase.WithWebhookPendingExpiry(pollerCfg.PendingExpiry()),
				usecase.WithFeedPageSize(pollerCfg.FeedPageSize()),
			)
			s := server.New(uc)

			pollCtx, stopPoller := context.WithCancel(ctx)
			defer stopPoller()

			poller := usecase.NewPoller(uc, pollerCfg.Interval())
			pollerErr := make(chan error, 1)
			go func() {
				if err := poller.Run(pollCtx); err != nil && pollCtx.Err() == nil {
					pollerErr <- goerr.Wrap(err, "poller stopped")
				}
			}()

			serverErr := make(chan error, 1)
			httpServer := &http.Server{
				Addr:    addr,
				Handler: s.Mux(),

				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       30 * time.Second,
				WriteTimeout:      30 * time.Second,
			}

			go func() {
				logging.Default().Info("starting http server", "addr", addr)
				if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
					serverErr <- goerr.Wrap(err, "failed to listen and serve")
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-serverErr:
				return err

			case err := <-pollerErr:
				return err

			case sig := <-quit:
				logging.Default().Info("shutting down server", "signal", sig)
				stopPoller()

				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := httpServer.Shutdown(ctx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server")
				}
			}

			return nil
		},
	}
}
