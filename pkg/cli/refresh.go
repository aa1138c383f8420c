package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/gots/slice"
	"github.com/pipewatch/pipewatch/pkg/cli/config"
	"github.com/pipewatch/pipewatch/pkg/infra"
	"github.com/pipewatch/pipewatch/pkg/infra/backend"
	"github.com/pipewatch/pipewatch/pkg/usecase"
	"github.com/pipewatch/pipewatch/pkg/utils/logging"

	"github.com/urfave/cli/v3"
)

// refreshCommand runs a single reconciliation cycle and prints the snapshot
// summary. Useful for checking backend connectivity without the server loop.
func refreshCommand() *cli.Command {
	var (
		backendCfg config.Backend
		pollerCfg  config.Poller
	)

	return &cli.Command{
		Name:    "refresh",
		Aliases: []string{"r"},
		Usage:   "Run one refresh cycle against the backend and exit",
		Flags: slice.Flatten(
			backendCfg.Flags(),
			pollerCfg.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			session, err := backendCfg.Session()
			if err != nil {
				return err
			}

			backendClient, err := backend.New(backendCfg.BaseURL(), session)
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

			if err := uc.RefreshAll(ctx); err != nil {
				return err
			}

			repos, err := uc.ListRepositories(ctx, nil)
			if err != nil {
				return err
			}
			runs, err := uc.ListRuns(ctx, nil)
			if err != nil {
				return err
			}
			hooks, err := uc.ListWebhooks(ctx)
			if err != nil {
				return err
			}

			logging.Default().Info("refresh completed",
				slog.Int("repositories", len(repos)),
				slog.Int("webhooks", len(hooks)),
				slog.Int("runs", len(runs)),
				slog.Int("events", len(uc.ListEvents(ctx))),
			)

			return nil
		},
	}
}
