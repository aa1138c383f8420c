package config

import (
	"log/slog"
	"time"

	"github.com/urfave/cli/v3"
)

// Poller holds the reconciliation cadence and the client-side tuning knobs
// applied to the use case layer.
type Poller struct {
	interval      time.Duration
	pendingExpiry time.Duration
	feedPageSize  int64
}

func (x *Poller) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.DurationFlag{
			Name:        "poll-interval",
			Usage:       "Interval between background refresh cycles",
			Category:    "Poller",
			Value:       3 * time.Second,
			Sources:     cli.EnvVars("PIPEWATCH_POLL_INTERVAL"),
			Destination: &x.interval,
		},
		&cli.DurationFlag{
			Name:        "webhook-pending-expiry",
			Usage:       "How long a webhook may stay pending before it is marked failed locally",
			Category:    "Poller",
			Value:       15 * time.Minute,
			Sources:     cli.EnvVars("PIPEWATCH_WEBHOOK_PENDING_EXPIRY"),
			Destination: &x.pendingExpiry,
		},
		&cli.Int64Flag{
			Name:        "feed-page-size",
			Usage:       "Number of commits requested per feed page",
			Category:    "Poller",
			Value:       5,
			Sources:     cli.EnvVars("PIPEWATCH_FEED_PAGE_SIZE"),
			Destination: &x.feedPageSize,
		},
	}
}

func (x *Poller) Interval() time.Duration {
	return x.interval
}

func (x *Poller) PendingExpiry() time.Duration {
	return x.pendingExpiry
}

func (x *Poller) FeedPageSize() int {
	return int(x.feedPageSize)
}

func (x *Poller) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("Interval", x.interval),
		slog.Any("PendingExpiry", x.pendingExpiry),
		slog.Any("FeedPageSize", x.feedPageSize),
	)
}
