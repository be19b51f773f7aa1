package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"freightgate/internal/core/application/creds"
	"freightgate/internal/core/application/usecases/queries"
)

// ExpiredSweepJob periodically polls the carriers for reservations past their
// validity window and logs them for operators. Carriers reclaim expired holds
// themselves; the sweep is about visibility, not cleanup.
type ExpiredSweepJob struct {
	handler  queries.GetExpiredQueryHandler
	resolver *creds.Resolver
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewExpiredSweepJob creates the expired reservation sweep.
func NewExpiredSweepJob(
	handler queries.GetExpiredQueryHandler,
	resolver *creds.Resolver,
	logger *slog.Logger,
) *ExpiredSweepJob {
	return &ExpiredSweepJob{
		handler:  handler,
		resolver: resolver,
		cron:     cron.New(),
		logger:   logger.With("component", "expired_sweep_job"),
	}
}

// Start schedules the sweep every 15 minutes.
func (j *ExpiredSweepJob) Start() error {
	_, err := j.cron.AddFunc("*/15 * * * *", func() {
		ctx := context.Background()

		cfg := j.resolver.Resolve(ctx, 0, 0)
		rows, err := j.handler.Handle(ctx, queries.NewGetExpiredQuery(cfg))
		if err != nil {
			j.logger.ErrorContext(ctx, "Expired reservation sweep failed", "error", err)
			return
		}

		for _, row := range rows {
			j.logger.InfoContext(ctx, "Stale reservation",
				"carrier", row.Carrier,
				"type", row.Type,
				"number", row.Number,
				"reserved", row.Reserved,
				"expires", row.Expires,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Expired reservation sweep started (every 15 minutes)")
	return nil
}

// Stop stops the sweep.
func (j *ExpiredSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Expired reservation sweep stopped")
}
