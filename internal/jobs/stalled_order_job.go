package jobs

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// StalledOrderJob periodically flags active orders that have been sitting in
// one status past the configured threshold.
type StalledOrderJob struct {
	handler commands.FlagStalledOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStalledOrderJob creates a new job for flagging stalled orders.
func NewStalledOrderJob(handler commands.FlagStalledOrdersCommandHandler, logger *slog.Logger) *StalledOrderJob {
	return &StalledOrderJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "stalled_order_job"),
	}
}

// Name identifies the job in manager errors.
func (j *StalledOrderJob) Name() string {
	return "stalled order job"
}

// Start begins the stalled order job to run every minute.
func (j *StalledOrderJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewFlagStalledOrdersCommand()

		flagged, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stalled order sweep failed", "error", err)
			return
		}

		if flagged > 0 {
			j.logger.InfoContext(ctx, "Flagged stalled orders", "count", flagged)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stalled order job started (running every minute)")
	return nil
}

// Stop stops the stalled order job.
func (j *StalledOrderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stalled order job stopped")
}
