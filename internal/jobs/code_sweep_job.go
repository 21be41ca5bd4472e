package jobs

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// CodeSweepJob periodically drops collection codes that outlived their
// validity window.
type CodeSweepJob struct {
	handler commands.SweepExpiredCodesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewCodeSweepJob creates a new job for sweeping expired collection codes.
func NewCodeSweepJob(handler commands.SweepExpiredCodesCommandHandler, logger *slog.Logger) *CodeSweepJob {
	return &CodeSweepJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "code_sweep_job"),
	}
}

// Name identifies the job in manager errors.
func (j *CodeSweepJob) Name() string {
	return "code sweep job"
}

// Start begins the code sweep job to run every minute.
func (j *CodeSweepJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewSweepExpiredCodesCommand()

		swept, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Expired code sweep failed", "error", err)
			return
		}

		if swept > 0 {
			j.logger.InfoContext(ctx, "Dropped expired collection codes", "count", swept)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Code sweep job started (running every minute)")
	return nil
}

// Stop stops the code sweep job.
func (j *CodeSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Code sweep job stopped")
}
