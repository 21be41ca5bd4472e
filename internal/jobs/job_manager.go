package jobs

import (
	"fmt"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"
)

// Job is a scheduled background task with a start/stop lifecycle.
type Job interface {
	Name() string
	Start() error
	Stop()
}

// JobManager owns the application's scheduled jobs and runs their lifecycle
// as a group.
type JobManager struct {
	jobs []Job
}

// NewJobManager wires the standing jobs over their command handlers.
func NewJobManager(
	flagStalledHandler commands.FlagStalledOrdersCommandHandler,
	sweepCodesHandler commands.SweepExpiredCodesCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		jobs: []Job{
			NewStalledOrderJob(flagStalledHandler, logger),
			NewCodeSweepJob(sweepCodesHandler, logger),
		},
	}
}

// StartAll starts every job in order. When one fails to start, the jobs
// already running are stopped before the error is returned.
func (jm *JobManager) StartAll() error {
	for i, job := range jm.jobs {
		if err := job.Start(); err != nil {
			for _, started := range jm.jobs[:i] {
				started.Stop()
			}
			return fmt.Errorf("start %s: %w", job.Name(), err)
		}
	}
	return nil
}

// StopAll stops every job, last started first.
func (jm *JobManager) StopAll() {
	for i := len(jm.jobs) - 1; i >= 0; i-- {
		jm.jobs[i].Stop()
	}
}
