// Package jobs provides scheduled background tasks for the fulfillment system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle the periodic housekeeping the order lifecycle requires.
//
// # Available Jobs
//
// 1. StalledOrderJob - flags active orders whose status has been idle past
// the configured threshold so they surface for administrative review
// 2. CodeSweepJob - drops collection codes that outlived their validity
// window so site managers can issue fresh ones
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(flagStalledHandler, sweepCodesHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Both jobs run every minute. The thresholds they enforce are measured in
// hours and minutes, so sub-minute scheduling would only add load.
//
// # Error Handling
//
// Sweep failures are logged and retried on the next tick; one failed tick
// never stops the schedule.
package jobs
