// Package jobs provides scheduled background tasks for the shipping gateway.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around label lifecycle hygiene.
//
// # Available Jobs
//
// 1. ExpiredSweepJob - Runs every 15 minutes to surface carrier reservations
// that lapsed without becoming labels
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(expiredHandler, resolver, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Sweep failures are logged and retried on the next tick; a carrier being
// unreachable never stops the schedule.
package jobs
