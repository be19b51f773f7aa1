package jobs

import (
	"fmt"
	"log/slog"

	"freightgate/internal/core/application/creds"
	"freightgate/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	expiredSweepJob *ExpiredSweepJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	expiredHandler queries.GetExpiredQueryHandler,
	resolver *creds.Resolver,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		expiredSweepJob: NewExpiredSweepJob(expiredHandler, resolver, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.expiredSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start expired reservation sweep: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.expiredSweepJob.Stop()
}
