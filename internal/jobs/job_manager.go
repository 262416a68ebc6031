package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"packing/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	stalePackJob *StalePackJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(
	stalePacksHandler queries.GetStalePacksQueryHandler,
	stalePackSchedule string,
	stalePackAge time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		stalePackJob: NewStalePackJob(stalePacksHandler, stalePackSchedule, stalePackAge, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.stalePackJob.Start(); err != nil {
		return fmt.Errorf("failed to start stale pack job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.stalePackJob.Stop()
}
