package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	syncFlushJob *SyncFlushJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(flusher Flusher, logger *slog.Logger) *JobManager {
	return &JobManager{
		syncFlushJob: NewSyncFlushJob(flusher, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.syncFlushJob.Start(); err != nil {
		return fmt.Errorf("failed to start sync flush job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.syncFlushJob.Stop()
}
