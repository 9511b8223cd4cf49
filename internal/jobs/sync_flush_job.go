package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// Flusher writes the pending atelier snapshot when its quiet period has elapsed.
type Flusher interface {
	FlushIfDue(ctx context.Context) (bool, error)
}

// SyncFlushJob asks the synchronizer every second whether a flush is due.
type SyncFlushJob struct {
	flusher Flusher
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewSyncFlushJob creates a new job for flushing the ledger to the aggregate store.
func NewSyncFlushJob(flusher Flusher, logger *slog.Logger) *SyncFlushJob {
	return &SyncFlushJob{
		flusher: flusher,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "sync_flush_job"),
	}
}

// Start begins the flush job to run every second.
func (j *SyncFlushJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		j.tick(context.Background())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Sync flush job started (running every second)")
	return nil
}

// Stop stops the flush job and waits for a running tick to finish.
func (j *SyncFlushJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Sync flush job stopped")
}

func (j *SyncFlushJob) tick(ctx context.Context) {
	flushed, err := j.flusher.FlushIfDue(ctx)
	if err != nil {
		// the synchronizer already logged the failure and scheduled a retry
		j.logger.DebugContext(ctx, "Sync flush attempt failed", "error", err)
		return
	}
	if flushed {
		j.logger.DebugContext(ctx, "Sync flush completed")
	}
}
