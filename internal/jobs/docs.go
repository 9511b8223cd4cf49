// Package jobs provides scheduled background tasks for the atelier service.
//
// Jobs are cron-based and use github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. SyncFlushJob - Runs every second and writes the pending ledger snapshot
// to the aggregate store once no mutation arrived for the debounce period
//
// # Usage
//
//	jobManager := jobs.NewJobManager(synchronizer, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed flush is logged by the synchronizer, which keeps the snapshot
// pending and delays the next attempt with exponential backoff. The job
// itself never stops on a failed tick.
package jobs
