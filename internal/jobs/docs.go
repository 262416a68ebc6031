// Package jobs provides scheduled background tasks for the packing service.
//
// Jobs are implemented with github.com/robfig/cron/v3 and coordinated by
// JobManager:
//
//	jobManager := jobs.NewJobManager(stalePacksHandler, "*/5 * * * *", 4*time.Hour, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// The only job today is StalePackJob, which reports packing sessions left
// in progress beyond a configured age. It logs and updates the stale_packs
// gauge but never mutates pack state; abandoned packs are a human decision.
package jobs
