// Package jobs provides scheduled background tasks for the workflow
// engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the package tracking service.
//
// # Available Jobs
//
// 1. MirrorRepairJob - Runs every minute to re-materialize parcel records
// missing from the normalized table, using the embedded copies carried by
// their orders.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(repairMirrorHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Sweep failures are logged and retried on the next tick; a partial sweep
// leaves the store no worse than it was, since the job only adds missing
// records.
package jobs
