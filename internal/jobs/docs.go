// Package jobs provides scheduled background tasks for the retail order
// system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around the in-memory order registry.
//
// # Available Jobs
//
// 1. SnapshotExportJob - Runs every minute to project the live registry into the snapshot store
// 2. SalesReportJob - Runs daily at 00:05 to log a summary of the previous day's orders
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with the registry and snapshot store
//	jobManager := jobs.NewJobManager(orderManager, snapshotRepository, logger)
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
// - Export failures are logged per snapshot and do not stop the remaining exports
// - Report failures are logged; the report is retried on the next schedule
// - Failed job starts will stop any already running jobs
package jobs
