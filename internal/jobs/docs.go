// Package jobs provides scheduled background tasks for the order system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order fulfillment.
//
// # Available Jobs
//
// 1. OrderAssignmentJob - Runs every second to pair pending orders with available drivers
// 2. DeliveryTrackingJob - Runs every 30 seconds to advance active orders one lifecycle step
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required stores and handlers
//	jobManager := jobs.NewJobManager(orders, drivers, assignHandler, progressHandler, logger)
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
// Both jobs plan a batch from a store read and hand it to a batch command
// handler. Per-order conflicts (stale plans, unavailable drivers) are
// skips inside the execution report and do not fail the job run; only
// planning and handler-level errors are logged as job failures.
package jobs
