// Package jobs provides scheduled background tasks for the dispatch service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// Reconciliation is operator-triggered by default; scheduling is opt-in.
//
// # Available Jobs
//
// 1. ReconciliationJob - Re-plans the routes of each configured organization on a cron schedule
//
// # Usage
//
//	jobManager := jobs.NewJobManager(reconcileHandler, jobs.ScheduleConfig{
//		Schedule:      "0 */15 * * * *",
//		Organizations: scopes,
//	}, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules use six fields, seconds first. A tick still running when the
// next one fires is skipped, so slow solver calls never pile up.
//
// # Error Handling
//
// - Solver failures are logged at warn level, other failures at error level
// - A failing organization does not prevent the others from being reconciled
package jobs
