package jobs

import (
	"fmt"
	"log/slog"

	"fleetdispatch/internal/core/domain/model/tenant"
)

// ScheduleConfig enables scheduled reconciliation. An empty Schedule or an
// empty Organizations list leaves it off.
type ScheduleConfig struct {
	Schedule      string
	Organizations []tenant.Scope
}

// Enabled reports whether the schedule has anything to run.
func (c ScheduleConfig) Enabled() bool {
	return c.Schedule != "" && len(c.Organizations) > 0
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	reconciliationJob *ReconciliationJob
	logger            *slog.Logger
}

// NewJobManager creates a job manager. Jobs whose configuration is disabled
// are not created.
func NewJobManager(
	reconcileHandler ReconcileHandler,
	config ScheduleConfig,
	logger *slog.Logger,
) *JobManager {
	jm := &JobManager{logger: logger.With("component", "jobs")}
	if config.Enabled() {
		jm.reconciliationJob = NewReconciliationJob(reconcileHandler, config.Schedule, config.Organizations, logger)
	}
	return jm
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if jm.reconciliationJob == nil {
		jm.logger.Info("Scheduled reconciliation is disabled")
		return nil
	}

	if err := jm.reconciliationJob.Start(); err != nil {
		return fmt.Errorf("failed to start reconciliation job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.reconciliationJob != nil {
		jm.reconciliationJob.Stop()
	}
}
