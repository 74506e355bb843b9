package jobs

import (
	"context"
	"errors"
	"log/slog"

	"fleetdispatch/internal/core/application/usecases/commands"
	"fleetdispatch/internal/core/domain/model/tenant"
	"fleetdispatch/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// ReconcileHandler runs one reconciliation for an organization.
type ReconcileHandler interface {
	Handle(ctx context.Context, cmd commands.ReconcileRoutesCommand) (commands.ReconcileRoutesResult, error)
}

// ReconciliationJob re-plans the routes of a fixed set of organizations on a
// cron schedule. A tick that is still running when the next one fires is skipped.
type ReconciliationJob struct {
	handler  ReconcileHandler
	schedule string
	scopes   []tenant.Scope
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewReconciliationJob creates the job. schedule is a cron expression with a
// leading seconds field, e.g. "0 */15 * * * *".
func NewReconciliationJob(
	handler ReconcileHandler,
	schedule string,
	scopes []tenant.Scope,
	logger *slog.Logger,
) *ReconciliationJob {
	logger = logger.With("component", "reconciliation_job")
	cronLogger := cron.PrintfLogger(slog.NewLogLogger(logger.Handler(), slog.LevelDebug))

	return &ReconciliationJob{
		handler:  handler,
		schedule: schedule,
		scopes:   scopes,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithLogger(cronLogger),
			cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
		),
		logger: logger,
	}
}

// Start registers the schedule and starts the cron runner.
func (j *ReconciliationJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() {
		j.RunOnce(context.Background())
	}); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Reconciliation job started",
		"schedule", j.schedule, "organizations", len(j.scopes))
	return nil
}

// Stop stops the scheduler and waits for a running tick to finish.
func (j *ReconciliationJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Reconciliation job stopped")
}

// RunOnce reconciles every configured organization in turn. A failure for one
// organization is logged and does not stop the others.
func (j *ReconciliationJob) RunOnce(ctx context.Context) {
	for _, scope := range j.scopes {
		if ctx.Err() != nil {
			return
		}

		cmd, err := commands.NewReconcileRoutesCommand(scope)
		if err != nil {
			j.logger.ErrorContext(ctx, "Invalid organization", "organization", scope.String(), "error", err)
			continue
		}

		result, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			// Solver outages are expected from time to time.
			level := slog.LevelError
			if errors.Is(err, errs.ErrExternalService) {
				level = slog.LevelWarn
			}
			j.logger.Log(ctx, level, "Scheduled reconciliation failed",
				"organization", scope.String(), "error", err)
			continue
		}

		j.logger.InfoContext(ctx, "Scheduled reconciliation finished",
			"organization", scope.String(),
			"routes", len(result.Routes),
			"skipped", len(result.Skipped))
	}
}
