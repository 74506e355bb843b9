package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/order"
	"fleetdispatch/internal/core/domain/model/plan"
	"fleetdispatch/internal/core/domain/model/tenant"
	"fleetdispatch/internal/core/domain/model/vehicle"
	"fleetdispatch/internal/core/domain/services"
	"fleetdispatch/internal/core/ports"
	"fleetdispatch/internal/pkg/errs"
)

// DefaultSolverTimeout bounds a solver call when none is configured.
const DefaultSolverTimeout = 60 * time.Second

// ErrVehicleRemovedDuringRun aborts a run whose plan uses a vehicle deleted while the solver was working.
// Running reconciliation again plans without that vehicle.
var ErrVehicleRemovedDuringRun = errs.NewValueIsInvalidErrorWithCause("plan vehicle",
	errors.New("vehicle was deleted during reconciliation, run it again"))

// RunLocker serialises reconciliation runs of one organization inside the process.
type RunLocker interface {
	Lock(ctx context.Context, key string) (func(), error)
}

// ReconcileRoutesCommandHandler runs the dispatch reconciliation cycle:
// snapshot, solve, then clear and apply atomically.
//
// The snapshot is read and the solver is called without holding a write
// transaction, so a slow or failing solver never blocks readers and never
// leaves a trace in the database. Clearing and applying the plan happen in one
// transaction under the organization's dispatch lock.
type ReconcileRoutesCommandHandler struct {
	uowFactory    UoWFactory
	solver        ports.Solver
	metrics       ports.DispatchMetrics
	locks         RunLocker
	reconciler    services.RouteReconciler
	solverTimeout time.Duration
	logger        *slog.Logger
}

func NewReconcileRoutesCommandHandler(
	uowFactory UoWFactory,
	solver ports.Solver,
	metrics ports.DispatchMetrics,
	locks RunLocker,
	solverTimeout time.Duration,
	logger *slog.Logger,
) ReconcileRoutesCommandHandler {
	if solverTimeout <= 0 {
		solverTimeout = DefaultSolverTimeout
	}
	return ReconcileRoutesCommandHandler{
		uowFactory:    uowFactory,
		solver:        solver,
		metrics:       metrics,
		locks:         locks,
		reconciler:    services.NewRouteReconciler(),
		solverTimeout: solverTimeout,
		logger:        logger.With("component", "reconcile-routes"),
	}
}

// WithReconciler replaces the reconciler, mainly to fix route identities in tests.
func (h ReconcileRoutesCommandHandler) WithReconciler(r services.RouteReconciler) ReconcileRoutesCommandHandler {
	h.reconciler = r
	return h
}

func (h *ReconcileRoutesCommandHandler) Handle(
	ctx context.Context,
	cmd ReconcileRoutesCommand,
) (ReconcileRoutesResult, error) {
	if err := cmd.Validate(); err != nil {
		return ReconcileRoutesResult{}, err
	}

	scope := cmd.Scope()
	logger := h.logger.With("organization", scope.String())

	unlock, err := h.locks.Lock(ctx, scope.String())
	if err != nil {
		return ReconcileRoutesResult{}, fmt.Errorf("wait for running reconciliation: %w", err)
	}
	defer unlock()

	orders, vehicles, err := h.snapshot(ctx, scope)
	if err != nil {
		h.metrics.RecordRun(ports.OutcomeFailed, 0)
		return ReconcileRoutesResult{}, err
	}

	logger.InfoContext(ctx, "reconciliation started", "orders", len(orders), "vehicles", len(vehicles))

	if len(orders) == 0 || len(vehicles) == 0 {
		h.metrics.RecordRun(ports.OutcomeEmpty, 0)
		logger.InfoContext(ctx, "nothing to plan")
		return ReconcileRoutesResult{}, nil
	}

	p, err := h.solve(ctx, plan.NewRequest(orders, vehicles))
	if err != nil {
		h.metrics.RecordRun(ports.OutcomeSolverError, 0)
		logger.ErrorContext(ctx, "solver failed", "error", err)
		return ReconcileRoutesResult{}, err
	}

	if p.IsEmpty() {
		h.metrics.RecordRun(ports.OutcomeEmpty, 0)
		logger.InfoContext(ctx, "solver returned no routes, assignment left untouched")
		return ReconcileRoutesResult{}, nil
	}

	rec, err := h.reconciler.Reconcile(scope, orders, vehicles, p)
	if err != nil {
		h.metrics.RecordRun(ports.OutcomeRejected, 0)
		logger.ErrorContext(ctx, "plan rejected", "error", err)
		return ReconcileRoutesResult{}, err
	}

	rec, err = h.persist(ctx, scope, vehicles, p, rec)
	if err != nil {
		h.metrics.RecordRun(ports.OutcomeFailed, 0)
		logger.ErrorContext(ctx, "persisting plan failed", "error", err)
		return ReconcileRoutesResult{}, err
	}

	for _, skipped := range rec.Skipped {
		logger.WarnContext(ctx, "plan stop skipped",
			"vehicle_id", skipped.VehicleID,
			"stop_id", skipped.StopID,
			"reason", string(skipped.Reason),
		)
	}

	h.metrics.RecordRun(ports.OutcomePlanned, len(rec.Routes))
	logger.InfoContext(ctx, "reconciliation finished",
		"routes", len(rec.Routes),
		"assigned_orders", rec.AssignedCount(),
		"skipped_stops", len(rec.Skipped),
	)

	return buildResult(rec), nil
}

// snapshot loads orders and vehicles from one consistent read-only view.
func (h *ReconcileRoutesCommandHandler) snapshot(
	ctx context.Context,
	scope tenant.Scope,
) ([]*order.Order, []*vehicle.Vehicle, error) {
	uow := h.uowFactory.Create(scope)
	if err := uow.BeginReadOnly(ctx); err != nil {
		return nil, nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders, err := uow.OrderRepository().List(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load orders: %w", err)
	}

	vehicles, err := uow.VehicleRepository().List(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load vehicles: %w", err)
	}

	return orders, vehicles, nil
}

func (h *ReconcileRoutesCommandHandler) solve(ctx context.Context, request plan.Request) (plan.Plan, error) {
	solveCtx, cancel := context.WithTimeout(ctx, h.solverTimeout)
	defer cancel()

	started := time.Now()
	p, err := h.solver.Solve(solveCtx, request)
	h.metrics.ObserveSolverLatency(time.Since(started))

	if err != nil {
		if errors.Is(err, errs.ErrExternalService) {
			return plan.Plan{}, err
		}
		return plan.Plan{}, errs.NewExternalServiceError("solver", err)
	}
	return p, nil
}

// persist clears the previous assignment and applies the new one in a single
// transaction. It returns the reconciliation that was actually written, which
// differs from rec when orders were deleted while the solver was running.
func (h *ReconcileRoutesCommandHandler) persist(
	ctx context.Context,
	scope tenant.Scope,
	vehicles []*vehicle.Vehicle,
	p plan.Plan,
	rec services.Reconciliation,
) (services.Reconciliation, error) {
	uow := h.uowFactory.Create(scope)
	if err := uow.Begin(ctx); err != nil {
		return services.Reconciliation{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.LockDispatch(ctx); err != nil {
		return services.Reconciliation{}, err
	}

	if err := checkVehiclesStillExist(ctx, uow.VehicleRepository(), rec); err != nil {
		return services.Reconciliation{}, err
	}

	orderRepo := uow.OrderRepository()
	routeRepo := uow.RouteRepository()

	rec, err := h.withoutDeletedOrders(ctx, orderRepo, scope, vehicles, p, rec)
	if err != nil {
		return services.Reconciliation{}, err
	}

	if err = orderRepo.UnassignAll(ctx); err != nil {
		return services.Reconciliation{}, fmt.Errorf("clear order assignment: %w", err)
	}
	if err = routeRepo.DeleteAll(ctx); err != nil {
		return services.Reconciliation{}, fmt.Errorf("clear routes: %w", err)
	}

	for _, r := range rec.Routes {
		if err = routeRepo.Add(ctx, r); err != nil {
			return services.Reconciliation{}, fmt.Errorf("add route %s: %w", r.ID(), err)
		}
	}

	for _, o := range rec.Orders {
		if o.RouteID() == nil {
			continue
		}
		if err = orderRepo.Update(ctx, o); err != nil {
			return services.Reconciliation{}, fmt.Errorf("assign order %s: %w", o.ID(), err)
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return services.Reconciliation{}, err
	}
	return rec, nil
}

// withoutDeletedOrders re-applies the plan to the snapshot orders that still
// exist. Stops naming a deleted order are then reported as unknown orders.
func (h *ReconcileRoutesCommandHandler) withoutDeletedOrders(
	ctx context.Context,
	repo ports.OrderRepository,
	scope tenant.Scope,
	vehicles []*vehicle.Vehicle,
	p plan.Plan,
	rec services.Reconciliation,
) (services.Reconciliation, error) {
	current, err := repo.List(ctx)
	if err != nil {
		return services.Reconciliation{}, fmt.Errorf("reload orders: %w", err)
	}

	alive := make(map[kernel.UUID]struct{}, len(current))
	for _, o := range current {
		alive[o.ID()] = struct{}{}
	}

	kept := make([]*order.Order, 0, len(rec.Orders))
	for _, o := range rec.Orders {
		if _, ok := alive[o.ID()]; ok {
			kept = append(kept, o)
		}
	}
	if len(kept) == len(rec.Orders) {
		return rec, nil
	}

	h.logger.WarnContext(ctx, "orders deleted during reconciliation",
		"organization", scope.String(),
		"deleted", len(rec.Orders)-len(kept),
	)
	return h.reconciler.Reconcile(scope, kept, vehicles, p)
}

// checkVehiclesStillExist guards against a vehicle deleted while the solver was running.
func checkVehiclesStillExist(
	ctx context.Context,
	repo ports.VehicleRepository,
	rec services.Reconciliation,
) error {
	if len(rec.Routes) == 0 {
		return nil
	}

	current, err := repo.List(ctx)
	if err != nil {
		return err
	}

	alive := make(map[kernel.UUID]struct{}, len(current))
	for _, v := range current {
		alive[v.ID()] = struct{}{}
	}

	for _, r := range rec.Routes {
		if r.VehicleID() == nil {
			continue
		}
		if _, ok := alive[*r.VehicleID()]; !ok {
			return fmt.Errorf("%w: %s", ErrVehicleRemovedDuringRun, r.VehicleID())
		}
	}
	return nil
}

func buildResult(rec services.Reconciliation) ReconcileRoutesResult {
	byID := make(map[kernel.UUID]*order.Order, len(rec.Orders))
	for _, o := range rec.Orders {
		byID[o.ID()] = o
	}

	result := ReconcileRoutesResult{
		Routes:  make([]PlannedRoute, 0, len(rec.Routes)),
		Skipped: rec.Skipped,
	}
	for _, r := range rec.Routes {
		planned := PlannedRoute{Route: r, Stops: make([]*order.Order, 0, len(r.Stops()))}
		for _, id := range r.Stops() {
			planned.Stops = append(planned.Stops, byID[id])
		}
		result.Routes = append(result.Routes, planned)
	}
	return result
}
