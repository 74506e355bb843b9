// Package services provides the domain services of dispatch: logic that spans
// several aggregates and so belongs to none of them.
//
// The package includes:
//   - RouteReconciler: turns a solver plan into routes and order assignments, in memory
//   - ETAEstimator: estimates the remaining time of a driver's route
//
// Neither service persists anything. Callers load a snapshot, run the service and
// write the mutated aggregates back in one unit of work.
package services
