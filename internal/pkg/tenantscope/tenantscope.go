// Package tenantscope is the single place where organization filtering is
// attached to gorm statements. Repositories and read queries never write the
// organization predicate themselves.
package tenantscope

import (
	"errors"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/tenant"
	"fleetdispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// Column is carried by every tenant-owned table.
const Column = "organization_id"

// ErrForeignAggregate is returned when an aggregate of another organization is written through a scope.
var ErrForeignAggregate = errs.NewValueIsInvalidErrorWithCause(
	"organizationId", errors.New("aggregate belongs to another organization"))

// Of restricts a statement to the rows of the scope. A scope that was not
// constructed adds an error to the statement instead of matching everything.
func Of(scope tenant.Scope) func(*gorm.DB) *gorm.DB {
	return OfTable("", scope)
}

// OfTable is Of with the column qualified by table, for joined statements.
func OfTable(table string, scope tenant.Scope) func(*gorm.DB) *gorm.DB {
	column := Column
	if table != "" {
		column = table + "." + Column
	}

	return func(db *gorm.DB) *gorm.DB {
		if err := scope.Validate(); err != nil {
			_ = db.AddError(err)
			return db
		}
		return db.Where(column+" = ?", scope.OrgID().Bytes())
	}
}

// Check fails when orgID is not the scope's organization.
func Check(scope tenant.Scope, orgID kernel.UUID) error {
	if err := scope.Validate(); err != nil {
		return err
	}
	if !scope.Owns(orgID) {
		return ErrForeignAggregate
	}
	return nil
}
