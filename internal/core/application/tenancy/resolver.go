package tenancy

import (
	"context"
	"errors"
	"log/slog"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/tenant"
	"fleetdispatch/internal/core/ports"
	"fleetdispatch/internal/pkg/errs"
)

// Resolver maps the caller on the context to its organization.
type Resolver struct {
	directory ports.OrganizationDirectory
	newOrgID  func() kernel.UUID
	logger    *slog.Logger
}

func NewResolver(directory ports.OrganizationDirectory, logger *slog.Logger) *Resolver {
	return &Resolver{
		directory: directory,
		newOrgID:  kernel.NewUUID,
		logger:    logger.With("component", "tenancy"),
	}
}

// CurrentOrganization fails with errs.ErrUnauthenticated when the context has
// no caller and with errs.ErrNoOrganization when the caller is not bound yet.
func (r *Resolver) CurrentOrganization(ctx context.Context) (tenant.Scope, error) {
	subject, ok := SubjectFrom(ctx)
	if !ok {
		return tenant.Scope{}, errs.ErrUnauthenticated
	}

	orgID, err := r.directory.FindOrganization(ctx, subject)
	if err != nil {
		return tenant.Scope{}, err
	}

	return tenant.NewScope(orgID)
}

// Bootstrap provisions a fresh organization for the caller. When another
// request bound the caller first, that organization is returned instead.
func (r *Resolver) Bootstrap(ctx context.Context) (tenant.Scope, error) {
	subject, ok := SubjectFrom(ctx)
	if !ok {
		return tenant.Scope{}, errs.ErrUnauthenticated
	}

	candidate := r.newOrgID()
	orgID, err := r.directory.BindOrganization(ctx, subject, candidate)
	if err != nil {
		return tenant.Scope{}, err
	}

	if orgID.IsEqual(candidate) {
		r.logger.InfoContext(ctx, "provisioned organization", "subject", subject, "organization", orgID.String())
	}

	return tenant.NewScope(orgID)
}

// Resolve returns the caller's organization, provisioning one on first use.
func (r *Resolver) Resolve(ctx context.Context) (tenant.Scope, error) {
	scope, err := r.CurrentOrganization(ctx)
	if errors.Is(err, errs.ErrNoOrganization) {
		return r.Bootstrap(ctx)
	}
	return scope, err
}
