// Package membershiprepo stores which organization an authenticated subject
// belongs to.
package membershiprepo

import (
	"context"
	"errors"
	"strings"
	"time"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MembershipDTO binds a subject to exactly one organization.
type MembershipDTO struct {
	Subject        string    `gorm:"primaryKey"`
	OrganizationID uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt      time.Time
}

func (MembershipDTO) TableName() string {
	return "memberships"
}

// GormMembershipRepository is the organization directory backed by postgres.
type GormMembershipRepository struct {
	db *gorm.DB
}

func NewGormMembershipRepository(db *gorm.DB) *GormMembershipRepository {
	return &GormMembershipRepository{db: db}
}

func (r *GormMembershipRepository) FindOrganization(ctx context.Context, subject string) (kernel.UUID, error) {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return kernel.UUID{}, errs.ErrUnauthenticated
	}

	var dto MembershipDTO
	if err := r.db.WithContext(ctx).First(&dto, "subject = ?", subject).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return kernel.UUID{}, errs.ErrNoOrganization
		}
		return kernel.UUID{}, err
	}

	return kernel.UUIDFromGoogle(dto.OrganizationID)
}

// BindOrganization inserts the membership unless one exists and re-reads it,
// so concurrent first requests of one subject agree on a single organization.
func (r *GormMembershipRepository) BindOrganization(
	ctx context.Context,
	subject string,
	orgID kernel.UUID,
) (kernel.UUID, error) {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return kernel.UUID{}, errs.ErrUnauthenticated
	}
	if err := orgID.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	dto := MembershipDTO{Subject: subject, OrganizationID: orgID.Bytes()}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "subject"}}, DoNothing: true}).
		Create(&dto).Error
	if err != nil {
		return kernel.UUID{}, err
	}

	return r.FindOrganization(ctx, subject)
}
