package queries

import (
	"fleetdispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

func optionalUUID(raw uuid.NullUUID) (*kernel.UUID, error) {
	if !raw.Valid {
		return nil, nil
	}
	id, err := kernel.UUIDFromGoogle(raw.UUID)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
