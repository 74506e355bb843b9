// Package pgerrs translates postgres driver errors into the errs taxonomy.
package pgerrs

import (
	"errors"

	"fleetdispatch/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

// Translate maps a unique violation to errs.ErrValueIsInvalid for paramName.
// Any other error is returned unchanged.
func Translate(err error, paramName string) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}

	return err
}
