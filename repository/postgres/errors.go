package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/fastygo/tasks/domain"
)

// mapError classifies a driver error. A fetch-one that produced no row
// becomes ErrTaskNotFound; anything else is a backend failure.
func mapError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrTaskNotFound
	}
	return domain.WrapError(domain.ErrCodeInternal, op, err)
}

// SQLState extracts the PostgreSQL error code from err, if any.
func SQLState(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
