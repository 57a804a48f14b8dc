package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/fastygo/tasks/domain"
)

func TestMapError(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "08006", Message: "connection failure"}

	tests := []struct {
		name     string
		err      error
		wantCode domain.ErrorCode
	}{
		{name: "no rows", err: pgx.ErrNoRows, wantCode: domain.ErrCodeNotFound},
		{name: "wrapped no rows", err: fmt.Errorf("scan: %w", pgx.ErrNoRows), wantCode: domain.ErrCodeNotFound},
		{name: "postgres error", err: pgErr, wantCode: domain.ErrCodeInternal},
		{name: "network error", err: errors.New("dial tcp: connection refused"), wantCode: domain.ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapError("toggle task", tt.err)
			assert.Equal(t, tt.wantCode, domain.CodeOf(got))
		})
	}
}

func TestMapErrorNil(t *testing.T) {
	assert.NoError(t, mapError("list tasks", nil))
}

func TestMapErrorKeepsCause(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23502", Message: "null value in column \"name\""}

	err := mapError("create task", pgErr)

	assert.ErrorIs(t, err, pgErr)
	assert.Equal(t, "23502", SQLState(err))
	assert.Empty(t, SQLState(errors.New("plain")))
}
