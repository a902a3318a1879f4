package postgres

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/tallermunicipal/inventario-api/internal/domain"
)

func TestMapError_TraduceSQLState(t *testing.T) {
	cases := map[string]error{
		"23505": domain.ErrDuplicate,
		"23503": domain.ErrNotFound,
		"23514": domain.ErrInvalidInput,
		"55P03": domain.ErrConflict,
		"40001": domain.ErrConflict,
		"40P01": domain.ErrConflict,
	}
	for code, want := range cases {
		err := mapError("insert", &pgconn.PgError{Code: code})
		assert.ErrorIs(t, err, want, code)
	}

	plain := errors.New("conexión cerrada")
	err := mapError("insert", plain)
	assert.ErrorIs(t, err, plain)
	assert.Equal(t, "insert: conexión cerrada", err.Error())

	assert.NoError(t, mapError("x", nil))
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isUniqueViolation(plain))
}

func TestStockLockKey_EstablePorPar(t *testing.T) {
	assert.Equal(t, "stock:p1:w1", stockLockKey("p1", "w1"))
	assert.NotEqual(t, stockLockKey("p1", "w1"), stockLockKey("w1", "p1"))
}
