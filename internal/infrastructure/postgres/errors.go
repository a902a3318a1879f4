package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/tallermunicipal/inventario-api/internal/domain"
)

// Códigos SQLSTATE que se traducen a errores de dominio.
const (
	sqlStateUniqueViolation      = "23505"
	sqlStateForeignKeyViolation  = "23503"
	sqlStateCheckViolation       = "23514"
	sqlStateLockNotAvailable     = "55P03"
	sqlStateSerializationFailure = "40001"
	sqlStateDeadlockDetected     = "40P01"
)

// mapError envuelve err con op y, si es un error conocido de PostgreSQL, con el error de dominio.
func mapError(op string, err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return fmt.Errorf("%s: %w", op, err)
	}
	switch pgErr.Code {
	case sqlStateUniqueViolation:
		return fmt.Errorf("%w: %s (%s)", domain.ErrDuplicate, op, pgErr.ConstraintName)
	case sqlStateForeignKeyViolation:
		return fmt.Errorf("%w: %s (%s)", domain.ErrNotFound, op, pgErr.ConstraintName)
	case sqlStateCheckViolation:
		return fmt.Errorf("%w: %s (%s)", domain.ErrInvalidInput, op, pgErr.ConstraintName)
	case sqlStateLockNotAvailable, sqlStateSerializationFailure, sqlStateDeadlockDetected:
		return fmt.Errorf("%w: %s", domain.ErrConflict, op)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == sqlStateUniqueViolation
}
