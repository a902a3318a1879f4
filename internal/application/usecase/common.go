package usecase

import (
	"fmt"
	"strings"

	"github.com/tallermunicipal/inventario-api/internal/domain"
	"github.com/tallermunicipal/inventario-api/internal/domain/entity"
	"github.com/tallermunicipal/inventario-api/internal/domain/repository"
)

// ListStatusAll valor de ?status que lista todos los estados.
const ListStatusAll = "ALL"

// ParseListFilter traduce ?status: vacío = solo activos, ALL = todos.
func ParseListFilter(status string) (repository.ListFilter, error) {
	s := strings.ToUpper(strings.TrimSpace(status))
	switch s {
	case "":
		return repository.ListFilter{Status: entity.StatusActive}, nil
	case ListStatusAll:
		return repository.ListFilter{}, nil
	}
	st, ok := entity.ParseStatus(s)
	if !ok {
		return repository.ListFilter{}, fmt.Errorf("%w: estado %q desconocido", domain.ErrInvalidInput, status)
	}
	return repository.ListFilter{Status: st}, nil
}

func required(field, value string) (string, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return "", fmt.Errorf("%w: %s es obligatorio", domain.ErrInvalidInput, field)
	}
	return v, nil
}

func notFound(kind, id string) error {
	return fmt.Errorf("%w: %s %s", domain.ErrNotFound, kind, id)
}

func duplicate(kind, value string) error {
	return fmt.Errorf("%w: ya existe %s activo con nombre %q", domain.ErrDuplicate, kind, value)
}
