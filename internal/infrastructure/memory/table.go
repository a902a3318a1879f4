package memory

import (
	"fmt"
	"strings"
	"sync"

	"github.com/tallermunicipal/inventario-api/internal/domain"
)

// table colección en memoria. Guarda copias por valor: nadie fuera del paquete
// puede modificar una fila sin pasar por put.
type table[T any] struct {
	mu    sync.RWMutex
	rows  map[string]T
	order []string
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[string]T)}
}

func (t *table[T]) get(id string) (*T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	row, ok := t.rows[id]
	if !ok {
		return nil, false
	}
	return &row, true
}

func (t *table[T]) getMany(ids []string) map[string]*T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make(map[string]*T, len(ids))
	for _, id := range ids {
		if row, ok := t.rows[id]; ok {
			r := row
			out[id] = &r
		}
	}
	return out
}

// insert agrega una fila nueva. conflict, si no es nil, se evalúa contra cada fila
// existente bajo el mismo lock y devuelve ErrDuplicate si alguna coincide.
func (t *table[T]) insert(id string, row T, conflict func(existing, row *T) bool) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; ok {
		return fmt.Errorf("%w: id %s", domain.ErrDuplicate, id)
	}
	if err := t.checkConflict(id, &row, conflict); err != nil {
		return err
	}
	t.rows[id] = row
	t.order = append(t.order, id)
	return nil
}

// update reemplaza una fila existente; no hace nada si no existe.
func (t *table[T]) update(id string, row T, conflict func(existing, row *T) bool) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; !ok {
		return nil
	}
	if err := t.checkConflict(id, &row, conflict); err != nil {
		return err
	}
	t.rows[id] = row
	return nil
}

func (t *table[T]) checkConflict(id string, row *T, conflict func(existing, row *T) bool) error {
	if conflict == nil {
		return nil
	}
	for otherID, existing := range t.rows {
		if otherID == id {
			continue
		}
		e := existing
		if conflict(&e, row) {
			return fmt.Errorf("%w: ya existe un registro activo con ese valor", domain.ErrDuplicate)
		}
	}
	return nil
}

// filter devuelve copias de las filas que cumplen keep, en orden de inserción.
func (t *table[T]) filter(keep func(*T) bool) []*T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	var out []*T
	for _, id := range t.order {
		row := t.rows[id]
		if keep == nil || keep(&row) {
			r := row
			out = append(out, &r)
		}
	}
	return out
}

func (t *table[T]) first(match func(*T) bool) *T {
	rows := t.filter(match)
	if len(rows) == 0 {
		return nil
	}
	return rows[0]
}

func sameName(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
