package memory

import (
	"context"

	"github.com/tallermunicipal/inventario-api/internal/domain/entity"
	"github.com/tallermunicipal/inventario-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo usuarios en memoria. El username es único sin importar el estado.
type UserRepo struct{ t *table[entity.User] }

func (r *UserRepo) Create(_ context.Context, u *entity.User) error {
	return r.t.insert(u.ID, *u, func(e, n *entity.User) bool { return sameName(e.Username, n.Username) })
}

func (r *UserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, _ := r.t.get(id)
	return u, nil
}

func (r *UserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	return r.t.first(func(u *entity.User) bool { return sameName(u.Username, username) }), nil
}
