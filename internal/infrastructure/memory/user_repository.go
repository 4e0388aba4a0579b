package memory

import (
	"github.com/oksasatya/go-ddd-usergroup/internal/domain/entity"
	"github.com/oksasatya/go-ddd-usergroup/internal/domain/repository"
)

type UserRepository struct {
	store *Store[entity.User]
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		store: NewStore("user", func(u entity.User) string { return u.ID.String() }),
	}
}

func (r *UserRepository) Create(u *entity.User) (*entity.User, error) {
	stored, err := r.store.Create(*u)
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

func (r *UserRepository) GetByID(id string) (*entity.User, error) {
	u, err := r.store.Get(id)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByEmail is an exact, case-sensitive match. Uniqueness of emails is not
// enforced, so with duplicates any one of them may be returned.
func (r *UserRepository) GetByEmail(email string) (*entity.User, error) {
	u, err := r.store.Find(func(u entity.User) bool { return u.Email.String() == email })
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetAll() ([]*entity.User, error) {
	users, err := r.store.List()
	if err != nil {
		return nil, err
	}
	return pointers(users), nil
}

func (r *UserRepository) Update(u *entity.User) (*entity.User, error) {
	stored, err := r.store.Update(*u)
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

func (r *UserRepository) Delete(id string) error {
	return r.store.Delete(id)
}

func (r *UserRepository) Count() (int, error) {
	return r.store.Len()
}

// pointers hands out one fresh copy per element.
func pointers[T any](vs []T) []*T {
	out := make([]*T, len(vs))
	for i := range vs {
		out[i] = &vs[i]
	}
	return out
}

var _ repository.UserRepository = (*UserRepository)(nil)
