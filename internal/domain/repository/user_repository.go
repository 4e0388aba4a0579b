package repository

import "github.com/oksasatya/go-ddd-usergroup/internal/domain/entity"

// UserRepository defines the storage contract for users.
// Returned entities are copies owned by the caller.
type UserRepository interface {
	Create(u *entity.User) (*entity.User, error)
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	GetAll() ([]*entity.User, error)
	Update(u *entity.User) (*entity.User, error)
	Delete(id string) error
}
