package repository

import "github.com/oksasatya/go-ddd-usergroup/internal/domain/entity"

type GroupRepository interface {
	Create(g *entity.Group) (*entity.Group, error)
	GetByID(id string) (*entity.Group, error)
	GetByName(name string) (*entity.Group, error)
	GetByDescription(description string) (*entity.Group, error)
	GetAll() ([]*entity.Group, error)
	Update(g *entity.Group) (*entity.Group, error)
	Delete(id string) error
}
