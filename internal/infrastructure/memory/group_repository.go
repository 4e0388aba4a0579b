package memory

import (
	"github.com/oksasatya/go-ddd-usergroup/internal/domain/entity"
	"github.com/oksasatya/go-ddd-usergroup/internal/domain/repository"
)

type GroupRepository struct {
	store *Store[entity.Group]
}

func NewGroupRepository() *GroupRepository {
	return &GroupRepository{
		store: NewStore("group", func(g entity.Group) string { return g.ID.String() }),
	}
}

func (r *GroupRepository) Create(g *entity.Group) (*entity.Group, error) {
	stored, err := r.store.Create(*g)
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

func (r *GroupRepository) GetByID(id string) (*entity.Group, error) {
	g, err := r.store.Get(id)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *GroupRepository) GetByName(name string) (*entity.Group, error) {
	return r.find(func(g entity.Group) bool { return g.Name.String() == name })
}

func (r *GroupRepository) GetByDescription(description string) (*entity.Group, error) {
	return r.find(func(g entity.Group) bool { return g.Description.String() == description })
}

func (r *GroupRepository) find(pred func(entity.Group) bool) (*entity.Group, error) {
	g, err := r.store.Find(pred)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *GroupRepository) GetAll() ([]*entity.Group, error) {
	groups, err := r.store.List()
	if err != nil {
		return nil, err
	}
	return pointers(groups), nil
}

func (r *GroupRepository) Update(g *entity.Group) (*entity.Group, error) {
	stored, err := r.store.Update(*g)
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

func (r *GroupRepository) Delete(id string) error {
	return r.store.Delete(id)
}

func (r *GroupRepository) Count() (int, error) {
	return r.store.Len()
}

var _ repository.GroupRepository = (*GroupRepository)(nil)
