package memory

import (
	"github.com/oksasatya/go-ddd-usergroup/internal/domain/entity"
	"github.com/oksasatya/go-ddd-usergroup/internal/domain/repository"
)

type UserGroupRepository struct {
	store *Store[entity.UserGroup]
}

func NewUserGroupRepository() *UserGroupRepository {
	return &UserGroupRepository{
		store: NewStore("user group", func(ug entity.UserGroup) string { return ug.ID.String() }),
	}
}

func (r *UserGroupRepository) Create(ug *entity.UserGroup) (*entity.UserGroup, error) {
	stored, err := r.store.Create(*ug)
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

func (r *UserGroupRepository) GetByID(id string) (*entity.UserGroup, error) {
	ug, err := r.store.Get(id)
	if err != nil {
		return nil, err
	}
	return &ug, nil
}

func (r *UserGroupRepository) GetByUserID(userID string) ([]*entity.UserGroup, error) {
	return r.filter(func(ug entity.UserGroup) bool { return ug.UserID.String() == userID })
}

func (r *UserGroupRepository) GetByGroupID(groupID string) ([]*entity.UserGroup, error) {
	return r.filter(func(ug entity.UserGroup) bool { return ug.GroupID.String() == groupID })
}

func (r *UserGroupRepository) filter(pred func(entity.UserGroup) bool) ([]*entity.UserGroup, error) {
	matches, err := r.store.Filter(pred)
	if err != nil {
		return nil, err
	}
	return pointers(matches), nil
}

func (r *UserGroupRepository) GetAll() ([]*entity.UserGroup, error) {
	all, err := r.store.List()
	if err != nil {
		return nil, err
	}
	return pointers(all), nil
}

func (r *UserGroupRepository) Update(ug *entity.UserGroup) (*entity.UserGroup, error) {
	stored, err := r.store.Update(*ug)
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

func (r *UserGroupRepository) Delete(id string) error {
	return r.store.Delete(id)
}

func (r *UserGroupRepository) Count() (int, error) {
	return r.store.Len()
}

var _ repository.UserGroupRepository = (*UserGroupRepository)(nil)
