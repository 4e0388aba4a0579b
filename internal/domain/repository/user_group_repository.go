package repository

import "github.com/oksasatya/go-ddd-usergroup/internal/domain/entity"

// UserGroupRepository stores user/group associations. GetByUserID and
// GetByGroupID return every match and an empty slice when there is none.
type UserGroupRepository interface {
	Create(ug *entity.UserGroup) (*entity.UserGroup, error)
	GetByID(id string) (*entity.UserGroup, error)
	GetByUserID(userID string) ([]*entity.UserGroup, error)
	GetByGroupID(groupID string) ([]*entity.UserGroup, error)
	GetAll() ([]*entity.UserGroup, error)
	Update(ug *entity.UserGroup) (*entity.UserGroup, error)
	Delete(id string) error
}
