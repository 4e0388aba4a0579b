package application

import (
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-usergroup/internal/domain/entity"
	repo "github.com/oksasatya/go-ddd-usergroup/internal/domain/repository"
)

// UserFinder and GroupFinder are the lookups the association service needs
// from the user and group services.
type UserFinder interface {
	GetByID(id string) (*entity.User, error)
}

type GroupFinder interface {
	GetByID(id string) (*entity.Group, error)
}

type UserGroupService struct {
	Repo   repo.UserGroupRepository
	Users  UserFinder
	Groups GroupFinder
	Logger *logrus.Logger
}

func NewUserGroupService(repo repo.UserGroupRepository, users UserFinder, groups GroupFinder, logger *logrus.Logger) *UserGroupService {
	return &UserGroupService{Repo: repo, Users: users, Groups: groups, Logger: logger}
}

// Create associates an existing user with an existing group. Both ids are
// parsed first, then both entities are looked up, and only then is the
// association stored. Lookup errors are returned unchanged.
//
// The existence checks and the insert run under different store locks, so a
// user or group deleted in between leaves a dangling association. Deletes do
// not cascade either; both gaps are accepted.
func (s *UserGroupService) Create(userID, groupID string) (*entity.UserGroup, error) {
	ug, err := entity.NewUserGroup(userID, groupID)
	if err != nil {
		return nil, err
	}
	if _, err := s.Users.GetByID(ug.UserID.String()); err != nil {
		return nil, err
	}
	if _, err := s.Groups.GetByID(ug.GroupID.String()); err != nil {
		return nil, err
	}
	created, err := s.Repo.Create(ug)
	if err != nil {
		logFailure(s.Logger, err, "create user group", logrus.Fields{"user_group_id": ug.ID.String()})
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{
			"user_group_id": created.ID.String(),
			"user_id":       created.UserID.String(),
			"group_id":      created.GroupID.String(),
		}).Debug("user added to group")
	}
	return created, nil
}

func (s *UserGroupService) GetByID(id string) (*entity.UserGroup, error) {
	id, err := canonicalID(id, "id")
	if err != nil {
		return nil, err
	}
	ug, err := s.Repo.GetByID(id)
	if err != nil {
		logFailure(s.Logger, err, "get user group", logrus.Fields{"user_group_id": id})
		return nil, err
	}
	return ug, nil
}

func (s *UserGroupService) GetByUserID(userID string) ([]*entity.UserGroup, error) {
	userID, err := canonicalID(userID, "user_id")
	if err != nil {
		return nil, err
	}
	ugs, err := s.Repo.GetByUserID(userID)
	if err != nil {
		logFailure(s.Logger, err, "list groups of user", logrus.Fields{"user_id": userID})
		return nil, err
	}
	return ugs, nil
}

func (s *UserGroupService) GetByGroupID(groupID string) ([]*entity.UserGroup, error) {
	groupID, err := canonicalID(groupID, "group_id")
	if err != nil {
		return nil, err
	}
	ugs, err := s.Repo.GetByGroupID(groupID)
	if err != nil {
		logFailure(s.Logger, err, "list users of group", logrus.Fields{"group_id": groupID})
		return nil, err
	}
	return ugs, nil
}

func (s *UserGroupService) GetAll() ([]*entity.UserGroup, error) {
	ugs, err := s.Repo.GetAll()
	if err != nil {
		logFailure(s.Logger, err, "list user groups", nil)
		return nil, err
	}
	return ugs, nil
}

// Update replaces the association wholesale. Referenced ids are not
// re-checked.
func (s *UserGroupService) Update(ug *entity.UserGroup) (*entity.UserGroup, error) {
	updated, err := s.Repo.Update(ug)
	if err != nil {
		logFailure(s.Logger, err, "update user group", logrus.Fields{"user_group_id": ug.ID.String()})
		return nil, err
	}
	return updated, nil
}

func (s *UserGroupService) Delete(id string) error {
	id, err := canonicalID(id, "id")
	if err != nil {
		return err
	}
	if err := s.Repo.Delete(id); err != nil {
		logFailure(s.Logger, err, "delete user group", logrus.Fields{"user_group_id": id})
		return err
	}
	return nil
}
