package application

import (
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-usergroup/internal/domain/entity"
	repo "github.com/oksasatya/go-ddd-usergroup/internal/domain/repository"
)

type GroupService struct {
	Repo   repo.GroupRepository
	Logger *logrus.Logger
}

func NewGroupService(repo repo.GroupRepository, logger *logrus.Logger) *GroupService {
	return &GroupService{Repo: repo, Logger: logger}
}

func (s *GroupService) Create(g *entity.Group) (*entity.Group, error) {
	created, err := s.Repo.Create(g)
	if err != nil {
		logFailure(s.Logger, err, "create group", logrus.Fields{"group_id": g.ID.String()})
		return nil, err
	}
	return created, nil
}

func (s *GroupService) GetByID(id string) (*entity.Group, error) {
	id, err := canonicalID(id, "id")
	if err != nil {
		return nil, err
	}
	g, err := s.Repo.GetByID(id)
	if err != nil {
		logFailure(s.Logger, err, "get group", logrus.Fields{"group_id": id})
		return nil, err
	}
	return g, nil
}

func (s *GroupService) GetByName(name string) (*entity.Group, error) {
	g, err := s.Repo.GetByName(name)
	if err != nil {
		logFailure(s.Logger, err, "get group by name", logrus.Fields{"name": name})
		return nil, err
	}
	return g, nil
}

func (s *GroupService) GetByDescription(description string) (*entity.Group, error) {
	g, err := s.Repo.GetByDescription(description)
	if err != nil {
		logFailure(s.Logger, err, "get group by description", logrus.Fields{"description": description})
		return nil, err
	}
	return g, nil
}

func (s *GroupService) GetAll() ([]*entity.Group, error) {
	groups, err := s.Repo.GetAll()
	if err != nil {
		logFailure(s.Logger, err, "list groups", nil)
		return nil, err
	}
	return groups, nil
}

func (s *GroupService) Update(g *entity.Group) (*entity.Group, error) {
	updated, err := s.Repo.Update(g)
	if err != nil {
		logFailure(s.Logger, err, "update group", logrus.Fields{"group_id": g.ID.String()})
		return nil, err
	}
	return updated, nil
}

func (s *GroupService) Delete(id string) error {
	id, err := canonicalID(id, "id")
	if err != nil {
		return err
	}
	if err := s.Repo.Delete(id); err != nil {
		logFailure(s.Logger, err, "delete group", logrus.Fields{"group_id": id})
		return err
	}
	return nil
}
