package application

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-usergroup/internal/domain/entity"
	repo "github.com/oksasatya/go-ddd-usergroup/internal/domain/repository"
)

// UserService is the only entry point to user storage for callers outside
// the data layer. It adds nothing beyond delegation and logging.
type UserService struct {
	Repo   repo.UserRepository
	Logger *logrus.Logger
}

func NewUserService(repo repo.UserRepository, logger *logrus.Logger) *UserService {
	return &UserService{Repo: repo, Logger: logger}
}

func (s *UserService) Create(u *entity.User) (*entity.User, error) {
	created, err := s.Repo.Create(u)
	if err != nil {
		logFailure(s.Logger, err, "create user", logrus.Fields{"user_id": u.ID.String()})
		return nil, err
	}
	return created, nil
}

func (s *UserService) GetByID(id string) (*entity.User, error) {
	id, err := canonicalID(id, "id")
	if err != nil {
		return nil, err
	}
	u, err := s.Repo.GetByID(id)
	if err != nil {
		logFailure(s.Logger, err, "get user", logrus.Fields{"user_id": id})
		return nil, err
	}
	return u, nil
}

func (s *UserService) GetByEmail(email string) (*entity.User, error) {
	u, err := s.Repo.GetByEmail(email)
	if err != nil {
		logFailure(s.Logger, err, "get user by email", logrus.Fields{"email": email})
		return nil, err
	}
	return u, nil
}

func (s *UserService) GetAll() ([]*entity.User, error) {
	users, err := s.Repo.GetAll()
	if err != nil {
		logFailure(s.Logger, err, "list users", nil)
		return nil, err
	}
	return users, nil
}

func (s *UserService) Update(u *entity.User) (*entity.User, error) {
	updated, err := s.Repo.Update(u)
	if err != nil {
		logFailure(s.Logger, err, "update user", logrus.Fields{"user_id": u.ID.String()})
		return nil, err
	}
	return updated, nil
}

func (s *UserService) Delete(id string) error {
	id, err := canonicalID(id, "id")
	if err != nil {
		return err
	}
	if err := s.Repo.Delete(id); err != nil {
		logFailure(s.Logger, err, "delete user", logrus.Fields{"user_id": id})
		return err
	}
	return nil
}

// logFailure logs lock faults as errors and business outcomes at debug level.
func logFailure(logger *logrus.Logger, err error, op string, fields logrus.Fields) {
	if logger == nil {
		return
	}
	entry := logger.WithError(err).WithFields(fields).WithField("op", op)
	if errors.Is(err, repo.ErrLock) {
		entry.Error("store unavailable")
		return
	}
	entry.Debug(op + " failed")
}
