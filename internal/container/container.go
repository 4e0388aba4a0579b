// Package container builds the application's dependency graph once at
// startup. Nothing here is global: callers hold the *Container and pass its
// parts down.
package container

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-usergroup/config"
	"github.com/oksasatya/go-ddd-usergroup/internal/application"
	"github.com/oksasatya/go-ddd-usergroup/internal/infrastructure/memory"
)

type Container struct {
	Config  *config.Config
	Logger  *logrus.Logger
	Redis   *redis.Client // nil when rate limiting is off
	Metrics *prometheus.Registry

	UserRepo      *memory.UserRepository
	GroupRepo     *memory.GroupRepository
	UserGroupRepo *memory.UserGroupRepository

	Users      *application.UserService
	Groups     *application.GroupService
	UserGroups *application.UserGroupService
}

// New wires one store per entity type and the services over them.
func New(cfg *config.Config, logger *logrus.Logger, rdb *redis.Client) *Container {
	c := &Container{
		Config:        cfg,
		Logger:        logger,
		Redis:         rdb,
		Metrics:       prometheus.NewRegistry(),
		UserRepo:      memory.NewUserRepository(),
		GroupRepo:     memory.NewGroupRepository(),
		UserGroupRepo: memory.NewUserGroupRepository(),
	}
	c.Users = application.NewUserService(c.UserRepo, logger)
	c.Groups = application.NewGroupService(c.GroupRepo, logger)
	c.UserGroups = application.NewUserGroupService(c.UserGroupRepo, c.Users, c.Groups, logger)

	c.Metrics.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		newStoreCollector(logger, map[string]counter{
			"user":       c.UserRepo,
			"group":      c.GroupRepo,
			"user_group": c.UserGroupRepo,
		}),
	)
	return c
}
