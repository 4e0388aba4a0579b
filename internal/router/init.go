package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-ddd-usergroup/internal/container"
	handlers "github.com/oksasatya/go-ddd-usergroup/internal/interface/http"
	"github.com/oksasatya/go-ddd-usergroup/internal/interface/middleware"
	"github.com/oksasatya/go-ddd-usergroup/internal/router/modules"
)

// InitModules registers every feature module with the registry.
func InitModules(r *Registry, c *container.Container) {
	users := handlers.NewUserHandler(c.Users, c.UserGroups, c.Logger)
	groups := handlers.NewGroupHandler(c.Groups, c.UserGroups, c.Logger)
	userGroups := handlers.NewUserGroupHandler(c.UserGroups, c.Logger)

	r.Add(modules.NewSystemModule(c.Metrics, c.Config.DebugMetricsEnabled))
	r.Add(modules.NewUserModule(users))
	r.Add(modules.NewGroupModule(groups))
	r.Add(modules.NewUserGroupModule(userGroups))
}

// New builds the full HTTP engine for c: global middleware, /api
// middleware and all modules.
func New(c *container.Container) *gin.Engine {
	cfg := c.Config

	engine := gin.New()
	engine.Use(gin.Recovery(), middleware.RequestIDMiddleware(), middleware.RealIP())
	if origins := cfg.CORSOrigins(); len(origins) > 0 {
		engine.Use(cors.New(cors.Config{
			AllowOrigins:     origins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
			ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}
	if cfg.HTTPLogEnabled {
		engine.Use(middleware.AccessLog(c.Logger))
	}
	engine.Use(middleware.NewHTTPMetrics(c.Metrics, "usergroup").Handler())

	reg := NewRegistry(engine)
	if c.Redis != nil {
		reg.Use(middleware.RateLimit(
			c.Redis,
			c.Logger,
			cfg.RateLimitMax,
			cfg.RateLimitWindow,
			middleware.KeyByIP(),
			middleware.AllowPaths("/api/healthz", "/api/metrics"),
		))
	}
	InitModules(reg, c)
	reg.RegisterAll()
	return engine
}
