package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-ddd-usergroup/internal/interface/http"
)

type GroupModule struct {
	Handler *handlers.GroupHandler
}

func NewGroupModule(h *handlers.GroupHandler) *GroupModule {
	return &GroupModule{Handler: h}
}

func (m *GroupModule) Register(rg *gin.RouterGroup) {
	groups := rg.Group("/groups")
	{
		groups.POST("", m.Handler.Create)
		groups.GET("", m.Handler.List)
		groups.GET("/lookup", m.Handler.Lookup)
		groups.GET("/:id", m.Handler.Get)
		groups.PUT("/:id", m.Handler.Update)
		groups.DELETE("/:id", m.Handler.Delete)
		groups.GET("/:id/users", m.Handler.Users)
	}
}
