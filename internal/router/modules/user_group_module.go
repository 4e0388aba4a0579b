package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-ddd-usergroup/internal/interface/http"
)

type UserGroupModule struct {
	Handler *handlers.UserGroupHandler
}

func NewUserGroupModule(h *handlers.UserGroupHandler) *UserGroupModule {
	return &UserGroupModule{Handler: h}
}

func (m *UserGroupModule) Register(rg *gin.RouterGroup) {
	ug := rg.Group("/user-groups")
	{
		ug.POST("", m.Handler.Create)
		ug.GET("", m.Handler.List)
		ug.GET("/:id", m.Handler.Get)
		ug.PUT("/:id", m.Handler.Update)
		ug.DELETE("/:id", m.Handler.Delete)
	}
}
