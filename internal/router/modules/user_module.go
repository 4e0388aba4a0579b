package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-ddd-usergroup/internal/interface/http"
)

// UserModule mounts the user routes:
// POST /users, GET /users, GET /users/lookup?email=, GET|PUT|DELETE /users/:id,
// GET /users/:id/groups
type UserModule struct {
	Handler *handlers.UserHandler
}

func NewUserModule(h *handlers.UserHandler) *UserModule {
	return &UserModule{Handler: h}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	{
		users.POST("", m.Handler.Create)
		users.GET("", m.Handler.List)
		users.GET("/lookup", m.Handler.Lookup)
		users.GET("/:id", m.Handler.Get)
		users.PUT("/:id", m.Handler.Update)
		users.DELETE("/:id", m.Handler.Delete)
		users.GET("/:id/groups", m.Handler.Groups)
	}
}
