package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-usergroup/internal/application"
	"github.com/oksasatya/go-ddd-usergroup/internal/domain/entity"
	"github.com/oksasatya/go-ddd-usergroup/pkg/response"
)

type UserHandler struct {
	Svc        *application.UserService
	Membership *application.UserGroupService
	Logger     *logrus.Logger
}

func NewUserHandler(svc *application.UserService, membership *application.UserGroupService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Membership: membership, Logger: logger}
}

type userRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
}

type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func toUserResponse(u *entity.User) UserResponse {
	return UserResponse{ID: u.ID.String(), Name: u.Name.String(), Email: u.Email.String()}
}

func (h *UserHandler) Create(c *gin.Context) {
	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	u, err := entity.NewUser(req.Name, req.Email)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	created, err := h.Svc.Create(u)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, toUserResponse(created), "user created", nil)
}

func (h *UserHandler) Get(c *gin.Context) {
	u, err := h.Svc.GetByID(c.Param("id"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toUserResponse(u), "user", nil)
}

// Lookup finds a user by ?email=.
func (h *UserHandler) Lookup(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		response.Error[any](c, http.StatusBadRequest, "invalid query", map[string]string{"email": "is required"})
		return
	}
	u, err := h.Svc.GetByEmail(email)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toUserResponse(u), "user", nil)
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.Svc.GetAll()
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	response.Success(c, http.StatusOK, out, "users", map[string]any{"count": len(out)})
}

// Update replaces every field of the user.
func (h *UserHandler) Update(c *gin.Context) {
	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	u, err := entity.RestoreUser(c.Param("id"), req.Name, req.Email)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	updated, err := h.Svc.Update(u)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toUserResponse(updated), "user updated", nil)
}

func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Param("id")); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Groups lists the memberships of a user.
func (h *UserHandler) Groups(c *gin.Context) {
	ugs, err := h.Membership.GetByUserID(c.Param("id"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	writeUserGroups(c, ugs)
}
