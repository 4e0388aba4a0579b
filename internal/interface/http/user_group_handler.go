package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-usergroup/internal/application"
	"github.com/oksasatya/go-ddd-usergroup/internal/domain/entity"
	repo "github.com/oksasatya/go-ddd-usergroup/internal/domain/repository"
	"github.com/oksasatya/go-ddd-usergroup/pkg/response"
)

type UserGroupHandler struct {
	Svc    *application.UserGroupService
	Logger *logrus.Logger
}

func NewUserGroupHandler(svc *application.UserGroupService, logger *logrus.Logger) *UserGroupHandler {
	return &UserGroupHandler{Svc: svc, Logger: logger}
}

type userGroupRequest struct {
	UserID  string `json:"user_id" binding:"required"`
	GroupID string `json:"group_id" binding:"required"`
}

type UserGroupResponse struct {
	ID      string `json:"id"`
	UserID  string `json:"user_id"`
	GroupID string `json:"group_id"`
}

func toUserGroupResponse(ug *entity.UserGroup) UserGroupResponse {
	return UserGroupResponse{ID: ug.ID.String(), UserID: ug.UserID.String(), GroupID: ug.GroupID.String()}
}

func writeUserGroups(c *gin.Context, ugs []*entity.UserGroup) {
	out := make([]UserGroupResponse, 0, len(ugs))
	for _, ug := range ugs {
		out = append(out, toUserGroupResponse(ug))
	}
	response.Success(c, http.StatusOK, out, "user groups", map[string]any{"count": len(out)})
}

func (h *UserGroupHandler) Create(c *gin.Context) {
	var req userGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	created, err := h.Svc.Create(req.UserID, req.GroupID)
	if errors.Is(err, repo.ErrNotFound) {
		// the body named a user or group that does not exist
		response.Error[any](c, http.StatusUnprocessableEntity, "referenced user or group does not exist", err.Error())
		return
	}
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, toUserGroupResponse(created), "user group created", nil)
}

func (h *UserGroupHandler) Get(c *gin.Context) {
	ug, err := h.Svc.GetByID(c.Param("id"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toUserGroupResponse(ug), "user group", nil)
}

func (h *UserGroupHandler) List(c *gin.Context) {
	ugs, err := h.Svc.GetAll()
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	writeUserGroups(c, ugs)
}

// Update replaces the association wholesale; it does not re-check references.
func (h *UserGroupHandler) Update(c *gin.Context) {
	var req userGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	ug, err := entity.RestoreUserGroup(c.Param("id"), req.UserID, req.GroupID)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	updated, err := h.Svc.Update(ug)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toUserGroupResponse(updated), "user group updated", nil)
}

func (h *UserGroupHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Param("id")); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
