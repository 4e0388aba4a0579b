package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-usergroup/internal/application"
	"github.com/oksasatya/go-ddd-usergroup/internal/domain/entity"
	"github.com/oksasatya/go-ddd-usergroup/pkg/response"
)

type GroupHandler struct {
	Svc        *application.GroupService
	Membership *application.UserGroupService
	Logger     *logrus.Logger
}

func NewGroupHandler(svc *application.GroupService, membership *application.UserGroupService, logger *logrus.Logger) *GroupHandler {
	return &GroupHandler{Svc: svc, Membership: membership, Logger: logger}
}

type groupRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
}

type GroupResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func toGroupResponse(g *entity.Group) GroupResponse {
	return GroupResponse{ID: g.ID.String(), Name: g.Name.String(), Description: g.Description.String()}
}

func (h *GroupHandler) Create(c *gin.Context) {
	var req groupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	g, err := entity.NewGroup(req.Name, req.Description)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	created, err := h.Svc.Create(g)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, toGroupResponse(created), "group created", nil)
}

func (h *GroupHandler) Get(c *gin.Context) {
	g, err := h.Svc.GetByID(c.Param("id"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toGroupResponse(g), "group", nil)
}

// Lookup finds a group by ?name= or, failing that, ?description=.
func (h *GroupHandler) Lookup(c *gin.Context) {
	var (
		g   *entity.Group
		err error
	)
	switch {
	case c.Query("name") != "":
		g, err = h.Svc.GetByName(c.Query("name"))
	case c.Query("description") != "":
		g, err = h.Svc.GetByDescription(c.Query("description"))
	default:
		response.Error[any](c, http.StatusBadRequest, "invalid query", map[string]string{"name": "name or description is required"})
		return
	}
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toGroupResponse(g), "group", nil)
}

func (h *GroupHandler) List(c *gin.Context) {
	groups, err := h.Svc.GetAll()
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	out := make([]GroupResponse, 0, len(groups))
	for _, g := range groups {
		out = append(out, toGroupResponse(g))
	}
	response.Success(c, http.StatusOK, out, "groups", map[string]any{"count": len(out)})
}

func (h *GroupHandler) Update(c *gin.Context) {
	var req groupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	g, err := entity.RestoreGroup(c.Param("id"), req.Name, req.Description)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	updated, err := h.Svc.Update(g)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toGroupResponse(updated), "group updated", nil)
}

func (h *GroupHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Param("id")); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Users lists the memberships of a group.
func (h *GroupHandler) Users(c *gin.Context) {
	ugs, err := h.Membership.GetByGroupID(c.Param("id"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	writeUserGroups(c, ugs)
}
