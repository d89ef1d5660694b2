package controller

import (
	"thesistrack_backend/internal/service"
	"thesistrack_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type PanelController struct {
	PanelService *service.PanelService
}

func NewPanelController(panelService *service.PanelService) *PanelController {
	return &PanelController{PanelService: panelService}
}

// Assign godoc
// @Summary Assign a lecturer to a panel role for a student
// @Description At most one assignee per role; re-assignment replaces the previous one, whose ID is returned.
// @Tags panels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "student record ID"
// @Param body body service.AssignPanelRequest true "assignment"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/v1/students/{id}/panel [post]
func (c *PanelController) Assign(ctx *gin.Context) {
	var req service.AssignPanelRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	assignment, previous, err := c.PanelService.Assign(util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"assignment": assignment, "replacedAssigneeId": previous})
}

// List godoc
// @Summary List a student's panel
// @Tags panels
// @Produce json
// @Security BearerAuth
// @Param id path int true "student record ID"
// @Success 200 {object} util.Response{data=[]model.PanelAssignment}
// @Router /api/v1/students/{id}/panel [get]
func (c *PanelController) List(ctx *gin.Context) {
	assignments, err := c.PanelService.ListForStudent(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, assignments)
}

// MyAssignments godoc
// @Summary Panels the calling lecturer sits on
// @Tags panels
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.PanelAssignment}
// @Router /api/v1/panels/mine [get]
func (c *PanelController) MyAssignments(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	assignments, err := c.PanelService.ListForAssignee(claims.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, assignments)
}

// Remove godoc
// @Summary Remove a panel role assignment
// @Tags panels
// @Produce json
// @Security BearerAuth
// @Param id path int true "student record ID"
// @Param role path string true "panel role"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/v1/students/{id}/panel/{role} [delete]
func (c *PanelController) Remove(ctx *gin.Context) {
	if err := c.PanelService.Remove(util.MustParseUint(ctx.Param("id")), ctx.Param("role")); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
