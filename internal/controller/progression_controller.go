package controller

import (
	"thesistrack_backend/internal/service"
	"thesistrack_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProgressionController struct {
	ProgressionService *service.ProgressionService
	AuthService        *service.AuthService
}

func NewProgressionController(progressionService *service.ProgressionService, authService *service.AuthService) *ProgressionController {
	return &ProgressionController{ProgressionService: progressionService, AuthService: authService}
}

// Approve godoc
// @Summary Approve a student's current stage
// @Description Records the composite score computed from the panel's submitted scores and marks the stage approved. The caller's role must pass the stage's approval gate. Re-approving an approved stage returns the originally recorded score.
// @Tags progression
// @Produce json
// @Security BearerAuth
// @Param id path int true "student record ID"
// @Success 200 {object} util.Response{data=model.StageApproval}
// @Failure 403 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /api/v1/students/{id}/approve [post]
func (c *ProgressionController) Approve(ctx *gin.Context) {
	actor := c.AuthService.GetCurrentUser(ctx)
	if actor == nil {
		util.Unauthorized(ctx)
		return
	}

	approval, err := c.ProgressionService.Approve(util.MustParseUint(ctx.Param("id")), actor)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, approval)
}

// Advance godoc
// @Summary Move a student to the next stage
// @Description The current stage must already be approved. Advancing past the last stage marks the record completed.
// @Tags progression
// @Produce json
// @Security BearerAuth
// @Param id path int true "student record ID"
// @Success 200 {object} util.Response{data=model.StudentRecord}
// @Failure 409 {object} util.Response
// @Router /api/v1/students/{id}/advance [post]
func (c *ProgressionController) Advance(ctx *gin.Context) {
	actor := c.AuthService.GetCurrentUser(ctx)
	if actor == nil {
		util.Unauthorized(ctx)
		return
	}

	record, err := c.ProgressionService.Advance(util.MustParseUint(ctx.Param("id")), actor)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, record)
}

// Reset godoc
// @Summary Reset a student's progress (admin)
// @Description Rewinds the record to the Start stage and clears its approval history.
// @Tags progression
// @Produce json
// @Security BearerAuth
// @Param id path int true "student record ID"
// @Success 200 {object} util.Response{data=model.StudentRecord}
// @Failure 409 {object} util.Response
// @Router /api/v1/students/{id}/reset [post]
func (c *ProgressionController) Reset(ctx *gin.Context) {
	actor := c.AuthService.GetCurrentUser(ctx)
	if actor == nil {
		util.Unauthorized(ctx)
		return
	}

	record, err := c.ProgressionService.Reset(util.MustParseUint(ctx.Param("id")), actor)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, record)
}
