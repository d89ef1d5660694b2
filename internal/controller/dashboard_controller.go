package controller

import (
	"thesistrack_backend/internal/service"
	"thesistrack_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	DashboardService *service.DashboardService
	AuthService      *service.AuthService
}

func NewDashboardController(dashboardService *service.DashboardService, authService *service.AuthService) *DashboardController {
	return &DashboardController{DashboardService: dashboardService, AuthService: authService}
}

// Overview godoc
// @Summary Staff dashboard
// @Description Stage distribution for the session, students pending the caller's approval gate, and the next week of defenses.
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Param sessionId query int false "session, defaults to all"
// @Success 200 {object} util.Response{data=service.DashboardView}
// @Router /api/v1/dashboard [get]
func (c *DashboardController) Overview(ctx *gin.Context) {
	viewer := c.AuthService.GetCurrentUser(ctx)
	if viewer == nil {
		util.Unauthorized(ctx)
		return
	}

	view, err := c.DashboardService.Overview(ctx.Request.Context(), viewer, util.MustParseUint(ctx.Query("sessionId")))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, view)
}
