package controller

import (
	"thesistrack_backend/internal/service"
	"thesistrack_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type NotificationController struct {
	NotificationService *service.NotificationService
}

func NewNotificationController(notificationService *service.NotificationService) *NotificationController {
	return &NotificationController{NotificationService: notificationService}
}

// List godoc
// @Summary The caller's notifications
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param page query int false "page"
// @Param limit query int false "page size"
// @Param unread query bool false "only unread"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/v1/notifications [get]
func (c *NotificationController) List(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	page, limit := util.ParsePagination(ctx.Query("page"), ctx.Query("limit"))
	notifications, total, err := c.NotificationService.List(claims.UserID, page, limit, ctx.Query("unread") == "true")
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: notifications, Total: total, Page: page, Limit: limit})
}

// UnreadCount godoc
// @Summary The caller's unread notification count
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/v1/notifications/unread [get]
func (c *NotificationController) UnreadCount(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	count, err := c.NotificationService.UnreadCount(ctx.Request.Context(), claims.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"unread": count})
}

// MarkRead godoc
// @Summary Mark one notification read
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param id path int true "notification ID"
// @Success 200 {object} util.Response
// @Router /api/v1/notifications/{id}/read [put]
func (c *NotificationController) MarkRead(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.NotificationService.MarkRead(claims.UserID, util.MustParseUint(ctx.Param("id"))); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// MarkAllRead godoc
// @Summary Mark all of the caller's notifications read
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/v1/notifications/read-all [put]
func (c *NotificationController) MarkAllRead(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.NotificationService.MarkAllRead(claims.UserID); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
