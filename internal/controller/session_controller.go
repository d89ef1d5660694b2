package controller

import (
	"thesistrack_backend/internal/service"
	"thesistrack_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SessionController struct {
	SessionService *service.SessionService
}

func NewSessionController(sessionService *service.SessionService) *SessionController {
	return &SessionController{SessionService: sessionService}
}

// Create godoc
// @Summary Create an academic session
// @Tags sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.SessionRequest true "session"
// @Success 201 {object} util.Response{data=model.Session}
// @Router /api/v1/sessions [post]
func (c *SessionController) Create(ctx *gin.Context) {
	var req service.SessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	session, err := c.SessionService.Create(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, session)
}

// List godoc
// @Summary List academic sessions
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Session}
// @Router /api/v1/sessions [get]
func (c *SessionController) List(ctx *gin.Context) {
	sessions, err := c.SessionService.List()
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, sessions)
}

// Active godoc
// @Summary The currently active session
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=model.Session}
// @Failure 400 {object} util.Response
// @Router /api/v1/sessions/active [get]
func (c *SessionController) Active(ctx *gin.Context) {
	session, err := c.SessionService.Active()
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, session)
}

// Activate godoc
// @Summary Make a session the active one
// @Description Deactivates every other session in the same write.
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param id path int true "session ID"
// @Success 200 {object} util.Response
// @Router /api/v1/sessions/{id}/activate [put]
func (c *SessionController) Activate(ctx *gin.Context) {
	if err := c.SessionService.Activate(util.MustParseUint(ctx.Param("id"))); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// Delete godoc
// @Summary Delete a session
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param id path int true "session ID"
// @Success 200 {object} util.Response
// @Router /api/v1/sessions/{id} [delete]
func (c *SessionController) Delete(ctx *gin.Context) {
	if err := c.SessionService.Delete(util.MustParseUint(ctx.Param("id"))); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
