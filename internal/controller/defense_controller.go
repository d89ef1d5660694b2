package controller

import (
	"time"

	"thesistrack_backend/internal/service"
	"thesistrack_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DefenseController struct {
	DefenseService *service.DefenseService
}

func NewDefenseController(defenseService *service.DefenseService) *DefenseController {
	return &DefenseController{DefenseService: defenseService}
}

// Schedule godoc
// @Summary Schedule a defense sitting
// @Description Every listed student must belong to the program and currently sit at the scheduled stage.
// @Tags defenses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.ScheduleDefenseRequest true "schedule"
// @Success 201 {object} util.Response{data=model.DefenseSchedule}
// @Failure 400 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /api/v1/defenses [post]
func (c *DefenseController) Schedule(ctx *gin.Context) {
	var req service.ScheduleDefenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	schedule, err := c.DefenseService.Schedule(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, schedule)
}

// List godoc
// @Summary List defense sittings
// @Tags defenses
// @Produce json
// @Security BearerAuth
// @Param page query int false "page"
// @Param limit query int false "page size"
// @Param sessionId query int false "filter by session"
// @Param program query string false "msc or phd"
// @Param from query string false "start date (2006-01-02)"
// @Param to query string false "end date (2006-01-02)"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/v1/defenses [get]
func (c *DefenseController) List(ctx *gin.Context) {
	page, limit := util.ParsePagination(ctx.Query("page"), ctx.Query("limit"))

	var from, to *time.Time
	if v := ctx.Query("from"); v != "" {
		if t, err := time.Parse(util.DateFormat, v); err == nil {
			from = &t
		}
	}
	if v := ctx.Query("to"); v != "" {
		if t, err := time.Parse(util.DateFormat, v); err == nil {
			end := t.Add(24 * time.Hour)
			to = &end
		}
	}

	schedules, total, err := c.DefenseService.List(page, limit,
		util.MustParseUint(ctx.Query("sessionId")), ctx.Query("program"), from, to)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: schedules, Total: total, Page: page, Limit: limit})
}

// Day godoc
// @Summary All defenses on one day
// @Description Served from the Redis cache when warm.
// @Tags defenses
// @Produce json
// @Security BearerAuth
// @Param date query string true "day (2006-01-02)"
// @Success 200 {object} util.Response{data=[]model.DefenseSchedule}
// @Failure 400 {object} util.Response
// @Router /api/v1/defenses/day [get]
func (c *DefenseController) Day(ctx *gin.Context) {
	day, err := time.Parse(util.DateFormat, ctx.Query("date"))
	if err != nil {
		util.BadRequest(ctx, "date must be formatted 2006-01-02")
		return
	}

	schedules, err := c.DefenseService.DayView(ctx.Request.Context(), day)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, schedules)
}

// Get godoc
// @Summary Fetch one defense sitting
// @Tags defenses
// @Produce json
// @Security BearerAuth
// @Param id path int true "schedule ID"
// @Success 200 {object} util.Response{data=model.DefenseSchedule}
// @Failure 404 {object} util.Response
// @Router /api/v1/defenses/{id} [get]
func (c *DefenseController) Get(ctx *gin.Context) {
	schedule, err := c.DefenseService.Get(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, schedule)
}

// Update godoc
// @Summary Update a defense sitting
// @Tags defenses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "schedule ID"
// @Param body body service.UpdateDefenseRequest true "fields"
// @Success 200 {object} util.Response{data=model.DefenseSchedule}
// @Router /api/v1/defenses/{id} [put]
func (c *DefenseController) Update(ctx *gin.Context) {
	var req service.UpdateDefenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	schedule, err := c.DefenseService.Update(util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, schedule)
}

// Delete godoc
// @Summary Cancel a defense sitting
// @Tags defenses
// @Produce json
// @Security BearerAuth
// @Param id path int true "schedule ID"
// @Success 200 {object} util.Response
// @Router /api/v1/defenses/{id} [delete]
func (c *DefenseController) Delete(ctx *gin.Context) {
	if err := c.DefenseService.Delete(util.MustParseUint(ctx.Param("id"))); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
