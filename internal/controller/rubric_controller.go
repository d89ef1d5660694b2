package controller

import (
	"thesistrack_backend/internal/service"
	"thesistrack_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type RubricController struct {
	RubricService *service.RubricService
}

func NewRubricController(rubricService *service.RubricService) *RubricController {
	return &RubricController{RubricService: rubricService}
}

// Create godoc
// @Summary Create a draft rubric for a stage
// @Tags rubrics
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.CreateRubricRequest true "scope"
// @Success 201 {object} util.Response{data=model.RubricSet}
// @Failure 400 {object} util.Response
// @Router /api/v1/rubrics [post]
func (c *RubricController) Create(ctx *gin.Context) {
	var req service.CreateRubricRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	set, err := c.RubricService.Create(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, set)
}

// List godoc
// @Summary List rubrics
// @Tags rubrics
// @Produce json
// @Security BearerAuth
// @Param sessionId query int false "filter by session"
// @Param program query string false "msc or phd"
// @Success 200 {object} util.Response{data=[]model.RubricSet}
// @Router /api/v1/rubrics [get]
func (c *RubricController) List(ctx *gin.Context) {
	sets, err := c.RubricService.List(util.MustParseUint(ctx.Query("sessionId")), ctx.Query("program"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, sets)
}

// Get godoc
// @Summary Fetch one rubric with its criteria
// @Tags rubrics
// @Produce json
// @Security BearerAuth
// @Param id path int true "rubric ID"
// @Success 200 {object} util.Response{data=model.RubricSet}
// @Failure 404 {object} util.Response
// @Router /api/v1/rubrics/{id} [get]
func (c *RubricController) Get(ctx *gin.Context) {
	set, err := c.RubricService.Get(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, set)
}

// AddCriterion godoc
// @Summary Add a criterion to a draft rubric
// @Description Titles are unique case-insensitively; weights must stay within 100 total.
// @Tags rubrics
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "rubric ID"
// @Param body body service.CriterionRequest true "criterion"
// @Success 200 {object} util.Response{data=model.RubricSet}
// @Failure 400 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /api/v1/rubrics/{id}/criteria [post]
func (c *RubricController) AddCriterion(ctx *gin.Context) {
	var req service.CriterionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	set, err := c.RubricService.AddCriterion(util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, set)
}

// RemoveCriterion godoc
// @Summary Remove a criterion from a draft rubric
// @Description Removing an absent title is a no-op.
// @Tags rubrics
// @Produce json
// @Security BearerAuth
// @Param id path int true "rubric ID"
// @Param title path string true "criterion title"
// @Success 200 {object} util.Response{data=model.RubricSet}
// @Failure 409 {object} util.Response
// @Router /api/v1/rubrics/{id}/criteria/{title} [delete]
func (c *RubricController) RemoveCriterion(ctx *gin.Context) {
	set, err := c.RubricService.RemoveCriterion(util.MustParseUint(ctx.Param("id")), ctx.Param("title"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, set)
}

// Publish godoc
// @Summary Publish a rubric
// @Description Requires criterion weights summing to exactly 100; publishing freezes the set.
// @Tags rubrics
// @Produce json
// @Security BearerAuth
// @Param id path int true "rubric ID"
// @Success 200 {object} util.Response{data=model.RubricSet}
// @Failure 400 {object} util.Response
// @Router /api/v1/rubrics/{id}/publish [put]
func (c *RubricController) Publish(ctx *gin.Context) {
	set, err := c.RubricService.Publish(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, set)
}

// Delete godoc
// @Summary Delete a draft rubric
// @Tags rubrics
// @Produce json
// @Security BearerAuth
// @Param id path int true "rubric ID"
// @Success 200 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /api/v1/rubrics/{id} [delete]
func (c *RubricController) Delete(ctx *gin.Context) {
	if err := c.RubricService.Delete(util.MustParseUint(ctx.Param("id"))); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
