package controller

import (
	"thesistrack_backend/internal/model"
	"thesistrack_backend/internal/service"
	"thesistrack_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ScoringController struct {
	ScoringService *service.ScoringService
	StudentService *service.StudentService
}

func NewScoringController(scoringService *service.ScoringService, studentService *service.StudentService) *ScoringController {
	return &ScoringController{ScoringService: scoringService, StudentService: studentService}
}

// Submit godoc
// @Summary Submit panel scores for a student's current stage
// @Description The caller must sit on the student's panel and the stage must carry a published rubric. Re-submission replaces the caller's earlier scores per criterion.
// @Tags scoring
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "student record ID"
// @Param body body service.SubmitScoresRequest true "scores"
// @Success 200 {object} util.Response{data=[]model.ScoreEntry}
// @Failure 400 {object} util.Response
// @Failure 403 {object} util.Response
// @Router /api/v1/students/{id}/scores [post]
func (c *ScoringController) Submit(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.SubmitScoresRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	entries, err := c.ScoringService.SubmitScores(util.MustParseUint(ctx.Param("id")), claims.UserID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, entries)
}

// List godoc
// @Summary List raw score entries for a student's stage
// @Tags scoring
// @Produce json
// @Security BearerAuth
// @Param id path int true "student record ID"
// @Param stage query string false "stage, defaults to the current one"
// @Param scorerId query int false "only one panel member's entries"
// @Success 200 {object} util.Response{data=[]model.ScoreEntry}
// @Router /api/v1/students/{id}/scores [get]
func (c *ScoringController) List(ctx *gin.Context) {
	student, err := c.StudentService.Get(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		respondError(ctx, err)
		return
	}

	stage := ctx.Query("stage")
	if stage == "" {
		stage = student.CurrentStage
	}

	var entries []model.ScoreEntry
	if scorerID := util.MustParseUint(ctx.Query("scorerId")); scorerID > 0 {
		entries, err = c.ScoringService.ListByScorer(student.ID, stage, scorerID)
	} else {
		entries, err = c.ScoringService.ListForStage(student.ID, stage)
	}
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, entries)
}

// Summary godoc
// @Summary Per-criterion score summary and composite for a student's stage
// @Description Means are rounded half up; the composite appears once every published criterion has at least one score.
// @Tags scoring
// @Produce json
// @Security BearerAuth
// @Param id path int true "student record ID"
// @Param stage query string false "stage, defaults to the current one"
// @Success 200 {object} util.Response{data=service.StageScoreSummary}
// @Failure 400 {object} util.Response
// @Router /api/v1/students/{id}/scores/summary [get]
func (c *ScoringController) Summary(ctx *gin.Context) {
	student, err := c.StudentService.Get(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		respondError(ctx, err)
		return
	}

	stage := ctx.Query("stage")
	if stage == "" {
		stage = student.CurrentStage
	}

	summary, err := c.ScoringService.Summarize(student, stage)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, summary)
}
