package controller

import (
	"errors"

	"thesistrack_backend/internal/progression"
	"thesistrack_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// respondError maps service and engine errors onto the API envelope.
// Validation failures are 400, authorization gate failures 403, missing
// resources 404, and stale-workflow failures 409.
func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrUserNotFound),
		errors.Is(err, util.ErrStudentNotFound),
		errors.Is(err, util.ErrSessionNotFound),
		errors.Is(err, util.ErrRubricNotFound),
		errors.Is(err, util.ErrScheduleNotFound),
		errors.Is(err, util.ErrManuscriptNotFound),
		errors.Is(err, progression.ErrUnknownStudent),
		errors.Is(err, gorm.ErrRecordNotFound):
		util.NotFound(ctx)

	case errors.Is(err, progression.ErrRoleNotAuthorized),
		errors.Is(err, util.ErrNotPanelMember):
		util.Forbidden(ctx, err.Error())

	case errors.Is(err, util.ErrVersionConflict),
		errors.Is(err, util.ErrEmailRegistered),
		errors.Is(err, util.ErrMatricNoRegistered),
		errors.Is(err, progression.ErrStageMismatch),
		errors.Is(err, progression.ErrStageNotApproved),
		errors.Is(err, progression.ErrAlreadyCompleted),
		errors.Is(err, progression.ErrSetPublished):
		util.Conflict(ctx, err.Error())

	case errors.Is(err, util.ErrInvalidCredentials):
		util.Unauthorized(ctx)

	case errors.Is(err, util.ErrNoActiveSession),
		errors.Is(err, util.ErrRubricNotPublished),
		errors.Is(err, util.ErrUnknownCriterion),
		errors.Is(err, util.ErrAssigneeNotLecturer),
		errors.Is(err, progression.ErrDuplicateCriterion),
		errors.Is(err, progression.ErrInvalidWeight),
		errors.Is(err, progression.ErrUnbalancedWeights),
		errors.Is(err, progression.ErrScoreOutOfRange),
		errors.Is(err, progression.ErrUnknownProgram),
		errors.Is(err, progression.ErrUnknownStage),
		errors.Is(err, progression.ErrUnknownPanelRole):
		util.BadRequest(ctx, err.Error())

	default:
		util.LogInternalError(ctx, err)
	}
}
