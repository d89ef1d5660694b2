package controller

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"thesistrack_backend/internal/progression"
	"thesistrack_backend/internal/util"
	"thesistrack_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Log = zap.NewNop()
}

func TestRespondErrorStatusCodes(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"student not found", util.ErrStudentNotFound, http.StatusNotFound},
		{"gate failure", progression.ErrRoleNotAuthorized, http.StatusForbidden},
		{"not on panel", util.ErrNotPanelMember, http.StatusForbidden},
		{"version conflict", util.ErrVersionConflict, http.StatusConflict},
		{"stage mismatch", progression.ErrStageMismatch, http.StatusConflict},
		{"stage not approved", progression.ErrStageNotApproved, http.StatusConflict},
		{"already completed", progression.ErrAlreadyCompleted, http.StatusConflict},
		{"published set edit", progression.ErrSetPublished, http.StatusConflict},
		{"bad credentials", util.ErrInvalidCredentials, http.StatusUnauthorized},
		{"unbalanced weights", progression.ErrUnbalancedWeights, http.StatusBadRequest},
		{"score out of range", progression.ErrScoreOutOfRange, http.StatusBadRequest},
		{"duplicate criterion", progression.ErrDuplicateCriterion, http.StatusBadRequest},
		{"rubric not published", util.ErrRubricNotPublished, http.StatusBadRequest},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(w)
			respondError(ctx, tc.err)
			assert.Equal(t, tc.want, w.Code)
		})
	}
}
