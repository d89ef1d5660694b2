package service

import (
	"testing"

	"thesistrack_backend/internal/model"
	"thesistrack_backend/internal/progression"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestoreSetDraft(t *testing.T) {
	set := &model.RubricSet{
		Status: model.RubricDraft,
		Criteria: []model.RubricCriterion{
			{Title: "Presentation", Percentage: 20},
			{Title: "Content", Percentage: 40},
		},
	}

	engine, err := restoreSet(set)
	require.NoError(t, err)
	assert.False(t, engine.Published())
	assert.Equal(t, 60, engine.TotalWeight())

	// drafts stay editable after restore
	require.NoError(t, engine.Add("Defense Handling", 40))
	assert.True(t, engine.IsPublishable())
}

func TestRestoreSetPublished(t *testing.T) {
	set := &model.RubricSet{
		Status: model.RubricPublished,
		Criteria: []model.RubricCriterion{
			{Title: "Presentation", Percentage: 30},
			{Title: "Content", Percentage: 70},
		},
	}

	engine, err := restoreSet(set)
	require.NoError(t, err)
	assert.True(t, engine.Published())

	err = engine.Add("Extra", 10)
	assert.ErrorIs(t, err, progression.ErrSetPublished)
}

func TestRestoreSetPublishedUnbalanced(t *testing.T) {
	// a published row whose weights no longer sum to 100 is corrupt state
	set := &model.RubricSet{
		Status: model.RubricPublished,
		Criteria: []model.RubricCriterion{
			{Title: "Presentation", Percentage: 30},
		},
	}

	_, err := restoreSet(set)
	assert.Error(t, err)
}
