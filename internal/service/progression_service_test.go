package service

import (
	"testing"

	"thesistrack_backend/internal/model"
	"thesistrack_backend/internal/progression"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEngineRecord(t *testing.T) {
	student := &model.StudentRecord{
		MatricNo:     "PG/PHD/21/001",
		Program:      "phd",
		CurrentStage: "second_seminar",
	}
	approvals := []model.StageApproval{
		{Stage: "start", Status: "approved", CompositeScore: 0},
		{Stage: "proposal_defense", Status: "approved", CompositeScore: 82},
	}

	record, err := loadEngineRecord(student, approvals)
	require.NoError(t, err)
	assert.Equal(t, progression.StageSecondSeminar, record.CurrentStage)
	assert.False(t, record.Completed)
	assert.True(t, record.Approved(progression.StageStart))
	assert.True(t, record.Approved(progression.StageProposalDefense))
	assert.False(t, record.Approved(progression.StageSecondSeminar))
	assert.Equal(t, 82, record.Outcomes[progression.StageProposalDefense].Score)
}

func TestLoadEngineRecordUnknownProgram(t *testing.T) {
	student := &model.StudentRecord{MatricNo: "X", Program: "mba", CurrentStage: "start"}
	_, err := loadEngineRecord(student, nil)
	assert.ErrorIs(t, err, progression.ErrUnknownProgram)
}

// The replayed record must reject the same invalid transitions a live one
// does, so a stale persisted stage cannot be advanced past.
func TestReplayedRecordEnforcesGates(t *testing.T) {
	student := &model.StudentRecord{
		MatricNo:     "PG/MSC/21/002",
		Program:      "msc",
		CurrentStage: "proposal",
	}
	record, err := loadEngineRecord(student, []model.StageApproval{
		{Stage: "start", Status: "approved"},
	})
	require.NoError(t, err)

	err = record.Advance()
	assert.ErrorIs(t, err, progression.ErrStageNotApproved)

	_, err = record.Approve(progression.StageProposal, progression.ActorProvost, 75)
	assert.ErrorIs(t, err, progression.ErrRoleNotAuthorized)

	_, err = record.Approve(progression.StageProposal, progression.ActorHOD, 75)
	require.NoError(t, err)
	require.NoError(t, record.Advance())
	assert.Equal(t, progression.StageInternalDefense, record.CurrentStage)
}
