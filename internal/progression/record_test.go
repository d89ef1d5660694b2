package progression

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecord(t *testing.T) {
	r, err := NewRecord("stu-1", ProgramMSc)
	require.NoError(t, err)
	assert.Equal(t, StageStart, r.CurrentStage)
	assert.False(t, r.Completed)

	_, err = NewRecord("stu-2", Program("bsc"))
	assert.ErrorIs(t, err, ErrUnknownProgram)
}

func TestApprove(t *testing.T) {
	t.Run("rejects non-current stage", func(t *testing.T) {
		r, _ := NewRecord("stu-1", ProgramMSc)
		_, err := r.Approve(StageProposal, ActorHOD, 70)
		assert.ErrorIs(t, err, ErrStageMismatch)
	})

	t.Run("enforces the gate policy table", func(t *testing.T) {
		r, _ := NewRecord("stu-1", ProgramMSc)
		_, err := r.Approve(StageStart, ActorHOD, 0)
		assert.ErrorIs(t, err, ErrRoleNotAuthorized)

		_, err = r.Approve(StageStart, ActorMajorSupervisor, 0)
		assert.NoError(t, err)
	})

	t.Run("idempotent re-approval returns recorded score", func(t *testing.T) {
		r, _ := NewRecord("stu-1", ProgramPhD)
		score, err := r.Approve(StageStart, ActorMajorSupervisor, 55)
		require.NoError(t, err)
		assert.Equal(t, 55, score)

		// second approval with a different composite must not overwrite
		score, err = r.Approve(StageStart, ActorMajorSupervisor, 99)
		require.NoError(t, err)
		assert.Equal(t, 55, score)
		assert.Equal(t, 55, r.Outcomes[StageStart].Score)
	})

	t.Run("approve does not advance", func(t *testing.T) {
		r, _ := NewRecord("stu-1", ProgramMSc)
		_, err := r.Approve(StageStart, ActorMajorSupervisor, 0)
		require.NoError(t, err)
		assert.Equal(t, StageStart, r.CurrentStage)
	})
}

func TestAdvance(t *testing.T) {
	t.Run("premature advance fails and leaves stage unchanged", func(t *testing.T) {
		r, _ := NewRecord("stu-1", ProgramMSc)
		assert.ErrorIs(t, r.Advance(), ErrStageNotApproved)
		assert.Equal(t, StageStart, r.CurrentStage)
	})

	t.Run("moves exactly one position forward", func(t *testing.T) {
		r, _ := NewRecord("stu-1", ProgramPhD)
		seq, _ := Sequence(ProgramPhD)

		prevIdx := -1
		for _, stage := range seq {
			idx, err := StageIndex(ProgramPhD, r.CurrentStage)
			require.NoError(t, err)
			assert.Equal(t, prevIdx+1, idx, "advance must not skip or repeat")
			prevIdx = idx

			role := gateRoleFor(stage)
			_, err = r.Approve(stage, role, 60)
			require.NoError(t, err)
			require.NoError(t, r.Advance())
		}
		assert.True(t, r.Completed)
		assert.Equal(t, StageCompleted, r.CurrentStage)
	})

	t.Run("advance past terminal fails", func(t *testing.T) {
		r := completedRecord(t, ProgramMSc)
		assert.ErrorIs(t, r.Advance(), ErrAlreadyCompleted)

		_, err := r.Approve(StageCompleted, ActorProvost, 0)
		assert.ErrorIs(t, err, ErrAlreadyCompleted)
	})
}

func TestEndToEndMScScenario(t *testing.T) {
	r, err := NewRecord("stu-42", ProgramMSc)
	require.NoError(t, err)

	// supervisor approves Start: no rubric, composite irrelevant
	_, err = r.Approve(StageStart, ActorMajorSupervisor, 0)
	require.NoError(t, err)
	require.NoError(t, r.Advance())
	assert.Equal(t, StageProposal, r.CurrentStage)

	// panel scores the proposal
	set := mustSet(t,
		Criterion{Title: "Clarity", Percentage: 30},
		Criterion{Title: "Originality", Percentage: 70},
	)
	require.NoError(t, set.Publish())
	composite, unknown := ComputeComposite(set, ScoreEntries{"Clarity": 85, "Originality": 90})
	assert.Equal(t, 89, composite)
	assert.Empty(t, unknown)

	// HOD approves with the composite recorded, then advance
	recorded, err := r.Approve(StageProposal, ActorHOD, composite)
	require.NoError(t, err)
	assert.Equal(t, 89, recorded)
	require.NoError(t, r.Advance())
	assert.Equal(t, StageInternalDefense, r.CurrentStage)
	assert.Equal(t, 89, r.Outcomes[StageProposal].Score)
}

func gateRoleFor(stage Stage) ActorRole {
	switch stage {
	case StageStart:
		return ActorMajorSupervisor
	case StageExternalDefense:
		return ActorProvost
	default:
		return ActorHOD
	}
}

func completedRecord(t *testing.T, p Program) *Record {
	t.Helper()
	r, err := NewRecord("stu-done", p)
	require.NoError(t, err)
	seq, err := Sequence(p)
	require.NoError(t, err)
	for _, stage := range seq {
		_, err := r.Approve(stage, gateRoleFor(stage), 50)
		require.NoError(t, err)
		require.NoError(t, r.Advance())
	}
	return r
}
