package progression

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanApprove(t *testing.T) {
	cases := []struct {
		name    string
		program Program
		stage   Stage
		role    ActorRole
		want    bool
	}{
		{"supervisor gates start", ProgramMSc, StageStart, ActorMajorSupervisor, true},
		{"hod cannot gate start", ProgramMSc, StageStart, ActorHOD, false},
		{"hod gates proposal", ProgramMSc, StageProposal, ActorHOD, true},
		{"dean gates proposal", ProgramMSc, StageProposal, ActorDean, true},
		{"provost cannot gate proposal", ProgramMSc, StageProposal, ActorProvost, false},
		{"hod gates phd seminars", ProgramPhD, StageSecondSeminar, ActorHOD, true},
		{"dean gates internal defense", ProgramMSc, StageInternalDefense, ActorDean, true},
		{"provost gates external defense", ProgramPhD, StageExternalDefense, ActorProvost, true},
		{"dean cannot gate external defense", ProgramPhD, StageExternalDefense, ActorDean, false},
		{"supervisor cannot gate external defense", ProgramMSc, StageExternalDefense, ActorMajorSupervisor, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := CanApprove(tc.program, tc.stage, tc.role)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	t.Run("stage outside program sequence", func(t *testing.T) {
		_, err := CanApprove(ProgramMSc, StageSecondSeminar, ActorHOD)
		assert.ErrorIs(t, err, ErrUnknownStage)
	})
}

func TestPanelAssign(t *testing.T) {
	t.Run("replaces prior assignee and returns it", func(t *testing.T) {
		p := NewPanel()
		prev, err := p.Assign(PanelInternalExaminer, "lect-1")
		require.NoError(t, err)
		assert.Empty(t, prev)

		prev, err = p.Assign(PanelInternalExaminer, "lect-2")
		require.NoError(t, err)
		assert.Equal(t, "lect-1", prev)

		snap := p.Snapshot()
		assert.Equal(t, "lect-2", snap[PanelInternalExaminer])
		assert.Len(t, snap, 1)
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		p := NewPanel()
		_, err := p.Assign(PanelRole("chairman"), "lect-1")
		assert.ErrorIs(t, err, ErrUnknownPanelRole)
	})

	t.Run("snapshot is a copy", func(t *testing.T) {
		p := NewPanel()
		_, err := p.Assign(PanelCollegeRep, "lect-9")
		require.NoError(t, err)

		snap := p.Snapshot()
		snap[PanelCollegeRep] = "tampered"
		assert.Equal(t, "lect-9", p.Snapshot()[PanelCollegeRep])
	})
}

func TestStageSequences(t *testing.T) {
	t.Run("msc order", func(t *testing.T) {
		seq, err := Sequence(ProgramMSc)
		require.NoError(t, err)
		assert.Equal(t, []Stage{StageStart, StageProposal, StageInternalDefense, StageExternalDefense}, seq)
	})

	t.Run("phd order", func(t *testing.T) {
		seq, err := Sequence(ProgramPhD)
		require.NoError(t, err)
		assert.Equal(t, []Stage{StageStart, StageProposalDefense, StageSecondSeminar, StageThirdSeminar, StageExternalDefense}, seq)
	})

	t.Run("next of last stage is completed", func(t *testing.T) {
		next, err := NextStage(ProgramMSc, StageExternalDefense)
		require.NoError(t, err)
		assert.Equal(t, StageCompleted, next)
	})
}
