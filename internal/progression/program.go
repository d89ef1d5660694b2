// Package progression implements the stage progression and scoring rules for
// postgraduate thesis tracking: scoring rubrics, composite score computation,
// the per-program stage state machine and the approval gate policy.
//
// The package is pure computation. Callers (services) load state, run an
// operation here, and persist the result; per-student write serialization is
// the persistence layer's responsibility.
package progression

type Program string

const (
	ProgramMSc Program = "msc"
	ProgramPhD Program = "phd"
)

type Stage string

const (
	StageStart           Stage = "start"
	StageProposal        Stage = "proposal"
	StageInternalDefense Stage = "internal_defense"
	StageProposalDefense Stage = "proposal_defense"
	StageSecondSeminar   Stage = "second_seminar"
	StageThirdSeminar    Stage = "third_seminar"
	StageExternalDefense Stage = "external_defense"

	// StageCompleted is the implicit terminal state reached once the
	// external defense is approved and the record advanced past it.
	StageCompleted Stage = "completed"
)

var stageSequences = map[Program][]Stage{
	ProgramMSc: {StageStart, StageProposal, StageInternalDefense, StageExternalDefense},
	ProgramPhD: {StageStart, StageProposalDefense, StageSecondSeminar, StageThirdSeminar, StageExternalDefense},
}

// Sequence returns the ordered stage sequence for a program. The returned
// slice is a copy.
func Sequence(p Program) ([]Stage, error) {
	seq, ok := stageSequences[p]
	if !ok {
		return nil, ErrUnknownProgram
	}
	out := make([]Stage, len(seq))
	copy(out, seq)
	return out, nil
}

// StageIndex returns the position of a stage within the program's sequence.
func StageIndex(p Program, s Stage) (int, error) {
	seq, ok := stageSequences[p]
	if !ok {
		return 0, ErrUnknownProgram
	}
	for i, st := range seq {
		if st == s {
			return i, nil
		}
	}
	return 0, ErrUnknownStage
}

// NextStage returns the stage following s in the program's sequence, or
// StageCompleted when s is the last stage.
func NextStage(p Program, s Stage) (Stage, error) {
	idx, err := StageIndex(p, s)
	if err != nil {
		return "", err
	}
	seq := stageSequences[p]
	if idx == len(seq)-1 {
		return StageCompleted, nil
	}
	return seq[idx+1], nil
}

func ValidProgram(p Program) bool {
	_, ok := stageSequences[p]
	return ok
}
