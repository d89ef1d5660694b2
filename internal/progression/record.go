package progression

type ApprovalStatus string

const (
	StatusPending  ApprovalStatus = "pending"
	StatusApproved ApprovalStatus = "approved"
)

// StageOutcome is the recorded result of one stage: its approval status and
// the composite score snapshot taken at approval time.
type StageOutcome struct {
	Status ApprovalStatus
	Score  int
}

// Record is a student's progress through the defense stages. Advance is the
// only mutator of CurrentStage.
type Record struct {
	StudentID    string
	Program      Program
	CurrentStage Stage
	Completed    bool
	Outcomes     map[Stage]StageOutcome
}

// NewRecord creates a progress record at the Start stage.
func NewRecord(studentID string, p Program) (*Record, error) {
	if !ValidProgram(p) {
		return nil, ErrUnknownProgram
	}
	return &Record{
		StudentID:    studentID,
		Program:      p,
		CurrentStage: StageStart,
		Outcomes:     map[Stage]StageOutcome{},
	}, nil
}

// Approved reports whether a stage has been approved.
func (r *Record) Approved(stage Stage) bool {
	return r.Outcomes[stage].Status == StatusApproved
}

// Approve records the composite score for the record's current stage and
// marks it approved. It does not advance the record; advancing is a separate
// explicit action.
//
// Re-approving an already-approved stage is a no-op that returns the
// originally recorded score, so duplicate client submissions are tolerated.
func (r *Record) Approve(stage Stage, role ActorRole, composite int) (int, error) {
	if r.Completed {
		return 0, ErrAlreadyCompleted
	}
	if stage != r.CurrentStage {
		return 0, ErrStageMismatch
	}
	ok, err := CanApprove(r.Program, stage, role)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, ErrRoleNotAuthorized
	}
	if out, exists := r.Outcomes[stage]; exists && out.Status == StatusApproved {
		return out.Score, nil
	}
	if r.Outcomes == nil {
		r.Outcomes = map[Stage]StageOutcome{}
	}
	r.Outcomes[stage] = StageOutcome{Status: StatusApproved, Score: composite}
	return composite, nil
}

// Advance moves the record to the next stage in its program's sequence.
// The current stage must be approved. Advancing past the last stage marks
// the record completed; further calls fail with ErrAlreadyCompleted.
func (r *Record) Advance() error {
	if r.Completed {
		return ErrAlreadyCompleted
	}
	if !r.Approved(r.CurrentStage) {
		return ErrStageNotApproved
	}
	next, err := NextStage(r.Program, r.CurrentStage)
	if err != nil {
		return err
	}
	r.CurrentStage = next
	if next == StageCompleted {
		r.Completed = true
	}
	return nil
}
