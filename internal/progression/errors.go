package progression

import "errors"

var (
	ErrDuplicateCriterion = errors.New("criterion title already in set")
	ErrInvalidWeight      = errors.New("criterion weight must be in (0,100]")
	ErrUnbalancedWeights  = errors.New("criterion weights must sum to exactly 100")
	ErrSetPublished       = errors.New("criterion set already published")
	ErrScoreOutOfRange    = errors.New("score must be between 0 and 100")
	ErrStageNotApproved   = errors.New("current stage not approved")
	ErrStageMismatch      = errors.New("stage is not the student's current stage")
	ErrAlreadyCompleted   = errors.New("progress record already completed")
	ErrRoleNotAuthorized  = errors.New("role not authorized to approve this stage")
	ErrUnknownProgram     = errors.New("unknown program")
	ErrUnknownStage       = errors.New("stage not in program sequence")
	ErrUnknownPanelRole   = errors.New("unknown panel role")
	ErrUnknownStudent     = errors.New("student record not found")
)
