package service

import (
	"errors"
	"fmt"

	"thesistrack_backend/internal/model"
	"thesistrack_backend/internal/progression"
	"thesistrack_backend/internal/repository"
	"thesistrack_backend/internal/util"
	"thesistrack_backend/pkg/monitoring"

	"gorm.io/gorm"
)

// ProgressionService drives the stage state machine. All mutations load the
// persisted record, replay it into an engine record, apply the engine
// operation, and write the result back under the optimistic version check.
type ProgressionService struct {
	StudentRepo   *repository.StudentRepository
	Scoring       *ScoringService
	Panels        *PanelService
	Notifications *NotificationService
}

func NewProgressionService(studentRepo *repository.StudentRepository, scoring *ScoringService, panels *PanelService, notifications *NotificationService) *ProgressionService {
	return &ProgressionService{StudentRepo: studentRepo, Scoring: scoring, Panels: panels, Notifications: notifications}
}

// StageView is one row of a student's progress history.
type StageView struct {
	Stage          string `json:"stage"`
	Status         string `json:"status"`
	CompositeScore int    `json:"compositeScore"`
	ApprovedBy     string `json:"approvedBy,omitempty"`
	ApprovedAt     string `json:"approvedAt,omitempty"`
	Current        bool   `json:"current"`
}

type ProgressView struct {
	Student   *model.StudentRecord `json:"student"`
	Stages    []StageView          `json:"stages"`
	NextStage string               `json:"nextStage,omitempty"`
}

func loadEngineRecord(student *model.StudentRecord, approvals []model.StageApproval) (*progression.Record, error) {
	record, err := progression.NewRecord(student.MatricNo, progression.Program(student.Program))
	if err != nil {
		return nil, err
	}
	record.CurrentStage = progression.Stage(student.CurrentStage)
	record.Completed = student.Completed
	for _, a := range approvals {
		record.Outcomes[progression.Stage(a.Stage)] = progression.StageOutcome{
			Status: progression.ApprovalStatus(a.Status),
			Score:  a.CompositeScore,
		}
	}
	return record, nil
}

// actorRole maps the caller's account role onto the engine's approval actor.
// Supervisors only count as major supervisor for students whose panel lists
// them in that role; admins act as whichever role the stage's gate requires.
func (s *ProgressionService) actorRole(actor *model.User, student *model.StudentRecord) (progression.ActorRole, error) {
	switch actor.Role {
	case model.Supervisor:
		holds, err := s.Panels.HoldsRole(student.ID, actor.ID, progression.PanelMajorSupervisor)
		if err != nil {
			return "", err
		}
		if !holds {
			return "", progression.ErrRoleNotAuthorized
		}
		return progression.ActorMajorSupervisor, nil
	case model.HOD:
		return progression.ActorHOD, nil
	case model.Dean:
		return progression.ActorDean, nil
	case model.Provost:
		return progression.ActorProvost, nil
	case model.Admin:
		switch progression.Stage(student.CurrentStage) {
		case progression.StageStart:
			return progression.ActorMajorSupervisor, nil
		case progression.StageExternalDefense:
			return progression.ActorProvost, nil
		default:
			return progression.ActorHOD, nil
		}
	default:
		return "", progression.ErrRoleNotAuthorized
	}
}

func (s *ProgressionService) load(studentID uint) (*model.StudentRecord, []model.StageApproval, error) {
	student, err := s.StudentRepo.FindByID(studentID)
	if err == gorm.ErrRecordNotFound {
		return nil, nil, util.ErrStudentNotFound
	}
	if err != nil {
		return nil, nil, err
	}
	approvals, err := s.StudentRepo.ListApprovals(student.ID)
	if err != nil {
		return nil, nil, err
	}
	return student, approvals, nil
}

// Approve signs off the student's current stage with the composite computed
// from the panel's scores. When the stage has no published rubric the
// approval is recorded with a zero composite. Re-approving an approved stage
// is a no-op returning the originally recorded score.
func (s *ProgressionService) Approve(studentID uint, actor *model.User) (*model.StageApproval, error) {
	student, approvals, err := s.load(studentID)
	if err != nil {
		return nil, err
	}
	loadedVersion := student.Version

	record, err := loadEngineRecord(student, approvals)
	if err != nil {
		return nil, err
	}

	role, err := s.actorRole(actor, student)
	if err != nil {
		return nil, err
	}

	// Unscored criteria contribute zero, and a stage with no published
	// rubric approves with a zero composite. Both are product decisions,
	// gated behind AllowApproveWithoutRubric.
	composite := 0
	summary, err := s.Scoring.Summarize(student, student.CurrentStage)
	switch {
	case err == nil:
		composite = summary.Composite
	case errors.Is(err, util.ErrRubricNotPublished):
		if !progression.AllowApproveWithoutRubric {
			return nil, err
		}
	default:
		return nil, err
	}

	stage := record.CurrentStage
	recorded, err := record.Approve(stage, role, composite)
	if err != nil {
		return nil, err
	}

	approval := &model.StageApproval{
		StudentID:      student.ID,
		Stage:          string(stage),
		Status:         string(progression.StatusApproved),
		CompositeScore: recorded,
		ApprovedByID:   &actor.ID,
	}
	if err := s.StudentRepo.ApplyProgress(student, loadedVersion, approval); err != nil {
		if errors.Is(err, util.ErrVersionConflict) {
			monitoring.VersionConflicts.Inc()
		}
		return nil, err
	}
	monitoring.StageApprovals.WithLabelValues(student.Program, string(stage)).Inc()

	go s.Notifications.Notify(student.UserID, model.NotifyStageApproved,
		"Stage approved",
		fmt.Sprintf("Your %s stage was approved with a composite score of %d.", stage, recorded))

	return approval, nil
}

// Advance moves the student to the next stage of their program. The current
// stage must already be approved. Reaching the end of the sequence marks the
// record completed.
func (s *ProgressionService) Advance(studentID uint, actor *model.User) (*model.StudentRecord, error) {
	student, approvals, err := s.load(studentID)
	if err != nil {
		return nil, err
	}
	loadedVersion := student.Version

	record, err := loadEngineRecord(student, approvals)
	if err != nil {
		return nil, err
	}
	if err := record.Advance(); err != nil {
		return nil, err
	}

	student.CurrentStage = string(record.CurrentStage)
	student.Completed = record.Completed
	if err := s.StudentRepo.ApplyProgress(student, loadedVersion, nil); err != nil {
		if errors.Is(err, util.ErrVersionConflict) {
			monitoring.VersionConflicts.Inc()
		}
		return nil, err
	}
	monitoring.StageAdvances.WithLabelValues(student.Program, student.CurrentStage).Inc()

	body := fmt.Sprintf("You have advanced to the %s stage.", student.CurrentStage)
	if student.Completed {
		body = "Congratulations, you have completed all defense stages."
	}
	go s.Notifications.Notify(student.UserID, model.NotifyStageAdvanced, "Stage advanced", body)

	return student, nil
}

// Reset is the administrative correction path: it rewinds the record to the
// Start stage and clears its approval history.
func (s *ProgressionService) Reset(studentID uint, actor *model.User) (*model.StudentRecord, error) {
	student, _, err := s.load(studentID)
	if err != nil {
		return nil, err
	}
	loadedVersion := student.Version

	student.CurrentStage = string(progression.StageStart)
	student.Completed = false
	if err := s.StudentRepo.ResetProgress(student, loadedVersion); err != nil {
		if errors.Is(err, util.ErrVersionConflict) {
			monitoring.VersionConflicts.Inc()
		}
		return nil, err
	}

	go s.Notifications.Notify(student.UserID, model.NotifyRecordReset,
		"Progress reset",
		"Your defense progress record was reset by an administrator.")

	return student, nil
}

// Progress assembles the full stage history view for a student.
func (s *ProgressionService) Progress(studentID uint) (*ProgressView, error) {
	student, approvals, err := s.load(studentID)
	if err != nil {
		return nil, err
	}

	byStage := map[string]model.StageApproval{}
	for _, a := range approvals {
		byStage[a.Stage] = a
	}

	sequence, err := progression.Sequence(progression.Program(student.Program))
	if err != nil {
		return nil, err
	}

	view := &ProgressView{Student: student}
	for _, stage := range sequence {
		sv := StageView{
			Stage:   string(stage),
			Status:  string(progression.StatusPending),
			Current: !student.Completed && string(stage) == student.CurrentStage,
		}
		if a, ok := byStage[string(stage)]; ok {
			sv.Status = a.Status
			sv.CompositeScore = a.CompositeScore
			if a.ApprovedBy != nil {
				sv.ApprovedBy = a.ApprovedBy.Name
			}
			if a.ApprovedAt != nil {
				sv.ApprovedAt = a.ApprovedAt.Format("2006-01-02 15:04:05")
			}
		}
		view.Stages = append(view.Stages, sv)
	}

	if !student.Completed {
		if next, err := progression.NextStage(progression.Program(student.Program), progression.Stage(student.CurrentStage)); err == nil {
			view.NextStage = string(next)
		}
	}
	return view, nil
}
