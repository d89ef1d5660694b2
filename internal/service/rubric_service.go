package service

import (
	"thesistrack_backend/internal/model"
	"thesistrack_backend/internal/progression"
	"thesistrack_backend/internal/repository"
	"thesistrack_backend/internal/util"

	"gorm.io/gorm"
)

type RubricService struct {
	Repo        *repository.RubricRepository
	SessionRepo *repository.SessionRepository
}

func NewRubricService(repo *repository.RubricRepository, sessionRepo *repository.SessionRepository) *RubricService {
	return &RubricService{Repo: repo, SessionRepo: sessionRepo}
}

type CreateRubricRequest struct {
	SessionID uint   `json:"sessionId"`
	Program   string `json:"program" binding:"required,oneof=msc phd"`
	Stage     string `json:"stage" binding:"required"`
}

type CriterionRequest struct {
	Title      string `json:"title" binding:"required"`
	Percentage int    `json:"percentage" binding:"required"`
}

// restore rebuilds the engine criterion set from stored rows. Draft sets are
// restored unpublished so the weight invariant is only enforced at publish.
func restoreSet(set *model.RubricSet) (*progression.CriterionSet, error) {
	criteria := make([]progression.Criterion, 0, len(set.Criteria))
	for _, c := range set.Criteria {
		criteria = append(criteria, progression.Criterion{Title: c.Title, Percentage: c.Percentage})
	}
	return progression.RestoreCriterionSet(criteria, set.Status == model.RubricPublished)
}

func (s *RubricService) Create(req CreateRubricRequest) (*model.RubricSet, error) {
	// the stage must exist in the program's sequence
	if _, err := progression.StageIndex(progression.Program(req.Program), progression.Stage(req.Stage)); err != nil {
		return nil, err
	}

	sessionID := req.SessionID
	if sessionID == 0 {
		active, err := s.SessionRepo.FindActive()
		if err != nil {
			return nil, util.ErrNoActiveSession
		}
		sessionID = active.ID
	}

	set := &model.RubricSet{
		SessionID: sessionID,
		Program:   req.Program,
		Stage:     req.Stage,
		Status:    model.RubricDraft,
	}
	if err := s.Repo.Create(set); err != nil {
		return nil, err
	}
	return set, nil
}

func (s *RubricService) Get(id uint) (*model.RubricSet, error) {
	set, err := s.Repo.FindByID(id)
	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrRubricNotFound
	}
	return set, err
}

func (s *RubricService) List(sessionID uint, program string) ([]model.RubricSet, error) {
	return s.Repo.List(sessionID, program)
}

func (s *RubricService) AddCriterion(setID uint, req CriterionRequest) (*model.RubricSet, error) {
	set, err := s.Get(setID)
	if err != nil {
		return nil, err
	}
	engine, err := restoreSet(set)
	if err != nil {
		return nil, err
	}
	if err := engine.Add(req.Title, req.Percentage); err != nil {
		return nil, err
	}

	criterion := &model.RubricCriterion{
		RubricSetID: set.ID,
		Title:       req.Title,
		Percentage:  req.Percentage,
		Position:    len(set.Criteria),
	}
	if err := s.Repo.AddCriterion(criterion); err != nil {
		return nil, err
	}
	return s.Get(setID)
}

func (s *RubricService) RemoveCriterion(setID uint, title string) (*model.RubricSet, error) {
	set, err := s.Get(setID)
	if err != nil {
		return nil, err
	}
	engine, err := restoreSet(set)
	if err != nil {
		return nil, err
	}
	// Remove on an absent title is a no-op, but a published set still rejects
	if err := engine.Remove(title); err != nil {
		return nil, err
	}
	if err := s.Repo.RemoveCriterion(set.ID, title); err != nil {
		return nil, err
	}
	return s.Get(setID)
}

func (s *RubricService) Publish(setID uint) (*model.RubricSet, error) {
	set, err := s.Get(setID)
	if err != nil {
		return nil, err
	}
	engine, err := restoreSet(set)
	if err != nil {
		return nil, err
	}
	if err := engine.Publish(); err != nil {
		return nil, err
	}
	if err := s.Repo.MarkPublished(set.ID); err != nil {
		return nil, err
	}
	return s.Get(setID)
}

func (s *RubricService) Delete(setID uint) error {
	set, err := s.Get(setID)
	if err != nil {
		return err
	}
	if set.Status == model.RubricPublished {
		return progression.ErrSetPublished
	}
	return s.Repo.Delete(set.ID)
}

// PublishedForStage loads the published rubric covering a student's stage, or
// ErrRubricNotPublished when only a draft (or nothing) exists.
func (s *RubricService) PublishedForStage(sessionID uint, program, stage string) (*model.RubricSet, *progression.CriterionSet, error) {
	set, err := s.Repo.FindForStage(sessionID, program, stage)
	if err == gorm.ErrRecordNotFound {
		return nil, nil, util.ErrRubricNotPublished
	}
	if err != nil {
		return nil, nil, err
	}
	if set.Status != model.RubricPublished {
		return nil, nil, util.ErrRubricNotPublished
	}
	engine, err := restoreSet(set)
	if err != nil {
		return nil, nil, err
	}
	return set, engine, nil
}
