package service

import (
	"math"

	"thesistrack_backend/internal/model"
	"thesistrack_backend/internal/progression"
	"thesistrack_backend/internal/repository"
	"thesistrack_backend/internal/util"
	"thesistrack_backend/pkg/logger"

	"go.uber.org/zap"
)

type ScoringService struct {
	Repo        *repository.ScoreRepository
	StudentRepo *repository.StudentRepository
	Rubrics     *RubricService
	Panels      *PanelService
}

func NewScoringService(repo *repository.ScoreRepository, studentRepo *repository.StudentRepository, rubrics *RubricService, panels *PanelService) *ScoringService {
	return &ScoringService{Repo: repo, StudentRepo: studentRepo, Rubrics: rubrics, Panels: panels}
}

type ScoreItem struct {
	CriterionTitle string `json:"criterionTitle" binding:"required"`
	Score          int    `json:"score"`
	Remark         string `json:"remark"`
}

type SubmitScoresRequest struct {
	Items []ScoreItem `json:"items" binding:"required,min=1,dive"`
}

// CriterionSummary aggregates all scorers' entries for one rubric criterion.
type CriterionSummary struct {
	Title      string `json:"title"`
	Percentage int    `json:"percentage"`
	Scorers    int    `json:"scorers"`
	Mean       int    `json:"mean"`
	Scored     bool   `json:"scored"`
}

type StageScoreSummary struct {
	StudentID uint               `json:"studentId"`
	Stage     string             `json:"stage"`
	Criteria  []CriterionSummary `json:"criteria"`
	Complete  bool               `json:"complete"`
	Composite int                `json:"composite"`
}

// SubmitScores records one panel member's scores for the student's current
// stage. The stage must carry a published rubric, every title must belong to
// it, and every score must lie in 0..100. Re-submission replaces the scorer's
// earlier entries per criterion.
func (s *ScoringService) SubmitScores(studentID, scorerID uint, req SubmitScoresRequest) ([]model.ScoreEntry, error) {
	student, err := s.StudentRepo.FindByID(studentID)
	if err != nil {
		return nil, util.ErrStudentNotFound
	}
	if student.Completed {
		return nil, progression.ErrAlreadyCompleted
	}

	member, err := s.Panels.IsPanelMember(student.ID, scorerID)
	if err != nil {
		return nil, err
	}
	if !member {
		return nil, util.ErrNotPanelMember
	}

	_, engine, err := s.Rubrics.PublishedForStage(student.SessionID, student.Program, student.CurrentStage)
	if err != nil {
		return nil, err
	}

	for _, item := range req.Items {
		if !engine.Contains(item.CriterionTitle) {
			return nil, util.ErrUnknownCriterion
		}
		if err := progression.ValidateScore(item.Score); err != nil {
			return nil, err
		}
	}

	saved := make([]model.ScoreEntry, 0, len(req.Items))
	for _, item := range req.Items {
		entry := model.ScoreEntry{
			StudentID:      student.ID,
			Stage:          student.CurrentStage,
			CriterionTitle: item.CriterionTitle,
			ScorerID:       scorerID,
			Score:          item.Score,
			Remark:         item.Remark,
		}
		if err := s.Repo.Upsert(&entry); err != nil {
			return nil, err
		}
		saved = append(saved, entry)
	}
	return saved, nil
}

func (s *ScoringService) ListForStage(studentID uint, stage string) ([]model.ScoreEntry, error) {
	return s.Repo.ListForStage(studentID, stage)
}

func (s *ScoringService) ListByScorer(studentID uint, stage string, scorerID uint) ([]model.ScoreEntry, error) {
	return s.Repo.ListByScorer(studentID, stage, scorerID)
}

// Summarize folds all scorers' entries into per-criterion means and, when
// every published criterion has at least one score, the stage composite.
func (s *ScoringService) Summarize(student *model.StudentRecord, stage string) (*StageScoreSummary, error) {
	set, engine, err := s.Rubrics.PublishedForStage(student.SessionID, student.Program, stage)
	if err != nil {
		return nil, err
	}

	entries, err := s.Repo.ListForStage(student.ID, stage)
	if err != nil {
		return nil, err
	}

	sums := map[string]int{}
	counts := map[string]int{}
	for _, e := range entries {
		if !engine.Contains(e.CriterionTitle) {
			// stale entry from a criterion removed before publish
			logger.Log.Warn("score entry for unknown criterion ignored",
				zap.Uint("studentID", student.ID),
				zap.String("stage", stage),
				zap.String("criterion", e.CriterionTitle))
			continue
		}
		sums[e.CriterionTitle] += e.Score
		counts[e.CriterionTitle]++
	}

	summary := &StageScoreSummary{StudentID: student.ID, Stage: stage}
	means := progression.ScoreEntries{}
	complete := true
	for _, c := range set.Criteria {
		cs := CriterionSummary{Title: c.Title, Percentage: c.Percentage}
		if n := counts[c.Title]; n > 0 {
			cs.Scorers = n
			cs.Mean = roundHalfUp(float64(sums[c.Title]) / float64(n))
			cs.Scored = true
			means[c.Title] = cs.Mean
		} else {
			complete = false
		}
		summary.Criteria = append(summary.Criteria, cs)
	}
	summary.Complete = complete

	// unscored criteria contribute zero to the composite
	composite, unknown := progression.ComputeComposite(engine, means)
	for _, title := range unknown {
		logger.Log.Warn("criterion missing from composite input",
			zap.Uint("studentID", student.ID),
			zap.String("criterion", title))
	}
	summary.Composite = composite
	return summary, nil
}

func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
