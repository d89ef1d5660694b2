package repository

import (
	"thesistrack_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ScoreRepository struct {
	DB *gorm.DB
}

func NewScoreRepository(db *gorm.DB) *ScoreRepository {
	return &ScoreRepository{DB: db}
}

// Upsert stores one scorer's value for one criterion; re-submission replaces
// the prior value.
func (r *ScoreRepository) Upsert(entry *model.ScoreEntry) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "student_id"}, {Name: "stage"}, {Name: "criterion_title"}, {Name: "scorer_id"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"score", "remark", "updated_at"}),
	}).Create(entry).Error
}

func (r *ScoreRepository) ListForStage(studentID uint, stage string) ([]model.ScoreEntry, error) {
	var entries []model.ScoreEntry
	err := r.DB.Preload("Scorer").
		Where("student_id = ? AND stage = ?", studentID, stage).
		Order("criterion_title asc, scorer_id asc").
		Find(&entries).Error
	return entries, err
}

func (r *ScoreRepository) ListByScorer(studentID uint, stage string, scorerID uint) ([]model.ScoreEntry, error) {
	var entries []model.ScoreEntry
	err := r.DB.Where("student_id = ? AND stage = ? AND scorer_id = ?", studentID, stage, scorerID).
		Find(&entries).Error
	return entries, err
}
