package repository

import (
	"thesistrack_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type RubricRepository struct {
	DB *gorm.DB
}

func NewRubricRepository(db *gorm.DB) *RubricRepository {
	return &RubricRepository{DB: db}
}

func (r *RubricRepository) Create(set *model.RubricSet) error {
	return r.DB.Create(set).Error
}

func (r *RubricRepository) FindByID(id uint) (*model.RubricSet, error) {
	var set model.RubricSet
	err := r.DB.Preload("Criteria", func(db *gorm.DB) *gorm.DB {
		return db.Order("rubric_criteria.position asc")
	}).First(&set, id).Error
	return &set, err
}

// FindForStage returns the rubric for a (session, program, stage) scope.
func (r *RubricRepository) FindForStage(sessionID uint, program, stage string) (*model.RubricSet, error) {
	var set model.RubricSet
	err := r.DB.Preload("Criteria", func(db *gorm.DB) *gorm.DB {
		return db.Order("rubric_criteria.position asc")
	}).
		Where("session_id = ? AND program = ? AND stage = ?", sessionID, program, stage).
		First(&set).Error
	return &set, err
}

func (r *RubricRepository) List(sessionID uint, program string) ([]model.RubricSet, error) {
	var sets []model.RubricSet
	query := r.DB.Preload("Criteria", func(db *gorm.DB) *gorm.DB {
		return db.Order("rubric_criteria.position asc")
	})
	if sessionID > 0 {
		query = query.Where("session_id = ?", sessionID)
	}
	if program != "" {
		query = query.Where("program = ?", program)
	}
	err := query.Order("created_at desc").Find(&sets).Error
	return sets, err
}

func (r *RubricRepository) AddCriterion(c *model.RubricCriterion) error {
	return r.DB.Create(c).Error
}

func (r *RubricRepository) RemoveCriterion(setID uint, title string) error {
	return r.DB.Where("rubric_set_id = ? AND LOWER(title) = LOWER(?)", setID, title).
		Delete(&model.RubricCriterion{}).Error
}

// MarkPublished flips a draft set to published. The weight invariant has
// already been enforced through the progression engine by the service.
func (r *RubricRepository) MarkPublished(setID uint) error {
	now := time.Now()
	return r.DB.Model(&model.RubricSet{}).
		Where("id = ? AND status = ?", setID, model.RubricDraft).
		Updates(map[string]interface{}{
			"status":       model.RubricPublished,
			"published_at": &now,
		}).Error
}

func (r *RubricRepository) Delete(setID uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("rubric_set_id = ?", setID).Delete(&model.RubricCriterion{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.RubricSet{}, setID).Error
	})
}
