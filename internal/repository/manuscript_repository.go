package repository

import (
	"thesistrack_backend/internal/model"

	"gorm.io/gorm"
)

type ManuscriptRepository struct {
	DB *gorm.DB
}

func NewManuscriptRepository(db *gorm.DB) *ManuscriptRepository {
	return &ManuscriptRepository{DB: db}
}

// Create assigns the next revision number for the (student, stage) pair
// before inserting.
func (r *ManuscriptRepository) Create(m *model.Manuscript) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var latest model.Manuscript
		err := tx.Where("student_id = ? AND stage = ?", m.StudentID, m.Stage).
			Order("revision desc").
			First(&latest).Error
		switch {
		case err == nil:
			m.Revision = latest.Revision + 1
		case err == gorm.ErrRecordNotFound:
			m.Revision = 1
		default:
			return err
		}
		return tx.Create(m).Error
	})
}

func (r *ManuscriptRepository) FindByID(id uint) (*model.Manuscript, error) {
	var m model.Manuscript
	err := r.DB.Preload("UploadedBy").First(&m, id).Error
	return &m, err
}

func (r *ManuscriptRepository) ListForStudent(studentID uint, stage string) ([]model.Manuscript, error) {
	var manuscripts []model.Manuscript
	query := r.DB.Preload("UploadedBy").Where("student_id = ?", studentID)
	if stage != "" {
		query = query.Where("stage = ?", stage)
	}
	err := query.Order("stage asc, revision desc").Find(&manuscripts).Error
	return manuscripts, err
}
