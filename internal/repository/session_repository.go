package repository

import (
	"thesistrack_backend/internal/model"

	"gorm.io/gorm"
)

type SessionRepository struct {
	DB *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{DB: db}
}

func (r *SessionRepository) Create(s *model.Session) error {
	return r.DB.Create(s).Error
}

func (r *SessionRepository) FindByID(id uint) (*model.Session, error) {
	var s model.Session
	err := r.DB.First(&s, id).Error
	return &s, err
}

func (r *SessionRepository) FindActive() (*model.Session, error) {
	var s model.Session
	err := r.DB.Where("active = ?", true).First(&s).Error
	return &s, err
}

func (r *SessionRepository) List() ([]model.Session, error) {
	var sessions []model.Session
	err := r.DB.Order("name desc").Find(&sessions).Error
	return sessions, err
}

// Activate makes one session active and deactivates all others, atomically.
func (r *SessionRepository) Activate(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Session{}).Where("active = ?", true).Update("active", false).Error; err != nil {
			return err
		}
		res := tx.Model(&model.Session{}).Where("id = ?", id).Update("active", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *SessionRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Session{}, id).Error
}
