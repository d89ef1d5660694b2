package repository

import (
	"thesistrack_backend/internal/model"

	"gorm.io/gorm"
)

type PanelRepository struct {
	DB *gorm.DB
}

func NewPanelRepository(db *gorm.DB) *PanelRepository {
	return &PanelRepository{DB: db}
}

// Replace sets the assignee for a (student, role) pair, returning the
// previous assignee id (0 if none) for the audit trail.
func (r *PanelRepository) Replace(studentID uint, role string, assigneeID uint) (previous uint, err error) {
	err = r.DB.Transaction(func(tx *gorm.DB) error {
		var existing model.PanelAssignment
		findErr := tx.Where("student_id = ? AND role = ?", studentID, role).First(&existing).Error
		switch {
		case findErr == nil:
			previous = existing.AssigneeID
			existing.AssigneeID = assigneeID
			return tx.Save(&existing).Error
		case findErr == gorm.ErrRecordNotFound:
			return tx.Create(&model.PanelAssignment{
				StudentID:  studentID,
				Role:       role,
				AssigneeID: assigneeID,
			}).Error
		default:
			return findErr
		}
	})
	return previous, err
}

func (r *PanelRepository) ListForStudent(studentID uint) ([]model.PanelAssignment, error) {
	var assignments []model.PanelAssignment
	err := r.DB.Preload("Assignee").
		Where("student_id = ?", studentID).
		Find(&assignments).Error
	return assignments, err
}

// ListForAssignee returns the students a lecturer sits on a panel for.
func (r *PanelRepository) ListForAssignee(assigneeID uint) ([]model.PanelAssignment, error) {
	var assignments []model.PanelAssignment
	err := r.DB.Where("assignee_id = ?", assigneeID).Find(&assignments).Error
	return assignments, err
}

func (r *PanelRepository) Remove(studentID uint, role string) error {
	return r.DB.Where("student_id = ? AND role = ?", studentID, role).
		Delete(&model.PanelAssignment{}).Error
}
