package repository

import (
	"thesistrack_backend/internal/model"
	"thesistrack_backend/internal/util"
	"time"

	"gorm.io/gorm"
)

type StudentRepository struct {
	DB *gorm.DB
}

func NewStudentRepository(db *gorm.DB) *StudentRepository {
	return &StudentRepository{DB: db}
}

func (r *StudentRepository) Create(s *model.StudentRecord) error {
	return r.DB.Create(s).Error
}

func (r *StudentRepository) FindByID(id uint) (*model.StudentRecord, error) {
	var s model.StudentRecord
	err := r.DB.Preload("User").Preload("Session").First(&s, id).Error
	return &s, err
}

func (r *StudentRepository) FindByUserID(userID uint) (*model.StudentRecord, error) {
	var s model.StudentRecord
	err := r.DB.Preload("User").Preload("Session").
		Where("user_id = ?", userID).
		Order("created_at desc").
		First(&s).Error
	return &s, err
}

func (r *StudentRepository) FindByMatricNo(matricNo string) (*model.StudentRecord, error) {
	var s model.StudentRecord
	err := r.DB.Where("matric_no = ?", matricNo).First(&s).Error
	return &s, err
}

func (r *StudentRepository) List(page, limit int, sessionID uint, program, stage, name string) ([]model.StudentRecord, int64, error) {
	var students []model.StudentRecord
	var total int64

	query := r.DB.Model(&model.StudentRecord{}).
		Joins("LEFT JOIN users ON users.id = student_records.user_id")
	if sessionID > 0 {
		query = query.Where("student_records.session_id = ?", sessionID)
	}
	if program != "" {
		query = query.Where("student_records.program = ?", program)
	}
	if stage != "" {
		query = query.Where("student_records.current_stage = ?", stage)
	}
	if name != "" {
		query = query.Where("users.name LIKE ? OR student_records.matric_no LIKE ?", "%"+name+"%", "%"+name+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := query.Preload("User").Preload("Session").
		Order("student_records.created_at desc").
		Offset(offset).Limit(limit).
		Find(&students).Error
	return students, total, err
}

func (r *StudentRepository) Update(s *model.StudentRecord) error {
	return r.DB.Save(s).Error
}

func (r *StudentRepository) Delete(id uint) error {
	return r.DB.Delete(&model.StudentRecord{}, id).Error
}

// CountByStage groups students of a session by program and current stage for
// dashboards.
func (r *StudentRepository) CountByStage(sessionID uint) (map[string]map[string]int64, error) {
	type row struct {
		Program      string
		CurrentStage string
		N            int64
	}
	var rows []row
	query := r.DB.Model(&model.StudentRecord{}).
		Select("program, current_stage, count(*) as n").
		Group("program, current_stage")
	if sessionID > 0 {
		query = query.Where("session_id = ?", sessionID)
	}
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := map[string]map[string]int64{}
	for _, rw := range rows {
		if out[rw.Program] == nil {
			out[rw.Program] = map[string]int64{}
		}
		out[rw.Program][rw.CurrentStage] = rw.N
	}
	return out, nil
}

// ApplyProgress persists an engine-produced stage transition or approval.
// The student row is updated only when its version still matches the one the
// record was loaded at; a mismatch means a concurrent approve/advance won and
// surfaces as ErrVersionConflict so the caller re-fetches and retries.
func (r *StudentRepository) ApplyProgress(s *model.StudentRecord, loadedVersion uint, approval *model.StageApproval) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.StudentRecord{}).
			Where("id = ? AND version = ?", s.ID, loadedVersion).
			Updates(map[string]interface{}{
				"current_stage": s.CurrentStage,
				"completed":     s.Completed,
				"version":       loadedVersion + 1,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return util.ErrVersionConflict
		}
		s.Version = loadedVersion + 1

		if approval != nil {
			now := time.Now()
			approval.ApprovedAt = &now
			if err := tx.Where("student_id = ? AND stage = ?", approval.StudentID, approval.Stage).
				Assign(map[string]interface{}{
					"status":          approval.Status,
					"composite_score": approval.CompositeScore,
					"approved_by_id":  approval.ApprovedByID,
					"approved_at":     approval.ApprovedAt,
				}).
				FirstOrCreate(&model.StageApproval{}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *StudentRepository) ListApprovals(studentID uint) ([]model.StageApproval, error) {
	var approvals []model.StageApproval
	err := r.DB.Preload("ApprovedBy").
		Where("student_id = ?", studentID).
		Order("created_at asc").
		Find(&approvals).Error
	return approvals, err
}

func (r *StudentRepository) FindApproval(studentID uint, stage string) (*model.StageApproval, error) {
	var a model.StageApproval
	err := r.DB.Where("student_id = ? AND stage = ?", studentID, stage).First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// ResetProgress is the administrative correction path: it rewinds a record to
// Start and clears its approval history, under the same version discipline.
func (r *StudentRepository) ResetProgress(s *model.StudentRecord, loadedVersion uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.StudentRecord{}).
			Where("id = ? AND version = ?", s.ID, loadedVersion).
			Updates(map[string]interface{}{
				"current_stage": s.CurrentStage,
				"completed":     false,
				"version":       loadedVersion + 1,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return util.ErrVersionConflict
		}
		s.Version = loadedVersion + 1
		return tx.Where("student_id = ?", s.ID).Delete(&model.StageApproval{}).Error
	})
}
