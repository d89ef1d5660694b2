package repository

import (
	"context"
	"encoding/json"
	"thesistrack_backend/internal/model"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

const dayViewTTL = 5 * time.Minute

type DefenseRepository struct {
	DB  *gorm.DB
	RDB *redis.Client
}

func NewDefenseRepository(db *gorm.DB, rdb *redis.Client) *DefenseRepository {
	return &DefenseRepository{DB: db, RDB: rdb}
}

func (r *DefenseRepository) Create(s *model.DefenseSchedule) error {
	if err := r.DB.Create(s).Error; err != nil {
		return err
	}
	r.invalidateDay(s.Date)
	return nil
}

func (r *DefenseRepository) FindByID(id uint) (*model.DefenseSchedule, error) {
	var s model.DefenseSchedule
	err := r.DB.Preload("Session").Preload("Chair").
		Preload("Students").Preload("Students.User").
		First(&s, id).Error
	return &s, err
}

func (r *DefenseRepository) List(page, limit int, sessionID uint, program string, from, to *time.Time) ([]model.DefenseSchedule, int64, error) {
	var schedules []model.DefenseSchedule
	var total int64

	query := r.DB.Model(&model.DefenseSchedule{})
	if sessionID > 0 {
		query = query.Where("session_id = ?", sessionID)
	}
	if program != "" {
		query = query.Where("program = ?", program)
	}
	if from != nil {
		query = query.Where("date >= ?", *from)
	}
	if to != nil {
		query = query.Where("date <= ?", *to)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := query.Preload("Session").Preload("Chair").
		Order("date asc").Offset(offset).Limit(limit).
		Find(&schedules).Error
	return schedules, total, err
}

func (r *DefenseRepository) Update(s *model.DefenseSchedule) error {
	if err := r.DB.Session(&gorm.Session{FullSaveAssociations: true}).Save(s).Error; err != nil {
		return err
	}
	r.invalidateDay(s.Date)
	return nil
}

func (r *DefenseRepository) ReplaceStudents(s *model.DefenseSchedule, students []model.StudentRecord) error {
	return r.DB.Model(s).Association("Students").Replace(students)
}

func (r *DefenseRepository) Delete(id uint) error {
	return r.DB.Delete(&model.DefenseSchedule{}, id).Error
}

// DayView returns all defenses on the given day, served from the Redis cache
// when warm. The cache only short-circuits reads; writes always go to MySQL.
func (r *DefenseRepository) DayView(ctx context.Context, day time.Time) ([]model.DefenseSchedule, error) {
	key := dayViewKey(day)
	if r.RDB != nil {
		if raw, err := r.RDB.Get(ctx, key).Bytes(); err == nil {
			var cached []model.DefenseSchedule
			if json.Unmarshal(raw, &cached) == nil {
				return cached, nil
			}
		}
	}

	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.Add(24 * time.Hour)

	var schedules []model.DefenseSchedule
	err := r.DB.Preload("Session").Preload("Chair").
		Preload("Students").Preload("Students.User").
		Where("date >= ? AND date < ?", start, end).
		Order("date asc").
		Find(&schedules).Error
	if err != nil {
		return nil, err
	}

	if r.RDB != nil {
		if raw, err := json.Marshal(schedules); err == nil {
			r.RDB.Set(ctx, key, raw, dayViewTTL)
		}
	}
	return schedules, nil
}

func (r *DefenseRepository) invalidateDay(day time.Time) {
	if r.RDB != nil {
		r.RDB.Del(context.Background(), dayViewKey(day))
	}
}

func dayViewKey(day time.Time) string {
	return "defense:day:" + day.Format("2006-01-02")
}
