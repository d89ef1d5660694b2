package service

import (
	"context"
	"fmt"
	"time"

	"thesistrack_backend/internal/model"
	"thesistrack_backend/internal/progression"
	"thesistrack_backend/internal/repository"
	"thesistrack_backend/internal/util"

	"gorm.io/gorm"
)

type DefenseService struct {
	Repo          *repository.DefenseRepository
	StudentRepo   *repository.StudentRepository
	UserRepo      *repository.UserRepository
	SessionRepo   *repository.SessionRepository
	Notifications *NotificationService
}

func NewDefenseService(repo *repository.DefenseRepository, studentRepo *repository.StudentRepository, userRepo *repository.UserRepository, sessionRepo *repository.SessionRepository, notifications *NotificationService) *DefenseService {
	return &DefenseService{Repo: repo, StudentRepo: studentRepo, UserRepo: userRepo, SessionRepo: sessionRepo, Notifications: notifications}
}

type ScheduleDefenseRequest struct {
	SessionID  uint      `json:"sessionId"`
	Program    string    `json:"program" binding:"required,oneof=msc phd"`
	Stage      string    `json:"stage" binding:"required"`
	Date       time.Time `json:"date" binding:"required"`
	Venue      string    `json:"venue"`
	ChairID    *uint     `json:"chairId"`
	StudentIDs []uint    `json:"studentIds"`
}

// Schedule books a defense sitting. Every listed student must belong to the
// program and currently sit at the scheduled stage.
func (s *DefenseService) Schedule(req ScheduleDefenseRequest) (*model.DefenseSchedule, error) {
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

	if req.ChairID != nil {
		chair, err := s.UserRepo.FindByID(*req.ChairID)
		if err != nil {
			return nil, util.ErrUserNotFound
		}
		if !chair.IsLecturer() {
			return nil, util.ErrAssigneeNotLecturer
		}
	}

	students, err := s.resolveStudents(req.StudentIDs, req.Program, req.Stage)
	if err != nil {
		return nil, err
	}

	schedule := &model.DefenseSchedule{
		SessionID: sessionID,
		Program:   req.Program,
		Stage:     req.Stage,
		Date:      req.Date,
		Venue:     req.Venue,
		ChairID:   req.ChairID,
		Students:  students,
	}
	if err := s.Repo.Create(schedule); err != nil {
		return nil, err
	}

	go s.notifyScheduled(schedule)
	return schedule, nil
}

func (s *DefenseService) resolveStudents(ids []uint, program, stage string) ([]model.StudentRecord, error) {
	students := make([]model.StudentRecord, 0, len(ids))
	for _, id := range ids {
		student, err := s.StudentRepo.FindByID(id)
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrStudentNotFound
		}
		if err != nil {
			return nil, err
		}
		if student.Program != program {
			return nil, progression.ErrUnknownProgram
		}
		if student.CurrentStage != stage {
			return nil, progression.ErrStageMismatch
		}
		students = append(students, *student)
	}
	return students, nil
}

func (s *DefenseService) notifyScheduled(schedule *model.DefenseSchedule) {
	when := schedule.Date.Format("2006-01-02 15:04")
	for _, student := range schedule.Students {
		s.Notifications.Notify(student.UserID, model.NotifyDefenseScheduled,
			"Defense scheduled",
			fmt.Sprintf("Your %s defense is scheduled for %s at %s.", schedule.Stage, when, schedule.Venue))
	}
	if schedule.ChairID != nil {
		s.Notifications.Notify(*schedule.ChairID, model.NotifyDefenseScheduled,
			"Defense chairing",
			fmt.Sprintf("You chair a %s defense sitting on %s at %s.", schedule.Stage, when, schedule.Venue))
	}
}

func (s *DefenseService) Get(id uint) (*model.DefenseSchedule, error) {
	schedule, err := s.Repo.FindByID(id)
	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrScheduleNotFound
	}
	return schedule, err
}

func (s *DefenseService) List(page, limit int, sessionID uint, program string, from, to *time.Time) ([]model.DefenseSchedule, int64, error) {
	return s.Repo.List(page, limit, sessionID, program, from, to)
}

func (s *DefenseService) DayView(ctx context.Context, day time.Time) ([]model.DefenseSchedule, error) {
	return s.Repo.DayView(ctx, day)
}

type UpdateDefenseRequest struct {
	Date       *time.Time `json:"date"`
	Venue      string     `json:"venue"`
	ChairID    *uint      `json:"chairId"`
	StudentIDs *[]uint    `json:"studentIds"`
}

func (s *DefenseService) Update(id uint, req UpdateDefenseRequest) (*model.DefenseSchedule, error) {
	schedule, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.Date != nil {
		schedule.Date = *req.Date
	}
	if req.Venue != "" {
		schedule.Venue = req.Venue
	}
	if req.ChairID != nil {
		chair, err := s.UserRepo.FindByID(*req.ChairID)
		if err != nil {
			return nil, util.ErrUserNotFound
		}
		if !chair.IsLecturer() {
			return nil, util.ErrAssigneeNotLecturer
		}
		schedule.ChairID = req.ChairID
	}
	if req.StudentIDs != nil {
		students, err := s.resolveStudents(*req.StudentIDs, schedule.Program, schedule.Stage)
		if err != nil {
			return nil, err
		}
		if err := s.Repo.ReplaceStudents(schedule, students); err != nil {
			return nil, err
		}
		schedule.Students = students
	}

	if err := s.Repo.Update(schedule); err != nil {
		return nil, err
	}
	go s.notifyScheduled(schedule)
	return schedule, nil
}

func (s *DefenseService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.Repo.Delete(id)
}
