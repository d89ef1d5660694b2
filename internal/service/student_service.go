package service

import (
	"thesistrack_backend/internal/model"
	"thesistrack_backend/internal/progression"
	"thesistrack_backend/internal/repository"
	"thesistrack_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type StudentService struct {
	Repo        *repository.StudentRepository
	UserRepo    *repository.UserRepository
	SessionRepo *repository.SessionRepository
}

func NewStudentService(repo *repository.StudentRepository, userRepo *repository.UserRepository, sessionRepo *repository.SessionRepository) *StudentService {
	return &StudentService{Repo: repo, UserRepo: userRepo, SessionRepo: sessionRepo}
}

type EnrollStudentRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	MatricNo    string `json:"matricNo" binding:"required"`
	Program     string `json:"program" binding:"required,oneof=msc phd"`
	SessionID   uint   `json:"sessionId"`
	Department  string `json:"department"`
	ThesisTitle string `json:"thesisTitle"`
}

// Enroll creates the student's account and progress record in one step. The
// record starts at the Start stage of its program (a fresh engine record
// guards the program value).
func (s *StudentService) Enroll(req EnrollStudentRequest) (*model.StudentRecord, error) {
	if _, err := progression.NewRecord(req.MatricNo, progression.Program(req.Program)); err != nil {
		return nil, err
	}

	sessionID := req.SessionID
	if sessionID == 0 {
		active, err := s.SessionRepo.FindActive()
		if err != nil {
			return nil, util.ErrNoActiveSession
		}
		sessionID = active.ID
	} else if _, err := s.SessionRepo.FindByID(sessionID); err != nil {
		return nil, util.ErrSessionNotFound
	}

	if _, err := s.Repo.FindByMatricNo(req.MatricNo); err == nil {
		return nil, util.ErrMatricNoRegistered
	} else if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	if _, err := s.UserRepo.FindByEmail(req.Email); err == nil {
		return nil, util.ErrEmailRegistered
	} else if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:       req.Name,
		Email:      req.Email,
		Password:   string(hashed),
		Role:       model.Student,
		Department: req.Department,
	}
	if err := s.UserRepo.Create(user); err != nil {
		return nil, err
	}

	record := &model.StudentRecord{
		UserID:       user.ID,
		SessionID:    sessionID,
		MatricNo:     req.MatricNo,
		Program:      req.Program,
		Department:   req.Department,
		ThesisTitle:  req.ThesisTitle,
		CurrentStage: string(progression.StageStart),
	}
	if err := s.Repo.Create(record); err != nil {
		return nil, err
	}
	record.User = user
	return record, nil
}

func (s *StudentService) Get(id uint) (*model.StudentRecord, error) {
	record, err := s.Repo.FindByID(id)
	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrStudentNotFound
	}
	return record, err
}

func (s *StudentService) GetByUserID(userID uint) (*model.StudentRecord, error) {
	record, err := s.Repo.FindByUserID(userID)
	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrStudentNotFound
	}
	return record, err
}

func (s *StudentService) List(page, limit int, sessionID uint, program, stage, name string) ([]model.StudentRecord, int64, error) {
	return s.Repo.List(page, limit, sessionID, program, stage, name)
}

type UpdateStudentRequest struct {
	Department  string `json:"department"`
	ThesisTitle string `json:"thesisTitle"`
}

func (s *StudentService) Update(id uint, req UpdateStudentRequest) (*model.StudentRecord, error) {
	record, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if req.Department != "" {
		record.Department = req.Department
	}
	if req.ThesisTitle != "" {
		record.ThesisTitle = req.ThesisTitle
	}
	if err := s.Repo.Update(record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *StudentService) Delete(id uint) error {
	return s.Repo.Delete(id)
}
