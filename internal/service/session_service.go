package service

import (
	"thesistrack_backend/internal/model"
	"thesistrack_backend/internal/repository"
	"thesistrack_backend/internal/util"

	"gorm.io/gorm"
)

type SessionService struct {
	Repo *repository.SessionRepository
}

func NewSessionService(repo *repository.SessionRepository) *SessionService {
	return &SessionService{Repo: repo}
}

type SessionRequest struct {
	Name   string `json:"name" binding:"required"`
	Active bool   `json:"active"`
}

func (s *SessionService) Create(req SessionRequest) (*model.Session, error) {
	session := &model.Session{Name: req.Name}
	if err := s.Repo.Create(session); err != nil {
		return nil, err
	}
	if req.Active {
		if err := s.Repo.Activate(session.ID); err != nil {
			return nil, err
		}
		session.Active = true
	}
	return session, nil
}

func (s *SessionService) List() ([]model.Session, error) {
	return s.Repo.List()
}

func (s *SessionService) Get(id uint) (*model.Session, error) {
	session, err := s.Repo.FindByID(id)
	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrSessionNotFound
	}
	return session, err
}

func (s *SessionService) Active() (*model.Session, error) {
	session, err := s.Repo.FindActive()
	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrNoActiveSession
	}
	return session, err
}

func (s *SessionService) Activate(id uint) error {
	err := s.Repo.Activate(id)
	if err == gorm.ErrRecordNotFound {
		return util.ErrSessionNotFound
	}
	return err
}

func (s *SessionService) Delete(id uint) error {
	return s.Repo.Delete(id)
}
