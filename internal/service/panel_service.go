package service

import (
	"fmt"

	"thesistrack_backend/internal/model"
	"thesistrack_backend/internal/progression"
	"thesistrack_backend/internal/repository"
	"thesistrack_backend/internal/util"

	"gorm.io/gorm"
)

type PanelService struct {
	Repo          *repository.PanelRepository
	StudentRepo   *repository.StudentRepository
	UserRepo      *repository.UserRepository
	Notifications *NotificationService
}

func NewPanelService(repo *repository.PanelRepository, studentRepo *repository.StudentRepository, userRepo *repository.UserRepository, notifications *NotificationService) *PanelService {
	return &PanelService{Repo: repo, StudentRepo: studentRepo, UserRepo: userRepo, Notifications: notifications}
}

type AssignPanelRequest struct {
	Role       string `json:"role" binding:"required"`
	AssigneeID uint   `json:"assigneeId" binding:"required"`
}

// Assign puts a lecturer on a student's panel for one role, replacing any
// prior assignee. The replaced assignee's ID is returned for audit.
func (s *PanelService) Assign(studentID uint, req AssignPanelRequest) (*model.PanelAssignment, uint, error) {
	if !progression.ValidPanelRole(progression.PanelRole(req.Role)) {
		return nil, 0, progression.ErrUnknownPanelRole
	}

	student, err := s.StudentRepo.FindByID(studentID)
	if err == gorm.ErrRecordNotFound {
		return nil, 0, util.ErrStudentNotFound
	}
	if err != nil {
		return nil, 0, err
	}

	assignee, err := s.UserRepo.FindByID(req.AssigneeID)
	if err == gorm.ErrRecordNotFound {
		return nil, 0, util.ErrUserNotFound
	}
	if err != nil {
		return nil, 0, err
	}
	if !assignee.IsLecturer() {
		return nil, 0, util.ErrAssigneeNotLecturer
	}

	previous, err := s.Repo.Replace(student.ID, req.Role, assignee.ID)
	if err != nil {
		return nil, 0, err
	}

	go s.Notifications.Notify(assignee.ID, model.NotifyPanelAssigned,
		"Panel assignment",
		fmt.Sprintf("You have been assigned as %s for %s.", req.Role, student.MatricNo))

	assignments, err := s.Repo.ListForStudent(student.ID)
	if err != nil {
		return nil, previous, err
	}
	for i := range assignments {
		if assignments[i].Role == req.Role {
			return &assignments[i], previous, nil
		}
	}
	return nil, previous, nil
}

func (s *PanelService) ListForStudent(studentID uint) ([]model.PanelAssignment, error) {
	return s.Repo.ListForStudent(studentID)
}

func (s *PanelService) ListForAssignee(assigneeID uint) ([]model.PanelAssignment, error) {
	return s.Repo.ListForAssignee(assigneeID)
}

func (s *PanelService) Remove(studentID uint, role string) error {
	if !progression.ValidPanelRole(progression.PanelRole(role)) {
		return progression.ErrUnknownPanelRole
	}
	return s.Repo.Remove(studentID, role)
}

// IsPanelMember reports whether a user holds any panel role for the student.
func (s *PanelService) IsPanelMember(studentID, userID uint) (bool, error) {
	assignments, err := s.Repo.ListForStudent(studentID)
	if err != nil {
		return false, err
	}
	for _, a := range assignments {
		if a.AssigneeID == userID {
			return true, nil
		}
	}
	return false, nil
}

// HoldsRole reports whether a user holds one specific panel role for the
// student, used for the major supervisor approval gate.
func (s *PanelService) HoldsRole(studentID, userID uint, role progression.PanelRole) (bool, error) {
	assignments, err := s.Repo.ListForStudent(studentID)
	if err != nil {
		return false, err
	}
	for _, a := range assignments {
		if a.AssigneeID == userID && a.Role == string(role) {
			return true, nil
		}
	}
	return false, nil
}
