package service

import (
	"thesistrack_backend/internal/model"
	"thesistrack_backend/internal/repository"
	"thesistrack_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	Repo *repository.UserRepository
}

func NewUserService(repo *repository.UserRepository) *UserService {
	return &UserService{Repo: repo}
}

type UpdateProfileRequest struct {
	Name       string `json:"name"`
	Department string `json:"department"`
	StaffTitle string `json:"staffTitle"`
}

func (s *UserService) UpdateProfile(userID uint, req UpdateProfileRequest) (*model.User, error) {
	user, err := s.Repo.FindByID(userID)
	if err != nil {
		return nil, util.ErrUserNotFound
	}
	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Department != "" {
		user.Department = req.Department
	}
	if req.StaffTitle != "" {
		user.StaffTitle = req.StaffTitle
	}
	if err := s.Repo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) GetUser(id uint) (*model.User, error) {
	user, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, util.ErrUserNotFound
	}
	return user, nil
}

func (s *UserService) ListUsers(page, limit int, role model.UserRole, name string) ([]model.User, int64, error) {
	return s.Repo.List(page, limit, role, name)
}

func (s *UserService) ListLecturers(role model.UserRole) ([]model.User, error) {
	return s.Repo.ListLecturers(role)
}

type AdminUpdateUserRequest struct {
	Name       string         `json:"name"`
	Role       model.UserRole `json:"role"`
	Department string         `json:"department"`
	StaffTitle string         `json:"staffTitle"`
}

func (s *UserService) AdminUpdateUser(id uint, req AdminUpdateUserRequest) (*model.User, error) {
	user, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, util.ErrUserNotFound
	}
	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Role != "" {
		user.Role = req.Role
	}
	if req.Department != "" {
		user.Department = req.Department
	}
	if req.StaffTitle != "" {
		user.StaffTitle = req.StaffTitle
	}
	if err := s.Repo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) DeleteUser(id uint) error {
	return s.Repo.Delete(id)
}

func (s *UserService) SetDisabled(id uint, disabled bool) error {
	return s.Repo.SetDisabled(id, disabled)
}

// ResetPassword sets a new password for a user and returns nothing sensitive;
// the caller communicates the temporary password out of band.
func (s *UserService) ResetPassword(id uint, newPassword string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.Repo.UpdatePassword(id, string(hashed))
}
