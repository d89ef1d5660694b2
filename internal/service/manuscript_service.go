package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"thesistrack_backend/internal/model"
	"thesistrack_backend/internal/repository"
	"thesistrack_backend/internal/util"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ManuscriptService struct {
	Repo          *repository.ManuscriptRepository
	StudentRepo   *repository.StudentRepository
	Storage       *StorageService
	Panels        *PanelService
	Notifications *NotificationService
}

func NewManuscriptService(repo *repository.ManuscriptRepository, studentRepo *repository.StudentRepository, storage *StorageService, panels *PanelService, notifications *NotificationService) *ManuscriptService {
	return &ManuscriptService{Repo: repo, StudentRepo: studentRepo, Storage: storage, Panels: panels, Notifications: notifications}
}

func allowedExtension(fileName string) bool {
	ext := strings.ToLower(filepath.Ext(fileName))
	for _, allowed := range util.AllowedManuscriptExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// Upload stores a manuscript revision for the student's current stage and
// notifies the panel. Revisions number from 1 per (student, stage).
func (s *ManuscriptService) Upload(ctx context.Context, studentID, uploaderID uint, fileName, contentType string, size int64, reader io.Reader) (*model.Manuscript, error) {
	student, err := s.StudentRepo.FindByID(studentID)
	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrStudentNotFound
	}
	if err != nil {
		return nil, err
	}

	if !allowedExtension(fileName) {
		return nil, fmt.Errorf("unsupported manuscript type %q", filepath.Ext(fileName))
	}
	if size > util.MaxManuscriptMB*1024*1024 {
		return nil, fmt.Errorf("manuscript exceeds %dMB limit", util.MaxManuscriptMB)
	}

	objectName := fmt.Sprintf("manuscripts/%d/%s/%s%s",
		student.ID, student.CurrentStage, uuid.NewString(), strings.ToLower(filepath.Ext(fileName)))
	path, err := s.Storage.Provider.Upload(ctx, objectName, reader, size, contentType)
	if err != nil {
		return nil, err
	}

	manuscript := &model.Manuscript{
		StudentID:    student.ID,
		Stage:        student.CurrentStage,
		FileName:     fileName,
		StoragePath:  path,
		ContentType:  contentType,
		Size:         size,
		UploadedByID: uploaderID,
	}
	if err := s.Repo.Create(manuscript); err != nil {
		// storage write is already durable; leave the orphan for cleanup
		return nil, err
	}

	go s.notifyPanel(student, manuscript)
	return manuscript, nil
}

func (s *ManuscriptService) notifyPanel(student *model.StudentRecord, m *model.Manuscript) {
	assignments, err := s.Panels.ListForStudent(student.ID)
	if err != nil {
		return
	}
	ids := make([]uint, 0, len(assignments))
	for _, a := range assignments {
		ids = append(ids, a.AssigneeID)
	}
	s.Notifications.NotifyAll(ids, model.NotifyManuscriptUpload,
		"Manuscript uploaded",
		fmt.Sprintf("%s uploaded revision %d for the %s stage on %s.",
			student.MatricNo, m.Revision, m.Stage, time.Now().Format(util.DateFormat)))
}

func (s *ManuscriptService) Get(id uint) (*model.Manuscript, error) {
	m, err := s.Repo.FindByID(id)
	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrManuscriptNotFound
	}
	return m, err
}

// Open returns the stored file stream for download.
func (s *ManuscriptService) Open(ctx context.Context, id uint) (*model.Manuscript, io.ReadCloser, error) {
	m, err := s.Get(id)
	if err != nil {
		return nil, nil, err
	}
	reader, err := s.Storage.Provider.Open(ctx, m.StoragePath)
	if err != nil {
		return nil, nil, err
	}
	return m, reader, nil
}

func (s *ManuscriptService) ListForStudent(studentID uint, stage string) ([]model.Manuscript, error) {
	return s.Repo.ListForStudent(studentID, stage)
}
