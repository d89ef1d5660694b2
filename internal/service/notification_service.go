package service

import (
	"context"

	"thesistrack_backend/internal/model"
	"thesistrack_backend/internal/repository"
	"thesistrack_backend/pkg/logger"

	"go.uber.org/zap"
)

type NotificationService struct {
	Repo *repository.NotificationRepository
}

func NewNotificationService(repo *repository.NotificationRepository) *NotificationService {
	return &NotificationService{Repo: repo}
}

// Notify persists a notification for one user. Callers fire it from a
// goroutine after the triggering write commits; failures are logged, never
// propagated into the request path.
func (s *NotificationService) Notify(userID uint, kind, title, body string) {
	n := &model.Notification{
		UserID: userID,
		Type:   kind,
		Title:  title,
		Body:   body,
	}
	if err := s.Repo.Create(n); err != nil {
		logger.Log.Warn("create notification failed",
			zap.Uint("userID", userID),
			zap.String("type", kind),
			zap.Error(err))
	}
}

// NotifyAll fans one notification out to several users.
func (s *NotificationService) NotifyAll(userIDs []uint, kind, title, body string) {
	for _, id := range userIDs {
		if id == 0 {
			continue
		}
		s.Notify(id, kind, title, body)
	}
}

func (s *NotificationService) List(userID uint, page, limit int, unreadOnly bool) ([]model.Notification, int64, error) {
	return s.Repo.ListForUser(userID, page, limit, unreadOnly)
}

func (s *NotificationService) MarkRead(userID, notificationID uint) error {
	return s.Repo.MarkRead(userID, notificationID)
}

func (s *NotificationService) MarkAllRead(userID uint) error {
	return s.Repo.MarkAllRead(userID)
}

func (s *NotificationService) UnreadCount(ctx context.Context, userID uint) (int64, error) {
	return s.Repo.UnreadCount(ctx, userID)
}
