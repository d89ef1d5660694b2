package repository

import (
	"context"
	"fmt"
	"thesistrack_backend/internal/model"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

const unreadCountTTL = 10 * time.Minute

type NotificationRepository struct {
	DB  *gorm.DB
	RDB *redis.Client
}

func NewNotificationRepository(db *gorm.DB, rdb *redis.Client) *NotificationRepository {
	return &NotificationRepository{DB: db, RDB: rdb}
}

func (r *NotificationRepository) Create(n *model.Notification) error {
	if err := r.DB.Create(n).Error; err != nil {
		return err
	}
	r.invalidateUnread(n.UserID)
	return nil
}

func (r *NotificationRepository) ListForUser(userID uint, page, limit int, unreadOnly bool) ([]model.Notification, int64, error) {
	var notifications []model.Notification
	var total int64

	query := r.DB.Model(&model.Notification{}).Where("user_id = ?", userID)
	if unreadOnly {
		query = query.Where("`read` = ?", false)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&notifications).Error
	return notifications, total, err
}

func (r *NotificationRepository) MarkRead(userID, notificationID uint) error {
	err := r.DB.Model(&model.Notification{}).
		Where("id = ? AND user_id = ?", notificationID, userID).
		Update("read", true).Error
	if err == nil {
		r.invalidateUnread(userID)
	}
	return err
}

func (r *NotificationRepository) MarkAllRead(userID uint) error {
	err := r.DB.Model(&model.Notification{}).
		Where("user_id = ? AND `read` = ?", userID, false).
		Update("read", true).Error
	if err == nil {
		r.invalidateUnread(userID)
	}
	return err
}

// UnreadCount serves from the Redis cache when warm; on miss it counts in
// MySQL and primes the cache.
func (r *NotificationRepository) UnreadCount(ctx context.Context, userID uint) (int64, error) {
	key := unreadKey(userID)
	if r.RDB != nil {
		if n, err := r.RDB.Get(ctx, key).Int64(); err == nil {
			return n, nil
		}
	}

	var count int64
	err := r.DB.Model(&model.Notification{}).
		Where("user_id = ? AND `read` = ?", userID, false).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	if r.RDB != nil {
		r.RDB.Set(ctx, key, count, unreadCountTTL)
	}
	return count, nil
}

func (r *NotificationRepository) invalidateUnread(userID uint) {
	if r.RDB != nil {
		r.RDB.Del(context.Background(), unreadKey(userID))
	}
}

func unreadKey(userID uint) string {
	return fmt.Sprintf("notify:unread:%d", userID)
}
