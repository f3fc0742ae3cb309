package repository

import (
	"time"

	"go-pharmacy-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationRepository interface {
	Create(notification *model.Notification) error
	FindUnread(userID uuid.UUID) ([]model.Notification, error)
	FindByID(id uuid.UUID) (*model.Notification, error)
	MarkRead(id uuid.UUID, readAt time.Time) error
	MarkAllRead(userID uuid.UUID, readAt time.Time) error
	Delete(id uuid.UUID) error
	DeleteRead(userID uuid.UUID) error
	PurgeReadOlderThan(cutoff time.Time) (int64, error)
}

type notificationRepo struct {
	db *gorm.DB
}

func NewNotificationRepo(db *gorm.DB) NotificationRepository {
	return &notificationRepo{db}
}

func (r *notificationRepo) Create(notification *model.Notification) error {
	return r.db.Create(notification).Error
}

// FindUnread returns unread rows addressed to the user plus broadcasts.
func (r *notificationRepo) FindUnread(userID uuid.UUID) ([]model.Notification, error) {
	var notifications []model.Notification
	err := r.db.Where("is_read = false AND (user_id IS NULL OR user_id = ?)", userID).
		Order("created_at DESC").Find(&notifications).Error
	return notifications, err
}

func (r *notificationRepo) FindByID(id uuid.UUID) (*model.Notification, error) {
	var notification model.Notification
	if err := r.db.First(&notification, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &notification, nil
}

func (r *notificationRepo) MarkRead(id uuid.UUID, readAt time.Time) error {
	return r.db.Model(&model.Notification{}).Where("id = ?", id).
		Updates(map[string]interface{}{"is_read": true, "read_at": readAt}).Error
}

func (r *notificationRepo) MarkAllRead(userID uuid.UUID, readAt time.Time) error {
	return r.db.Model(&model.Notification{}).
		Where("is_read = false AND (user_id IS NULL OR user_id = ?)", userID).
		Updates(map[string]interface{}{"is_read": true, "read_at": readAt}).Error
}

func (r *notificationRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Notification{}, "id = ?", id).Error
}

func (r *notificationRepo) DeleteRead(userID uuid.UUID) error {
	return r.db.Where("is_read = true AND (user_id IS NULL OR user_id = ?)", userID).
		Delete(&model.Notification{}).Error
}

func (r *notificationRepo) PurgeReadOlderThan(cutoff time.Time) (int64, error) {
	res := r.db.Unscoped().Where("is_read = true AND read_at < ?", cutoff).
		Delete(&model.Notification{})
	return res.RowsAffected, res.Error
}
