package service

import (
	"fmt"
	"time"

	"go-pharmacy-api/internal/model"
	"go-pharmacy-api/internal/repository"
	"go-pharmacy-api/internal/ws"
	"go-pharmacy-api/pkg/apierr"

	"github.com/google/uuid"
)

type NotificationService interface {
	Notifier
	Unread(userID uuid.UUID) ([]model.Notification, error)
	MarkRead(id uuid.UUID, userID uuid.UUID) error
	MarkAllRead(userID uuid.UUID) error
	Delete(id uuid.UUID) error
	ClearRead(userID uuid.UUID) error
	NotifyExpiringSoon(product *model.Product)
}

type notificationService struct {
	repo  repository.NotificationRepository
	wsHub *ws.Hub
}

func NewNotificationService(repo repository.NotificationRepository, hub *ws.Hub) NotificationService {
	return &notificationService{repo: repo, wsHub: hub}
}

// NotifyLowStock raises a broadcast notification when a product drops
// to or below its minimum level. Errors are swallowed: a failed
// notification never fails the stock movement that triggered it.
func (s *notificationService) NotifyLowStock(product *model.Product) {
	notification := &model.Notification{
		Type:    model.NotifyLowStock,
		Title:   "Low stock",
		Message: fmt.Sprintf("'%s' is down to %.2f (minimum %.2f)", product.Name, product.Quantity, product.MinLevel),
	}
	if err := s.repo.Create(notification); err != nil {
		return
	}
	s.wsHub.BroadcastJSON(map[string]interface{}{
		"type":         "notification",
		"notification": notification,
	})
}

func (s *notificationService) NotifyExpiringSoon(product *model.Product) {
	notification := &model.Notification{
		Type:    model.NotifyExpiry,
		Title:   "Expiry approaching",
		Message: fmt.Sprintf("Batch %s of '%s' expires soon", product.BatchNumber, product.Name),
	}
	if err := s.repo.Create(notification); err != nil {
		return
	}
	s.wsHub.BroadcastJSON(map[string]interface{}{
		"type":         "notification",
		"notification": notification,
	})
}

func (s *notificationService) Unread(userID uuid.UUID) ([]model.Notification, error) {
	return s.repo.FindUnread(userID)
}

// MarkRead lets a user mark a notification addressed to them (or a
// broadcast) as read; other users' notifications stay untouched.
func (s *notificationService) MarkRead(id uuid.UUID, userID uuid.UUID) error {
	notification, err := s.repo.FindByID(id)
	if err != nil {
		return apierr.NotFound("notification")
	}
	if notification.UserID != nil && *notification.UserID != userID {
		return apierr.Forbidden("notification belongs to another user")
	}
	return s.repo.MarkRead(id, time.Now())
}

func (s *notificationService) MarkAllRead(userID uuid.UUID) error {
	return s.repo.MarkAllRead(userID, time.Now())
}

func (s *notificationService) Delete(id uuid.UUID) error {
	if _, err := s.repo.FindByID(id); err != nil {
		return apierr.NotFound("notification")
	}
	return s.repo.Delete(id)
}

func (s *notificationService) ClearRead(userID uuid.UUID) error {
	return s.repo.DeleteRead(userID)
}
