package jobs

import (
	"context"
	"log"
	"time"

	"go-pharmacy-api/internal/model"
	"go-pharmacy-api/internal/repository"
	"go-pharmacy-api/internal/service"

	"github.com/hibiken/asynq"
	"gorm.io/gorm"
)

const (
	QueueDefault = "default"

	// TaskCreditOverdueScan flags unsettled credits past their due date.
	TaskCreditOverdueScan = "credit:overdue_scan"
	// TaskNotificationPurge drops read notifications older than the
	// retention window.
	TaskNotificationPurge = "notification:purge_read"
	// TaskExpiryScan raises notifications for batches expiring soon.
	TaskExpiryScan = "product:expiry_scan"
)

const (
	notificationRetention = 30 * 24 * time.Hour
	expiryWindow          = 90 * 24 * time.Hour
)

// Handlers bundles the task implementations with their dependencies.
type Handlers struct {
	credits          service.CreditService
	notifications    service.NotificationService
	notificationRepo repository.NotificationRepository
	db               *gorm.DB
}

func NewHandlers(
	credits service.CreditService,
	notifications service.NotificationService,
	notificationRepo repository.NotificationRepository,
	db *gorm.DB,
) *Handlers {
	return &Handlers{
		credits:          credits,
		notifications:    notifications,
		notificationRepo: notificationRepo,
		db:               db,
	}
}

func (h *Handlers) HandleCreditOverdueScan(ctx context.Context, t *asynq.Task) error {
	flagged, err := h.credits.MarkOverdue(time.Now())
	if err != nil {
		return err
	}
	if flagged > 0 {
		log.Printf("jobs: flagged %d overdue credits", flagged)
	}
	return nil
}

func (h *Handlers) HandleNotificationPurge(ctx context.Context, t *asynq.Task) error {
	purged, err := h.notificationRepo.PurgeReadOlderThan(time.Now().Add(-notificationRetention))
	if err != nil {
		return err
	}
	if purged > 0 {
		log.Printf("jobs: purged %d read notifications", purged)
	}
	return nil
}

// HandleExpiryScan notifies on batches that enter the expiry window.
// Products already past expiry keep notifying until they are retired.
func (h *Handlers) HandleExpiryScan(ctx context.Context, t *asynq.Task) error {
	var products []model.Product
	err := h.db.WithContext(ctx).
		Where("expiry_date IS NOT NULL AND expiry_date <= ? AND status = ?",
			time.Now().Add(expiryWindow), model.ProductActive).
		Find(&products).Error
	if err != nil {
		return err
	}
	for i := range products {
		h.notifications.NotifyExpiringSoon(&products[i])
	}
	if len(products) > 0 {
		log.Printf("jobs: %d products inside the expiry window", len(products))
	}
	return nil
}
