package model

import (
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotifyLowStock      NotificationType = "LOW_STOCK"
	NotifyCreditOverdue NotificationType = "CREDIT_OVERDUE"
	NotifyExpiry        NotificationType = "EXPIRY"
	NotifyGeneral       NotificationType = "GENERAL"
)

// Notification rows are read by interval polling; UserID nil means the
// notification is visible to everyone.
type Notification struct {
	BaseModel
	UserID  *uuid.UUID       `gorm:"type:uuid;index" json:"userId,omitempty"`
	Type    NotificationType `gorm:"type:varchar(30);not null;default:'GENERAL'" json:"type"`
	Title   string           `gorm:"type:varchar(150);not null" json:"title"`
	Message string           `gorm:"type:text" json:"message"`
	IsRead  bool             `gorm:"default:false;index" json:"isRead"`
	ReadAt  *time.Time       `json:"readAt,omitempty"`
}
