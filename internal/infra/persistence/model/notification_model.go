package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationModel mirrors the 'notifications' table. A NULL user_id
// addresses the notification to the shared admin channel.
type NotificationModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    *uuid.UUID `gorm:"type:uuid;index"`
	Type      string     `gorm:"type:varchar(50);not null"`
	Message   string     `gorm:"type:text;not null"`
	Read      bool       `gorm:"not null;default:false"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}
