package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NotificationOutboxModel is the GORM-specific struct for the 'notification_outbox' table.
// Rows are inserted in the transaction of the listing transition they describe.
type NotificationOutboxModel struct {
	ID            uuid.UUID         `gorm:"type:uuid;primaryKey"`
	RecipientID   uuid.UUID         `gorm:"type:uuid;not null"`
	ListingID     uuid.UUID         `gorm:"type:uuid;not null;index"`
	AuditEntryID  *uuid.UUID        `gorm:"type:uuid"`
	Kind          string            `gorm:"type:varchar(64);not null"`
	Title         string            `gorm:"type:text;not null"`
	Body          string            `gorm:"type:text;not null"`
	Payload       datatypes.JSONMap `gorm:"not null"`
	Status        string            `gorm:"type:varchar(16);not null;index:idx_notification_outbox_due,priority:1"`
	Attempts      int               `gorm:"not null"`
	NextAttemptAt time.Time         `gorm:"not null;index:idx_notification_outbox_due,priority:2"`
	LastError     string            `gorm:"type:text"`
	CreatedAt     time.Time
	DeliveredAt   *time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationOutboxModel) TableName() string {
	return "notification_outbox"
}
