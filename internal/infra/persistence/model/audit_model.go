package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AuditEntryModel is the GORM-specific struct for the append-only 'audit_entries' table.
type AuditEntryModel struct {
	ID        uuid.UUID         `gorm:"type:uuid;primaryKey"`
	ActorID   uuid.UUID         `gorm:"type:uuid;not null"`
	Action    string            `gorm:"type:varchar(64);not null"`
	TargetID  uuid.UUID         `gorm:"type:uuid;not null;index:idx_audit_entries_target_created,priority:1"`
	Details   datatypes.JSONMap `gorm:"not null"`
	RequestID string            `gorm:"type:varchar(64)"`
	CreatedAt time.Time         `gorm:"not null;index:idx_audit_entries_target_created,priority:2"`
}

// TableName explicitly sets the table name for GORM.
func (AuditEntryModel) TableName() string {
	return "audit_entries"
}
