package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DeviceModel maps the 'owner_devices' table. A client device id is unique per owner.
type DeviceModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	OwnerID   uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_owner_devices_owner_device,priority:1"`
	DeviceID  string         `gorm:"type:varchar(255);not null;uniqueIndex:idx_owner_devices_owner_device,priority:2"`
	FCMToken  string         `gorm:"type:varchar(255);not null;index"`
	Platform  string         `gorm:"type:varchar(16);not null"`
	IsActive  bool           `gorm:"not null"`
	CreatedAt time.Time      `gorm:"not null"`
	UpdatedAt time.Time      `gorm:"not null"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (DeviceModel) TableName() string {
	return "owner_devices"
}
