package model

import (
	"time"

	"github.com/google/uuid"
)

// ListingModel is the GORM-specific struct for the 'listings' table.
// Status and Version together form the compare-and-swap key of every transition.
type ListingModel struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID              uuid.UUID `gorm:"type:uuid;not null;index:idx_listings_owner_status,priority:1"`
	Title                string    `gorm:"type:varchar(200);not null"`
	Description          string    `gorm:"type:text"`
	Price                *float64  `gorm:"type:decimal(14,2)"`
	Address              string    `gorm:"type:text;not null"`
	NormalizedAddress    string    `gorm:"type:text;not null;index"`
	Latitude             *float64  `gorm:"type:decimal(10,8);index:idx_listings_coordinates,priority:1"`
	Longitude            *float64  `gorm:"type:decimal(11,8);index:idx_listings_coordinates,priority:2"`
	Status               string    `gorm:"type:varchar(32);not null;index:idx_listings_owner_status,priority:2"`
	IsDuplicate          bool      `gorm:"not null"`
	FlaggedForReview     bool      `gorm:"not null"`
	VerifiedAt           *time.Time
	RejectionReason      string `gorm:"type:text"`
	ScheduledVettingDate *time.Time
	MLVerdict            string   `gorm:"column:ml_verdict;type:varchar(32)"`
	MLConfidenceScore    *float64 `gorm:"column:ml_confidence_score"`
	Version              int64    `gorm:"not null"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// TableName explicitly sets the table name for GORM.
func (ListingModel) TableName() string {
	return "listings"
}
