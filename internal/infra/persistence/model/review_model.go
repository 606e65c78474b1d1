package model

import (
	"time"

	"github.com/google/uuid"
)

// ReviewModel is the GORM-specific struct for the 'reviews' table.
// Rows are append-only; there is no update or delete path.
type ReviewModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	FacilityID      uuid.UUID `gorm:"type:uuid;not null;index:idx_reviews_on_facility_time,priority:1"`
	UserID          string    `gorm:"type:varchar(128);not null"`
	UserDisplayName string    `gorm:"type:varchar(255);not null"`
	Rating          int       `gorm:"not null"`
	Comment         string    `gorm:"type:text"`

	WaitTime      *float64 `gorm:"type:decimal(7,3)"`
	CrowdingLevel *string  `gorm:"type:varchar(16)"`

	// Timestamp drives the newest-first listing index.
	Timestamp time.Time `gorm:"not null;index:idx_reviews_on_facility_time,priority:2,sort:desc"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
