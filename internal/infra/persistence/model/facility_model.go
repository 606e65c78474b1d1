package model

import (
	"time"

	"github.com/google/uuid"
)

// FacilityModel is the GORM-specific struct for the 'facilities' table.
// The wait-time columns are nullable: a facility without wait-time reports
// stores NULL, never zero, so absence stays distinguishable.
type FacilityModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Address   string    `gorm:"type:text;not null"`
	Latitude  float64   `gorm:"type:decimal(10,8);not null"`
	Longitude float64   `gorm:"type:decimal(11,8);not null"`
	Type      string    `gorm:"type:varchar(32);not null;index:idx_facilities_on_type"`

	PlaceID     *string `gorm:"type:varchar(255);uniqueIndex:idx_facilities_on_place_id"`
	PhoneNumber string  `gorm:"type:varchar(64)"`
	Website     string  `gorm:"type:text"`

	RatingCount   int64    `gorm:"not null;default:0"`
	RatingSum     float64  `gorm:"not null;default:0"`
	AverageRating *float64 `gorm:"type:decimal(3,2)"`

	CurrentWaitTime    *float64 `gorm:"type:decimal(7,3)"`
	WaitTimeReports    int64    `gorm:"not null;default:0"`
	LastWaitTimeUpdate *time.Time
	CrowdingLevel      *string `gorm:"type:varchar(16)"`

	// Version guards every aggregate write (optimistic concurrency).
	Version int64 `gorm:"not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (FacilityModel) TableName() string {
	return "facilities"
}
