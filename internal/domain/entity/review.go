package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review is a single user submission about a facility. Reviews are
// append-only: once persisted they are never mutated or deleted here.
// The facility aggregate is maintained incrementally and is not rebuilt
// from the review stream; the stream exists for display and audit.
type Review struct {
	ID              uuid.UUID `json:"id"`
	FacilityID      uuid.UUID `json:"facility_id"`
	UserID          string    `json:"user_id"`
	UserDisplayName string    `json:"user_display_name"`
	Rating          int       `json:"rating"` // 1-5 stars.
	Comment         string    `json:"comment,omitempty"`

	// WaitTime, when set, triggers a wait-time fold in addition to the
	// rating fold. CrowdingLevel only accompanies a wait-time report.
	WaitTime      *float64      `json:"wait_time,omitempty"`
	CrowdingLevel CrowdingLevel `json:"crowding_level,omitempty"`

	// Timestamp is assigned at insertion and drives newest-first ordering.
	Timestamp time.Time `json:"timestamp"`
}
