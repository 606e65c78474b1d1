package service

import (
	"context"
	"time"
)

// PulseEvent is the post-commit snapshot of a facility's consensus aggregate,
// published after every successful fold so downstream consumers can react
// without polling. Publishing is best effort; the fold never waits on it.
type PulseEvent struct {
	RequestID  string `json:"request_id,omitempty"` // For distributed tracing
	FacilityID string `json:"facility_id"`

	RatingCount   int64    `json:"rating_count"`
	AverageRating *float64 `json:"average_rating,omitempty"`

	WaitTimeMinutes *float64 `json:"wait_time_minutes,omitempty"`
	WaitTimeReports int64    `json:"wait_time_reports"`
	CrowdingLevel   string   `json:"crowding_level,omitempty"`

	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishPulseEvent publishes an aggregate-updated event for async processing
	PublishPulseEvent(ctx context.Context, event *PulseEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
