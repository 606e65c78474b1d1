package repository

import (
	"context"

	"pulse/internal/domain/entity"

	"github.com/google/uuid"
)

// ReviewRepository is the append-only review ledger. Appends are
// at-least-once durable; a duplicate append under retry is an accepted risk
// and is not deduplicated.
type ReviewRepository interface {
	// CreateReview appends a review and fills in the generated identity and
	// server-assigned timestamp.
	CreateReview(ctx context.Context, review *entity.Review) error

	// ListRecentReviews returns at most limit reviews for the facility,
	// newest first. Reviews sharing a timestamp order by descending id so
	// the sequence is deterministic.
	ListRecentReviews(ctx context.Context, facilityID uuid.UUID, limit int) ([]*entity.Review, error)
}
