package usecase

import (
	"context"

	"pulse/internal/domain/entity"

	"github.com/google/uuid"
)

// SubmitReviewInput carries a single community review submission.
type SubmitReviewInput struct {
	FacilityID      uuid.UUID
	UserID          string
	UserDisplayName string
	Rating          int
	Comment         string

	// WaitTime, when set, folds a wait-time report into the aggregate in the
	// same transaction as the rating fold. CrowdingLevel is only considered
	// alongside WaitTime.
	WaitTime      *float64
	CrowdingLevel entity.CrowdingLevel
}

// SubmitReviewOutput returns the ledger id of the appended review and the
// facility aggregate as committed by this fold.
type SubmitReviewOutput struct {
	ReviewID uuid.UUID
	Facility *entity.Facility
}

// UpdateWaitTimeInput carries a wait-time-only report. It folds into the
// facility aggregate without leaving a review behind.
type UpdateWaitTimeInput struct {
	FacilityID    uuid.UUID
	Minutes       float64
	CrowdingLevel entity.CrowdingLevel
}

// PulseUsecase is the consensus write path. Both operations apply their fold
// as one atomic read-modify-write on the facility row; concurrent calls for
// the same facility are serialized by optimistic version checks and neither
// call's fold is ever lost.
type PulseUsecase interface {
	// SubmitReview appends the review to the ledger and folds the rating
	// (and optional wait-time report) into the facility aggregate.
	SubmitReview(ctx context.Context, input *SubmitReviewInput) (*SubmitReviewOutput, error)

	// UpdateWaitTime folds a wait-time report into the facility aggregate.
	UpdateWaitTime(ctx context.Context, input *UpdateWaitTimeInput) (*entity.Facility, error)
}
