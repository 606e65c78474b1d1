package postgres

import (
	"context"
	"time"

	"pulse/internal/domain/entity"
	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/domain/repository"
	"pulse/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// reviewRepository implements the repository.ReviewRepository interface.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{
		db: db,
	}
}

// CreateReview appends a review to the ledger. The timestamp is assigned
// here, server-side, and never changes afterwards.
func (repo *reviewRepository) CreateReview(ctx context.Context, review *entity.Review) error {
	reviewM := fromReviewDomain(review)
	if reviewM.Timestamp.IsZero() {
		reviewM.Timestamp = time.Now()
	}

	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrFacilityNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required review information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	// Update the entity with generated values
	review.ID = reviewM.ID
	review.Timestamp = reviewM.Timestamp

	return nil
}

// ListRecentReviews returns at most limit reviews for the facility, newest
// first. Equal timestamps tie-break by descending id so pagination is
// deterministic.
func (repo *reviewRepository) ListRecentReviews(ctx context.Context, facilityID uuid.UUID, limit int) ([]*entity.Review, error) {
	var reviewModels []*model.ReviewModel

	if err := repo.db.WithContext(ctx).
		Where("facility_id = ?", facilityID).
		Order("timestamp DESC, id DESC").
		Limit(limit).
		Find(&reviewModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list recent reviews")
	}

	reviews := make([]*entity.Review, 0, len(reviewModels))
	for _, reviewM := range reviewModels {
		reviews = append(reviews, toReviewDomain(reviewM))
	}

	return reviews, nil
}

// toReviewDomain converts a GORM ReviewModel to a domain Review entity.
func toReviewDomain(data *model.ReviewModel) *entity.Review {
	if data == nil {
		return nil
	}

	review := &entity.Review{
		ID:              data.ID,
		FacilityID:      data.FacilityID,
		UserID:          data.UserID,
		UserDisplayName: data.UserDisplayName,
		Rating:          data.Rating,
		Comment:         data.Comment,
		WaitTime:        data.WaitTime,
		Timestamp:       data.Timestamp,
	}

	if data.CrowdingLevel != nil {
		review.CrowdingLevel = entity.CrowdingLevel(*data.CrowdingLevel)
	}

	return review
}

// fromReviewDomain converts a domain Review entity to a GORM ReviewModel.
func fromReviewDomain(data *entity.Review) *model.ReviewModel {
	if data == nil {
		return nil
	}

	reviewM := &model.ReviewModel{
		ID:              data.ID,
		FacilityID:      data.FacilityID,
		UserID:          data.UserID,
		UserDisplayName: data.UserDisplayName,
		Rating:          data.Rating,
		Comment:         data.Comment,
		WaitTime:        data.WaitTime,
		Timestamp:       data.Timestamp,
	}

	if data.CrowdingLevel != entity.CrowdingUnknown {
		crowding := string(data.CrowdingLevel)
		reviewM.CrowdingLevel = &crowding
	}

	return reviewM
}
