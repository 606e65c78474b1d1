package impl

import (
	"context"
	"log/slog"
	"time"

	"pulse/config"
	deliverycontext "pulse/internal/delivery/context"
	"pulse/internal/domain/entity"
	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/domain/repository"
	"pulse/internal/domain/service"
	"pulse/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultMaxRetries   = 3
	defaultRetryBackoff = 50 * time.Millisecond
)

// pulseService implements the PulseUsecase interface: the transactional
// write path that folds reviews and wait-time reports into facility
// aggregates.
type pulseService struct {
	txManager    repository.TransactionManager
	reviewRepo   repository.ReviewRepository
	publisher    service.EventPublisher
	maxRetries   int
	retryBackoff time.Duration
	logger       *slog.Logger
}

// PulseServiceParams holds dependencies for PulseService, injected by Fx.
type PulseServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	ReviewRepo repository.ReviewRepository
	Publisher  service.EventPublisher
	Config     *config.Config
	Logger     *slog.Logger
}

// NewPulseService is the constructor for pulseService.
func NewPulseService(params PulseServiceParams) usecase.PulseUsecase {
	maxRetries := defaultMaxRetries
	retryBackoff := defaultRetryBackoff
	if params.Config != nil && params.Config.Aggregator != nil {
		if params.Config.Aggregator.MaxRetries > 0 {
			maxRetries = params.Config.Aggregator.MaxRetries
		}
		if params.Config.Aggregator.RetryBackoff > 0 {
			retryBackoff = params.Config.Aggregator.RetryBackoff
		}
	}

	return &pulseService{
		txManager:    params.TxManager,
		reviewRepo:   params.ReviewRepo,
		publisher:    params.Publisher,
		maxRetries:   maxRetries,
		retryBackoff: retryBackoff,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *pulseService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SubmitReview appends the review to the ledger, then folds the rating and
// any accompanying wait-time report into the facility aggregate.
//
// The ledger append deliberately happens before and outside the aggregate
// transaction: the ledger is audit/display data and at-least-once durability
// is enough. If the facility disappears between the append and the fold, the
// review stays in the ledger as an orphan and the call reports not-found.
func (srv *pulseService) SubmitReview(ctx context.Context, input *usecase.SubmitReviewInput) (*usecase.SubmitReviewOutput, error) {
	if err := validateReviewInput(input); err != nil {
		return nil, err
	}

	review := &entity.Review{
		FacilityID:      input.FacilityID,
		UserID:          input.UserID,
		UserDisplayName: input.UserDisplayName,
		Rating:          input.Rating,
		Comment:         input.Comment,
		WaitTime:        input.WaitTime,
		CrowdingLevel:   input.CrowdingLevel,
	}

	if err := srv.reviewRepo.CreateReview(ctx, review); err != nil {
		if errors.Is(err, repository.ErrFacilityNotFound) {
			return nil, domainerrors.ErrFacilityNotFound
		}

		return nil, err
	}

	facility, err := srv.foldFacility(ctx, input.FacilityID, func(facility *entity.Facility) {
		facility.ApplyRating(input.Rating)
		if input.WaitTime != nil {
			facility.ApplyWaitTimeReport(*input.WaitTime, input.CrowdingLevel, time.Now())
		}
	})
	if err != nil {
		return nil, err
	}

	srv.publishPulse(ctx, facility)

	srv.log(ctx).Info("Review folded into facility aggregate",
		slog.String("facility_id", input.FacilityID.String()),
		slog.String("review_id", review.ID.String()),
		slog.Int64("rating_count", facility.RatingCount),
	)

	return &usecase.SubmitReviewOutput{
		ReviewID: review.ID,
		Facility: facility,
	}, nil
}

// UpdateWaitTime folds a wait-time-only report into the facility aggregate.
// No review row is created, so the smoothed estimate is not reconstructable
// from the review stream alone.
func (srv *pulseService) UpdateWaitTime(ctx context.Context, input *usecase.UpdateWaitTimeInput) (*entity.Facility, error) {
	if input.Minutes < 0 {
		return nil, domainerrors.ErrNegativeWaitTime
	}
	if input.CrowdingLevel != entity.CrowdingUnknown && !input.CrowdingLevel.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown crowding level")
	}

	facility, err := srv.foldFacility(ctx, input.FacilityID, func(facility *entity.Facility) {
		facility.ApplyWaitTimeReport(input.Minutes, input.CrowdingLevel, time.Now())
	})
	if err != nil {
		return nil, err
	}

	srv.publishPulse(ctx, facility)

	srv.log(ctx).Info("Wait-time report folded into facility aggregate",
		slog.String("facility_id", input.FacilityID.String()),
		slog.Int64("wait_time_reports", facility.WaitTime.Reports),
	)

	return facility, nil
}

// foldFacility runs apply on the facility inside a transaction guarded by the
// row's optimistic version. Version conflicts retry with linear backoff up to
// the configured bound; exhausting the bound surfaces an aggregation
// conflict, which callers may retry.
func (srv *pulseService) foldFacility(ctx context.Context, facilityID uuid.UUID, apply func(*entity.Facility)) (*entity.Facility, error) {
	var folded *entity.Facility

	for attempt := 1; ; attempt++ {
		err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			facilityRepo := repoFactory.FacilityRepo()

			facility, err := facilityRepo.FindFacilityByID(ctx, facilityID)
			if err != nil {
				return err
			}

			expectedVersion := facility.Version
			apply(facility)

			if err := facilityRepo.UpdateAggregate(ctx, facility, expectedVersion); err != nil {
				return err
			}
			folded = facility

			return nil
		})
		if err == nil {
			return folded, nil
		}

		if errors.Is(err, repository.ErrFacilityNotFound) {
			return nil, domainerrors.ErrFacilityNotFound
		}
		if ctx.Err() != nil || errors.Is(err, context.DeadlineExceeded) {
			// The transaction may or may not have committed.
			return nil, domainerrors.ErrOperationTimeout
		}
		if !errors.Is(err, repository.ErrVersionConflict) {
			return nil, err
		}

		if attempt >= srv.maxRetries {
			srv.log(ctx).Warn("Aggregate fold exhausted retry budget",
				slog.String("facility_id", facilityID.String()),
				slog.Int("attempts", attempt),
			)

			return nil, domainerrors.ErrAggregationConflict
		}

		srv.log(ctx).Debug("Aggregate fold lost version check, retrying",
			slog.String("facility_id", facilityID.String()),
			slog.Int("attempt", attempt),
		)

		select {
		case <-ctx.Done():
			return nil, domainerrors.ErrOperationTimeout
		case <-time.After(time.Duration(attempt) * srv.retryBackoff):
		}
	}
}

// publishPulse emits the post-commit aggregate snapshot. Publishing is best
// effort: a failed publish is logged and never fails the fold.
func (srv *pulseService) publishPulse(ctx context.Context, facility *entity.Facility) {
	event := &service.PulseEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		FacilityID:  facility.ID.String(),
		RatingCount: facility.RatingCount,
		OccurredAt:  time.Now(),
	}
	if avg, ok := facility.AverageRating(); ok {
		event.AverageRating = &avg
	}
	if facility.WaitTime != nil {
		minutes := facility.WaitTime.Minutes
		event.WaitTimeMinutes = &minutes
		event.WaitTimeReports = facility.WaitTime.Reports
	}
	if facility.Crowding != entity.CrowdingUnknown {
		event.CrowdingLevel = string(facility.Crowding)
	}

	if err := srv.publisher.PublishPulseEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish pulse event",
			slog.String("facility_id", event.FacilityID),
			slog.Any("error", err),
		)
	}
}

// validateReviewInput checks the semantic constraints of a review submission.
func validateReviewInput(input *usecase.SubmitReviewInput) error {
	if input.UserID == "" || input.UserDisplayName == "" {
		return domainerrors.ErrValidationFailed.WithDetails("user id and display name are required")
	}
	if input.Rating < 1 || input.Rating > 5 {
		return domainerrors.ErrRatingOutOfRange
	}
	if input.WaitTime != nil && *input.WaitTime < 0 {
		return domainerrors.ErrNegativeWaitTime
	}
	if input.CrowdingLevel != entity.CrowdingUnknown && !input.CrowdingLevel.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("unknown crowding level")
	}

	return nil
}
