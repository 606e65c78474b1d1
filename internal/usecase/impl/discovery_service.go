package impl

import (
	"context"
	"log/slog"

	"pulse/config"
	deliverycontext "pulse/internal/delivery/context"
	"pulse/internal/domain/entity"
	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/domain/repository"
	"pulse/internal/domain/viewport"
	"pulse/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultMaxRadiusKm    = 20.0
	defaultReviewLimit    = 10
	defaultMaxReviewLimit = 50
)

// discoveryService implements the DiscoveryUsecase interface: the read path
// from geo index hits to hydrated facility records.
type discoveryService struct {
	geoIndex       repository.GeoIndex
	facilityRepo   repository.FacilityRepository
	reviewRepo     repository.ReviewRepository
	maxRadiusKm    float64
	reviewLimit    int
	maxReviewLimit int
	logger         *slog.Logger
}

// DiscoveryServiceParams holds dependencies for DiscoveryService, injected by Fx.
type DiscoveryServiceParams struct {
	fx.In

	GeoIndex     repository.GeoIndex
	FacilityRepo repository.FacilityRepository
	ReviewRepo   repository.ReviewRepository
	Config       *config.Config
	Logger       *slog.Logger
}

// NewDiscoveryService is the constructor for discoveryService.
func NewDiscoveryService(params DiscoveryServiceParams) usecase.DiscoveryUsecase {
	maxRadiusKm := defaultMaxRadiusKm
	reviewLimit := defaultReviewLimit
	maxReviewLimit := defaultMaxReviewLimit
	if params.Config != nil && params.Config.Discovery != nil {
		if params.Config.Discovery.MaxRadiusKm > 0 {
			maxRadiusKm = params.Config.Discovery.MaxRadiusKm
		}
		if params.Config.Discovery.DefaultReviewLimit > 0 {
			reviewLimit = params.Config.Discovery.DefaultReviewLimit
		}
		if params.Config.Discovery.MaxReviewLimit > 0 {
			maxReviewLimit = params.Config.Discovery.MaxReviewLimit
		}
	}

	return &discoveryService{
		geoIndex:       params.GeoIndex,
		facilityRepo:   params.FacilityRepo,
		reviewRepo:     params.ReviewRepo,
		maxRadiusKm:    maxRadiusKm,
		reviewLimit:    reviewLimit,
		maxReviewLimit: maxReviewLimit,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *discoveryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// DiscoverByViewport maps the zoom level to a radius and discovers facilities
// around the viewport center.
func (srv *discoveryService) DiscoverByViewport(ctx context.Context, input *usecase.DiscoverByViewportInput) ([]*entity.Facility, error) {
	return srv.DiscoverByRadius(ctx, &usecase.DiscoverByRadiusInput{
		Center:   input.Center,
		RadiusKm: viewport.RadiusForZoom(input.ZoomLevel),
	})
}

// DiscoverByRadius queries the geo index and hydrates the hits into full
// facility records. An empty result is a normal outcome and distinct from an
// unavailable index.
func (srv *discoveryService) DiscoverByRadius(ctx context.Context, input *usecase.DiscoverByRadiusInput) ([]*entity.Facility, error) {
	if err := validateLocation(input.Center); err != nil {
		return nil, err
	}
	if input.RadiusKm <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("radius must be positive")
	}

	radiusKm := input.RadiusKm
	if radiusKm > srv.maxRadiusKm {
		radiusKm = srv.maxRadiusKm
	}

	ids, err := srv.geoIndex.QueryNearby(ctx, input.Center, radiusKm)
	if err != nil {
		if errors.Is(err, repository.ErrGeoIndexUnavailable) {
			srv.log(ctx).Error("Geo index unavailable", slog.Any("error", err))

			return nil, domainerrors.ErrGeoIndexUnavailable
		}

		return nil, err
	}

	if len(ids) == 0 {
		return []*entity.Facility{}, nil
	}

	facilities, err := srv.facilityRepo.FindFacilitiesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Discovered facilities",
		slog.Float64("radius_km", radiusKm),
		slog.Int("index_hits", len(ids)),
		slog.Int("hydrated", len(facilities)),
	)

	return facilities, nil
}

// GetFacility retrieves a single facility with its current aggregates.
func (srv *discoveryService) GetFacility(ctx context.Context, id uuid.UUID) (*entity.Facility, error) {
	facility, err := srv.facilityRepo.FindFacilityByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrFacilityNotFound) {
			return nil, domainerrors.ErrFacilityNotFound
		}

		return nil, err
	}

	return facility, nil
}

// ListReviews returns the newest reviews for a facility, bounded by the
// configured default and cap.
func (srv *discoveryService) ListReviews(ctx context.Context, facilityID uuid.UUID, limit int) ([]*entity.Review, error) {
	if limit <= 0 {
		limit = srv.reviewLimit
	}
	if limit > srv.maxReviewLimit {
		limit = srv.maxReviewLimit
	}

	reviews, err := srv.reviewRepo.ListRecentReviews(ctx, facilityID, limit)
	if err != nil {
		return nil, err
	}

	return reviews, nil
}

// validateLocation rejects coordinates outside the WGS84 range.
func validateLocation(location entity.Location) error {
	if location.Latitude < -90 || location.Latitude > 90 {
		return domainerrors.ErrValidationFailed.WithDetails("latitude must be between -90 and 90")
	}
	if location.Longitude < -180 || location.Longitude > 180 {
		return domainerrors.ErrValidationFailed.WithDetails("longitude must be between -180 and 180")
	}

	return nil
}
