package usecase

import (
	"context"

	"pulse/internal/domain/entity"

	"github.com/google/uuid"
)

// DiscoverByViewportInput asks for facilities visible around a map viewport.
// The zoom level is translated to a search radius server-side.
type DiscoverByViewportInput struct {
	Center    entity.Location
	ZoomLevel float64
}

// DiscoverByRadiusInput asks for facilities within an explicit radius.
type DiscoverByRadiusInput struct {
	Center   entity.Location
	RadiusKm float64
}

// DiscoveryUsecase is the read path: radius queries against the geo index
// hydrated into full facility records, plus single-facility and review reads.
type DiscoveryUsecase interface {
	// DiscoverByViewport maps the zoom level to a radius and discovers
	// facilities around the viewport center. No result ordering is applied.
	DiscoverByViewport(ctx context.Context, input *DiscoverByViewportInput) ([]*entity.Facility, error)

	// DiscoverByRadius discovers facilities within the given radius of the
	// center. Radii beyond the configured maximum are clamped.
	DiscoverByRadius(ctx context.Context, input *DiscoverByRadiusInput) ([]*entity.Facility, error)

	// GetFacility retrieves a single facility with its current aggregates.
	GetFacility(ctx context.Context, id uuid.UUID) (*entity.Facility, error)

	// ListReviews returns the newest reviews for a facility. A non-positive
	// limit selects the configured default; limits above the cap are reduced
	// to the cap.
	ListReviews(ctx context.Context, facilityID uuid.UUID, limit int) ([]*entity.Review, error)
}
