package impl

import (
	"context"
	"testing"
	"time"

	"pulse/config"
	"pulse/internal/domain/entity"
	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/domain/repository"
	mockRepo "pulse/internal/mocks/repository"
	"pulse/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type discoveryTestEnv struct {
	geoIndex     *mockRepo.MockGeoIndex
	facilityRepo *mockRepo.MockFacilityRepository
	reviewRepo   *mockRepo.MockReviewRepository
	service      usecase.DiscoveryUsecase
}

func newDiscoveryTestEnv(t *testing.T) *discoveryTestEnv {
	t.Helper()

	env := &discoveryTestEnv{
		geoIndex:     mockRepo.NewMockGeoIndex(t),
		facilityRepo: mockRepo.NewMockFacilityRepository(t),
		reviewRepo:   mockRepo.NewMockReviewRepository(t),
	}
	env.service = NewDiscoveryService(DiscoveryServiceParams{
		GeoIndex:     env.geoIndex,
		FacilityRepo: env.facilityRepo,
		ReviewRepo:   env.reviewRepo,
		Config: &config.Config{
			Discovery: &config.DiscoveryConfig{
				MaxRadiusKm:        20,
				DefaultReviewLimit: 10,
				MaxReviewLimit:     50,
			},
		},
		Logger: newTestLogger(),
	})

	return env
}

func TestDiscoveryService_DiscoverByViewport_MapsZoomToRadius(t *testing.T) {
	center := entity.Location{Latitude: 25.033, Longitude: 121.5654}

	tests := []struct {
		name     string
		zoom     float64
		radiusKm float64
	}{
		{name: "city overview", zoom: 9, radiusKm: 20},
		{name: "district", zoom: 11, radiusKm: 10},
		{name: "neighborhood", zoom: 13, radiusKm: 5},
		{name: "blocks", zoom: 15, radiusKm: 2},
		{name: "street", zoom: 17, radiusKm: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newDiscoveryTestEnv(t)
			ctx := context.Background()

			env.geoIndex.EXPECT().
				QueryNearby(ctx, center, tt.radiusKm).
				Return(nil, nil)

			facilities, err := env.service.DiscoverByViewport(ctx, &usecase.DiscoverByViewportInput{
				Center:    center,
				ZoomLevel: tt.zoom,
			})
			require.NoError(t, err)
			assert.Empty(t, facilities)
		})
	}
}

func TestDiscoveryService_DiscoverByRadius_HydratesHits(t *testing.T) {
	env := newDiscoveryTestEnv(t)
	ctx := context.Background()
	center := entity.Location{Latitude: 25.033, Longitude: 121.5654}

	near := &entity.Facility{ID: uuid.New(), Name: "Near Clinic"}
	far := &entity.Facility{ID: uuid.New(), Name: "Far Pharmacy"}
	ids := []uuid.UUID{near.ID, far.ID}

	env.geoIndex.EXPECT().
		QueryNearby(ctx, center, 5.0).
		Return(ids, nil)
	env.facilityRepo.EXPECT().
		FindFacilitiesByIDs(ctx, ids).
		Return([]*entity.Facility{near, far}, nil)

	facilities, err := env.service.DiscoverByRadius(ctx, &usecase.DiscoverByRadiusInput{
		Center:   center,
		RadiusKm: 5,
	})
	require.NoError(t, err)
	assert.Len(t, facilities, 2)
}

func TestDiscoveryService_DiscoverByRadius_ClampsToMaxRadius(t *testing.T) {
	env := newDiscoveryTestEnv(t)
	ctx := context.Background()
	center := entity.Location{Latitude: 0, Longitude: 0}

	env.geoIndex.EXPECT().
		QueryNearby(ctx, center, 20.0).
		Return(nil, nil)

	_, err := env.service.DiscoverByRadius(ctx, &usecase.DiscoverByRadiusInput{
		Center:   center,
		RadiusKm: 500,
	})
	require.NoError(t, err)
}

func TestDiscoveryService_DiscoverByRadius_EmptyIsNotAnError(t *testing.T) {
	env := newDiscoveryTestEnv(t)
	ctx := context.Background()
	center := entity.Location{Latitude: 25.033, Longitude: 121.5654}

	env.geoIndex.EXPECT().
		QueryNearby(ctx, center, 2.0).
		Return([]uuid.UUID{}, nil)

	facilities, err := env.service.DiscoverByRadius(ctx, &usecase.DiscoverByRadiusInput{
		Center:   center,
		RadiusKm: 2,
	})
	require.NoError(t, err)
	assert.NotNil(t, facilities)
	assert.Empty(t, facilities)
	// Hydration is skipped entirely when the index has no hits.
	env.facilityRepo.AssertNotCalled(t, "FindFacilitiesByIDs", mock.Anything, mock.Anything)
}

func TestDiscoveryService_DiscoverByRadius_IndexUnavailable(t *testing.T) {
	env := newDiscoveryTestEnv(t)
	ctx := context.Background()
	center := entity.Location{Latitude: 25.033, Longitude: 121.5654}

	env.geoIndex.EXPECT().
		QueryNearby(ctx, center, 2.0).
		Return(nil, repository.ErrGeoIndexUnavailable)

	_, err := env.service.DiscoverByRadius(ctx, &usecase.DiscoverByRadiusInput{
		Center:   center,
		RadiusKm: 2,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrGeoIndexUnavailable)
}

func TestDiscoveryService_DiscoverByRadius_Validation(t *testing.T) {
	env := newDiscoveryTestEnv(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		input *usecase.DiscoverByRadiusInput
	}{
		{
			name:  "zero radius",
			input: &usecase.DiscoverByRadiusInput{Center: entity.Location{}, RadiusKm: 0},
		},
		{
			name:  "latitude out of range",
			input: &usecase.DiscoverByRadiusInput{Center: entity.Location{Latitude: 91}, RadiusKm: 2},
		},
		{
			name:  "longitude out of range",
			input: &usecase.DiscoverByRadiusInput{Center: entity.Location{Longitude: -181}, RadiusKm: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.service.DiscoverByRadius(ctx, tt.input)
			require.Error(t, err)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
		})
	}
}

func TestDiscoveryService_GetFacility(t *testing.T) {
	env := newDiscoveryTestEnv(t)
	ctx := context.Background()
	stored := &entity.Facility{ID: uuid.New(), Name: "General Hospital"}

	env.facilityRepo.EXPECT().
		FindFacilityByID(ctx, stored.ID).
		Return(stored, nil)

	facility, err := env.service.GetFacility(ctx, stored.ID)
	require.NoError(t, err)
	assert.Equal(t, stored.ID, facility.ID)
}

func TestDiscoveryService_GetFacility_NotFound(t *testing.T) {
	env := newDiscoveryTestEnv(t)
	ctx := context.Background()
	id := uuid.New()

	env.facilityRepo.EXPECT().
		FindFacilityByID(ctx, id).
		Return(nil, repository.ErrFacilityNotFound)

	_, err := env.service.GetFacility(ctx, id)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrFacilityNotFound)
}

func TestDiscoveryService_ListReviews_Limits(t *testing.T) {
	facilityID := uuid.New()
	reviews := []*entity.Review{
		{ID: uuid.New(), FacilityID: facilityID, Rating: 5, Timestamp: time.Now()},
	}

	tests := []struct {
		name      string
		requested int
		effective int
	}{
		{name: "default when unset", requested: 0, effective: 10},
		{name: "explicit limit", requested: 25, effective: 25},
		{name: "capped at maximum", requested: 500, effective: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newDiscoveryTestEnv(t)
			ctx := context.Background()

			env.reviewRepo.EXPECT().
				ListRecentReviews(ctx, facilityID, tt.effective).
				Return(reviews, nil)

			result, err := env.service.ListReviews(ctx, facilityID, tt.requested)
			require.NoError(t, err)
			assert.Len(t, result, 1)
		})
	}
}
