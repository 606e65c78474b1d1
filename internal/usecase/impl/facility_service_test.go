package impl

import (
	"context"
	"testing"

	"pulse/internal/domain/entity"
	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/domain/repository"
	"pulse/internal/domain/service"
	mockRepo "pulse/internal/mocks/repository"
	mockSvc "pulse/internal/mocks/service"
	"pulse/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type facilityTestEnv struct {
	facilityRepo *mockRepo.MockFacilityRepository
	geoIndex     *mockRepo.MockGeoIndex
	placeSearch  *mockSvc.MockPlaceSearchProvider
	service      usecase.FacilityUsecase
}

func newFacilityTestEnv(t *testing.T) *facilityTestEnv {
	t.Helper()

	env := &facilityTestEnv{
		facilityRepo: mockRepo.NewMockFacilityRepository(t),
		geoIndex:     mockRepo.NewMockGeoIndex(t),
		placeSearch:  mockSvc.NewMockPlaceSearchProvider(t),
	}
	env.service = NewFacilityService(FacilityServiceParams{
		FacilityRepo: env.facilityRepo,
		GeoIndex:     env.geoIndex,
		PlaceSearch:  env.placeSearch,
		Logger:       newTestLogger(),
	})

	return env
}

func TestFacilityService_CreateFacility(t *testing.T) {
	env := newFacilityTestEnv(t)
	ctx := context.Background()
	assigned := uuid.New()

	env.facilityRepo.EXPECT().
		CreateFacility(ctx, mock.AnythingOfType("*entity.Facility")).
		RunAndReturn(func(_ context.Context, facility *entity.Facility) error {
			facility.ID = assigned
			return nil
		})
	env.geoIndex.EXPECT().
		Upsert(ctx, assigned, entity.Location{Latitude: 25.033, Longitude: 121.5654}).
		Return(nil)

	facility, err := env.service.CreateFacility(ctx, &usecase.CreateFacilityInput{
		Name:     "General Hospital",
		Address:  "1 Main St",
		Location: entity.Location{Latitude: 25.033, Longitude: 121.5654},
		Type:     entity.FacilityTypeHospital,
	})
	require.NoError(t, err)
	assert.Equal(t, assigned, facility.ID)

	// A new facility starts with zeroed aggregates.
	assert.Equal(t, int64(0), facility.RatingCount)
	assert.Nil(t, facility.WaitTime)
	_, hasAvg := facility.AverageRating()
	assert.False(t, hasAvg)
}

func TestFacilityService_CreateFacility_Validation(t *testing.T) {
	env := newFacilityTestEnv(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		input *usecase.CreateFacilityInput
	}{
		{
			name:  "missing name",
			input: &usecase.CreateFacilityInput{Address: "1 Main St", Type: entity.FacilityTypeClinic},
		},
		{
			name:  "unknown type",
			input: &usecase.CreateFacilityInput{Name: "X", Address: "1 Main St", Type: "spa"},
		},
		{
			name: "latitude out of range",
			input: &usecase.CreateFacilityInput{
				Name: "X", Address: "1 Main St", Type: entity.FacilityTypeClinic,
				Location: entity.Location{Latitude: -91},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.service.CreateFacility(ctx, tt.input)
			require.Error(t, err)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
		})
	}
}

func TestFacilityService_CreateFacility_Duplicate(t *testing.T) {
	env := newFacilityTestEnv(t)
	ctx := context.Background()

	env.facilityRepo.EXPECT().
		CreateFacility(ctx, mock.AnythingOfType("*entity.Facility")).
		Return(repository.ErrDuplicateFacility)

	_, err := env.service.CreateFacility(ctx, &usecase.CreateFacilityInput{
		Name:     "General Hospital",
		Address:  "1 Main St",
		Type:     entity.FacilityTypeHospital,
		PlaceID:  "place-1",
		Location: entity.Location{Latitude: 25.033, Longitude: 121.5654},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrFacilityAlreadyExists)
}

func TestFacilityService_ImportNearby(t *testing.T) {
	env := newFacilityTestEnv(t)
	ctx := context.Background()
	center := entity.Location{Latitude: 25.033, Longitude: 121.5654}

	fresh := &service.Place{
		PlaceID:  "place-new",
		Name:     "New Clinic",
		Address:  "2 Side St",
		Location: entity.Location{Latitude: 25.04, Longitude: 121.56},
	}
	known := &service.Place{
		PlaceID:  "place-known",
		Name:     "Known Clinic",
		Address:  "3 Side St",
		Location: entity.Location{Latitude: 25.05, Longitude: 121.57},
	}

	env.placeSearch.EXPECT().
		SearchNearby(ctx, center, 5.0, entity.FacilityTypeClinic).
		Return([]*service.Place{fresh, known}, nil)

	env.facilityRepo.EXPECT().
		FindFacilityByPlaceID(ctx, "place-new").
		Return(nil, repository.ErrFacilityNotFound)
	env.facilityRepo.EXPECT().
		FindFacilityByPlaceID(ctx, "place-known").
		Return(&entity.Facility{ID: uuid.New(), PlaceID: "place-known"}, nil)

	env.facilityRepo.EXPECT().
		CreateFacility(ctx, mock.AnythingOfType("*entity.Facility")).
		RunAndReturn(func(_ context.Context, facility *entity.Facility) error {
			assert.Equal(t, "place-new", facility.PlaceID)
			facility.ID = uuid.New()
			return nil
		})
	env.geoIndex.EXPECT().
		Upsert(ctx, mock.AnythingOfType("uuid.UUID"), fresh.Location).
		Return(nil)

	output, err := env.service.ImportNearby(ctx, &usecase.ImportNearbyInput{
		Center:   center,
		RadiusKm: 5,
		Type:     entity.FacilityTypeClinic,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, output.Imported)
	assert.Equal(t, 1, output.Skipped)
}

func TestFacilityService_ImportNearby_ConcurrentDuplicateIsSkip(t *testing.T) {
	env := newFacilityTestEnv(t)
	ctx := context.Background()
	center := entity.Location{Latitude: 25.033, Longitude: 121.5654}

	place := &service.Place{
		PlaceID:  "place-racy",
		Name:     "Racy Pharmacy",
		Address:  "4 Side St",
		Location: entity.Location{Latitude: 25.06, Longitude: 121.58},
	}

	env.placeSearch.EXPECT().
		SearchNearby(ctx, center, 2.0, entity.FacilityTypePharmacy).
		Return([]*service.Place{place}, nil)
	env.facilityRepo.EXPECT().
		FindFacilityByPlaceID(ctx, "place-racy").
		Return(nil, repository.ErrFacilityNotFound)
	env.facilityRepo.EXPECT().
		CreateFacility(ctx, mock.AnythingOfType("*entity.Facility")).
		Return(repository.ErrDuplicateFacility)

	output, err := env.service.ImportNearby(ctx, &usecase.ImportNearbyInput{
		Center:   center,
		RadiusKm: 2,
		Type:     entity.FacilityTypePharmacy,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, output.Imported)
	assert.Equal(t, 1, output.Skipped)
}
