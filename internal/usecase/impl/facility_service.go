package impl

import (
	"context"
	"log/slog"

	deliverycontext "pulse/internal/delivery/context"
	"pulse/internal/domain/entity"
	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/domain/repository"
	"pulse/internal/domain/service"
	"pulse/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// facilityService implements the FacilityUsecase interface: facility
// onboarding and bulk import from the place-search provider.
type facilityService struct {
	facilityRepo repository.FacilityRepository
	geoIndex     repository.GeoIndex
	placeSearch  service.PlaceSearchProvider
	logger       *slog.Logger
}

// FacilityServiceParams holds dependencies for FacilityService, injected by Fx.
type FacilityServiceParams struct {
	fx.In

	FacilityRepo repository.FacilityRepository
	GeoIndex     repository.GeoIndex
	PlaceSearch  service.PlaceSearchProvider `optional:"true"`
	Logger       *slog.Logger
}

// NewFacilityService is the constructor for facilityService.
func NewFacilityService(params FacilityServiceParams) usecase.FacilityUsecase {
	return &facilityService{
		facilityRepo: params.FacilityRepo,
		geoIndex:     params.GeoIndex,
		placeSearch:  params.PlaceSearch,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *facilityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateFacility persists a new facility with zeroed aggregates and registers
// it with the geo index so discovery reflects it immediately.
func (srv *facilityService) CreateFacility(ctx context.Context, input *usecase.CreateFacilityInput) (*entity.Facility, error) {
	if err := validateFacilityInput(input); err != nil {
		return nil, err
	}

	facility := &entity.Facility{
		Name:        input.Name,
		Address:     input.Address,
		Location:    input.Location,
		Type:        input.Type,
		PlaceID:     input.PlaceID,
		PhoneNumber: input.PhoneNumber,
		Website:     input.Website,
	}

	if err := srv.facilityRepo.CreateFacility(ctx, facility); err != nil {
		if errors.Is(err, repository.ErrDuplicateFacility) {
			return nil, domainerrors.ErrFacilityAlreadyExists
		}

		return nil, err
	}

	if err := srv.geoIndex.Upsert(ctx, facility.ID, facility.Location); err != nil {
		return nil, errors.Wrap(err, "failed to index new facility")
	}

	srv.log(ctx).Info("Facility created",
		slog.String("facility_id", facility.ID.String()),
		slog.String("type", string(facility.Type)),
	)

	return facility, nil
}

// ImportNearby searches the place provider around the center and creates a
// facility per result. Places already imported (matched by provider place id)
// are skipped, so re-running an import is safe.
func (srv *facilityService) ImportNearby(ctx context.Context, input *usecase.ImportNearbyInput) (*usecase.ImportNearbyOutput, error) {
	if srv.placeSearch == nil {
		return nil, errors.New("place search provider is not configured")
	}
	if err := validateLocation(input.Center); err != nil {
		return nil, err
	}
	if input.RadiusKm <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("radius must be positive")
	}
	if !input.Type.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown facility type")
	}

	places, err := srv.placeSearch.SearchNearby(ctx, input.Center, input.RadiusKm, input.Type)
	if err != nil {
		return nil, errors.Wrap(err, "place search failed")
	}

	output := &usecase.ImportNearbyOutput{}
	for _, place := range places {
		imported, err := srv.importPlace(ctx, place, input.Type)
		if err != nil {
			return nil, err
		}
		if imported {
			output.Imported++
		} else {
			output.Skipped++
		}
	}

	srv.log(ctx).Info("Facility import completed",
		slog.String("type", string(input.Type)),
		slog.Int("imported", output.Imported),
		slog.Int("skipped", output.Skipped),
	)

	return output, nil
}

// importPlace creates a facility from a single place result unless the place
// was imported before.
func (srv *facilityService) importPlace(ctx context.Context, place *service.Place, facilityType entity.FacilityType) (bool, error) {
	_, err := srv.facilityRepo.FindFacilityByPlaceID(ctx, place.PlaceID)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, repository.ErrFacilityNotFound) {
		return false, err
	}

	facility := &entity.Facility{
		Name:        place.Name,
		Address:     place.Address,
		Location:    place.Location,
		Type:        facilityType,
		PlaceID:     place.PlaceID,
		PhoneNumber: place.PhoneNumber,
		Website:     place.Website,
	}

	if err := srv.facilityRepo.CreateFacility(ctx, facility); err != nil {
		// A concurrent import of the same place is a skip, not a failure.
		if errors.Is(err, repository.ErrDuplicateFacility) {
			return false, nil
		}

		return false, err
	}

	if err := srv.geoIndex.Upsert(ctx, facility.ID, facility.Location); err != nil {
		return false, errors.Wrap(err, "failed to index imported facility")
	}

	return true, nil
}

// validateFacilityInput checks the semantic constraints of facility onboarding.
func validateFacilityInput(input *usecase.CreateFacilityInput) error {
	if input.Name == "" || input.Address == "" {
		return domainerrors.ErrValidationFailed.WithDetails("name and address are required")
	}
	if !input.Type.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("unknown facility type")
	}

	return validateLocation(input.Location)
}
