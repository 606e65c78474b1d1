package usecase

import (
	"context"

	"pulse/internal/domain/entity"
)

// CreateFacilityInput carries the onboarding data for a new facility.
// Aggregates always start zeroed; they are only ever written by folds.
type CreateFacilityInput struct {
	Name     string
	Address  string
	Location entity.Location
	Type     entity.FacilityType

	// Optional provider metadata.
	PlaceID     string
	PhoneNumber string
	Website     string
}

// ImportNearbyInput bootstraps facilities from the place-search provider.
type ImportNearbyInput struct {
	Center   entity.Location
	RadiusKm float64
	Type     entity.FacilityType
}

// ImportNearbyOutput summarizes an import run.
type ImportNearbyOutput struct {
	Imported int
	Skipped  int
}

// FacilityUsecase covers facility onboarding: direct creation and bulk
// import from the external place-search provider.
type FacilityUsecase interface {
	// CreateFacility persists a new facility with zeroed aggregates and
	// registers it with the geo index.
	CreateFacility(ctx context.Context, input *CreateFacilityInput) (*entity.Facility, error)

	// ImportNearby searches the place provider around the center and creates
	// a facility per result, skipping places already imported.
	ImportNearby(ctx context.Context, input *ImportNearbyInput) (*ImportNearbyOutput, error)
}
