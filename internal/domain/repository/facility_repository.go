// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"pulse/internal/domain/entity"
	"pulse/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for facility persistence.
var (
	// ErrFacilityNotFound is returned when a facility is not found.
	ErrFacilityNotFound = errors.New("facility not found")
	// ErrVersionConflict is returned when an aggregate write lost the
	// optimistic version check to a concurrent writer.
	ErrVersionConflict = errors.New("facility version conflict")
	// ErrDuplicateFacility is returned when a facility with the same
	// provider place id already exists.
	ErrDuplicateFacility = errors.New("facility already exists")
)

// FacilityRepository defines the interface for facility-related database
// operations. The aggregate fields of a facility row must only ever be
// written through UpdateAggregate so the optimistic version check is never
// bypassed.
type FacilityRepository interface {
	// CreateFacility persists a new facility with zeroed aggregates and
	// fills in the generated identity and timestamps.
	CreateFacility(ctx context.Context, facility *entity.Facility) error

	// FindFacilityByID retrieves a facility by its unique ID.
	FindFacilityByID(ctx context.Context, id uuid.UUID) (*entity.Facility, error)

	// FindFacilityByPlaceID retrieves a facility by its provider place id,
	// used to deduplicate bootstrap imports.
	FindFacilityByPlaceID(ctx context.Context, placeID string) (*entity.Facility, error)

	// FindFacilitiesByIDs batch-fetches facilities, omitting ids that no
	// longer exist. No result ordering is guaranteed.
	FindFacilitiesByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Facility, error)

	// UpdateAggregate writes all derived aggregate fields of the facility in
	// one statement, guarded by expectedVersion. Returns ErrVersionConflict
	// when the stored version no longer matches.
	UpdateAggregate(ctx context.Context, facility *entity.Facility, expectedVersion int64) error
}
