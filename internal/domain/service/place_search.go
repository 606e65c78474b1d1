package service

import (
	"context"

	"pulse/internal/domain/entity"
)

// Place is a single result returned by the external place-search provider.
// Only the fields the import flow consumes are modeled.
type Place struct {
	PlaceID     string
	Name        string
	Address     string
	Location    entity.Location
	PhoneNumber string
	Website     string
	Rating      float64
	HasRating   bool
}

// PlaceSearchProvider is the external place-search collaborator used to
// bootstrap facilities. Its internal behavior is out of scope; only the
// request/response contract is relied upon.
type PlaceSearchProvider interface {
	// SearchNearby returns places of the given type within radiusKm of the
	// center, as reported by the provider.
	SearchNearby(ctx context.Context, center entity.Location, radiusKm float64, facilityType entity.FacilityType) ([]*Place, error)
}
