package repository

import (
	"context"

	"pulse/internal/domain/entity"
	"pulse/internal/errors"

	"github.com/google/uuid"
)

// ErrGeoIndexUnavailable is returned when the geo index backend cannot be
// queried. Callers must surface it instead of degrading to an empty result:
// "nothing nearby" and "index down" are distinct conditions.
var ErrGeoIndexUnavailable = errors.New("geo index unavailable")

// GeoIndex answers "facilities within radius of a point" queries. Backends
// may overshoot internally but must filter false positives before returning;
// a facility at exactly the radius boundary is included. An acknowledged
// Upsert must be visible to subsequent queries.
type GeoIndex interface {
	// QueryNearby returns the ids of all facilities within radiusKm of the
	// center, in no particular order.
	QueryNearby(ctx context.Context, center entity.Location, radiusKm float64) ([]uuid.UUID, error)

	// Upsert registers or moves a facility location in the index.
	Upsert(ctx context.Context, id uuid.UUID, location entity.Location) error
}
