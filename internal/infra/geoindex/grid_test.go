package geoindex

import (
	"context"
	"testing"

	"pulse/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridIndex_QueryNearby(t *testing.T) {
	ctx := context.Background()
	index := NewGridIndex(1.0)

	center := entity.Location{Latitude: 40.0, Longitude: -74.0}

	near := uuid.New() // ~1.7km east of center
	far := uuid.New()  // ~42km north of center
	require.NoError(t, index.Upsert(ctx, near, entity.Location{Latitude: 40.0, Longitude: -73.98}))
	require.NoError(t, index.Upsert(ctx, far, entity.Location{Latitude: 40.38, Longitude: -74.0}))

	ids, err := index.QueryNearby(ctx, center, 5)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{near}, ids)

	ids, err = index.QueryNearby(ctx, center, 50)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uuid.UUID{near, far}, ids)
}

func TestGridIndex_QueryNearby_EmptyResultIsNotAnError(t *testing.T) {
	ctx := context.Background()
	index := NewGridIndex(1.0)

	ids, err := index.QueryNearby(ctx, entity.Location{Latitude: 51.5, Longitude: -0.12}, 10)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestGridIndex_QueryNearby_BoundaryIsInclusive(t *testing.T) {
	ctx := context.Background()
	index := NewGridIndex(1.0)

	center := entity.Location{Latitude: 40.0, Longitude: -74.0}
	target := entity.Location{Latitude: 40.0, Longitude: -73.95}

	id := uuid.New()
	require.NoError(t, index.Upsert(ctx, id, target))

	exactKm := geo.Distance(
		orb.Point{center.Longitude, center.Latitude},
		orb.Point{target.Longitude, target.Latitude},
	) / 1000

	ids, err := index.QueryNearby(ctx, center, exactKm)
	require.NoError(t, err)
	assert.Contains(t, ids, id)

	ids, err = index.QueryNearby(ctx, center, exactKm*0.99)
	require.NoError(t, err)
	assert.NotContains(t, ids, id)
}

func TestGridIndex_QueryNearby_WrapsAntimeridian(t *testing.T) {
	ctx := context.Background()
	index := NewGridIndex(1.0)

	// ~2.2km apart, but on opposite sides of the ±180° seam.
	id := uuid.New()
	require.NoError(t, index.Upsert(ctx, id, entity.Location{Latitude: 0, Longitude: -179.99}))

	ids, err := index.QueryNearby(ctx, entity.Location{Latitude: 0, Longitude: 179.99}, 10)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{id}, ids)

	// And the other direction.
	ids, err = index.QueryNearby(ctx, entity.Location{Latitude: 0, Longitude: -179.99}, 10)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{id}, ids)
}

func TestGridIndex_Upsert_MovesFacility(t *testing.T) {
	ctx := context.Background()
	index := NewGridIndex(1.0)

	id := uuid.New()
	require.NoError(t, index.Upsert(ctx, id, entity.Location{Latitude: 40.0, Longitude: -74.0}))

	// Move the facility far away; the old cell entry must not linger.
	require.NoError(t, index.Upsert(ctx, id, entity.Location{Latitude: 41.0, Longitude: -74.0}))
	assert.Equal(t, 1, index.Size())

	ids, err := index.QueryNearby(ctx, entity.Location{Latitude: 40.0, Longitude: -74.0}, 5)
	require.NoError(t, err)
	assert.Empty(t, ids)

	ids, err = index.QueryNearby(ctx, entity.Location{Latitude: 41.0, Longitude: -74.0}, 5)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{id}, ids)
}
