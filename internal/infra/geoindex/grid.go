// Package geoindex provides the radius-query backends behind the domain's
// GeoIndex interface.
package geoindex

import (
	"context"
	"math"
	"sync"

	"pulse/internal/domain/entity"
	"pulse/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// 1 degree latitude ≈ 111 km everywhere; longitude degrees shrink with
// latitude, so cells use the equator width and queries over-scan instead.
const kmPerDegree = 111.0

const defaultCellSizeKm = 1.0

type gridKey struct {
	latCell int
	lngCell int
}

// GridIndex is an in-process grid-bucketed geo index. Candidate cells are
// over-selected from the query's bounding box and every candidate is
// distance-checked with the great-circle distance, so there are no false
// positives and no false negatives. A facility at exactly the query radius
// is included.
type GridIndex struct {
	mu          sync.RWMutex
	cellSizeDeg float64
	lngCells    int
	cells       map[gridKey][]uuid.UUID
	locations   map[uuid.UUID]entity.Location
}

// NewGridIndex creates a new grid-based geo index. cellSizeKm determines the
// grid cell size (smaller = more cells, faster lookup but more memory).
func NewGridIndex(cellSizeKm float64) *GridIndex {
	if cellSizeKm <= 0 {
		cellSizeKm = defaultCellSizeKm
	}

	cellSizeDeg := cellSizeKm / kmPerDegree

	return &GridIndex{
		cellSizeDeg: cellSizeDeg,
		lngCells:    int(math.Ceil(360 / cellSizeDeg)),
		cells:       make(map[gridKey][]uuid.UUID),
		locations:   make(map[uuid.UUID]entity.Location),
	}
}

// Upsert registers or moves a facility location in the index.
func (g *GridIndex) Upsert(_ context.Context, id uuid.UUID, location entity.Location) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if prev, ok := g.locations[id]; ok {
		g.removeFromCell(g.keyFor(prev), id)
	}

	key := g.keyFor(location)
	g.cells[key] = append(g.cells[key], id)
	g.locations[id] = location

	return nil
}

// QueryNearby returns the ids of all facilities within radiusKm of the center.
func (g *GridIndex) QueryNearby(_ context.Context, center entity.Location, radiusKm float64) ([]uuid.UUID, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	centerPt := orb.Point{center.Longitude, center.Latitude}
	radiusMeters := radiusKm * 1000

	// Longitude degrees per km widen toward the poles; clamp the cosine so a
	// near-pole center still yields a finite scan window.
	latRad := center.Latitude * math.Pi / 180
	cosLat := math.Max(math.Cos(latRad), 0.01)

	latSpan := int(math.Ceil(radiusKm/kmPerDegree/g.cellSizeDeg)) + 1
	lngSpan := int(math.Ceil(radiusKm/(kmPerDegree*cosLat)/g.cellSizeDeg)) + 1

	// Longitude cells wrap at the antimeridian; cap the window at one full
	// circumference so a huge radius does not visit the same cell twice.
	lngWindow := 2*lngSpan + 1
	if lngWindow > g.lngCells {
		lngWindow = g.lngCells
	}

	centerKey := g.keyFor(center)
	var ids []uuid.UUID
	for latCell := centerKey.latCell - latSpan; latCell <= centerKey.latCell+latSpan; latCell++ {
		for i := 0; i < lngWindow; i++ {
			lngCell := g.wrapLngCell(centerKey.lngCell - lngSpan + i)
			for _, id := range g.cells[gridKey{latCell: latCell, lngCell: lngCell}] {
				loc := g.locations[id]
				dist := geo.Distance(centerPt, orb.Point{loc.Longitude, loc.Latitude})
				if dist <= radiusMeters {
					ids = append(ids, id)
				}
			}
		}
	}

	return ids, nil
}

// Size returns the number of facilities in the index.
func (g *GridIndex) Size() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.locations)
}

func (g *GridIndex) keyFor(location entity.Location) gridKey {
	return gridKey{
		latCell: int(math.Floor(location.Latitude / g.cellSizeDeg)),
		lngCell: g.wrapLngCell(int(math.Floor(location.Longitude / g.cellSizeDeg))),
	}
}

// wrapLngCell folds a raw longitude cell index onto [0, lngCells) so cells on
// either side of the ±180° seam land in the same bucket space.
func (g *GridIndex) wrapLngCell(cell int) int {
	cell %= g.lngCells
	if cell < 0 {
		cell += g.lngCells
	}

	return cell
}

func (g *GridIndex) removeFromCell(key gridKey, id uuid.UUID) {
	bucket := g.cells[key]
	for i, existing := range bucket {
		if existing == id {
			bucket[i] = bucket[len(bucket)-1]
			g.cells[key] = bucket[:len(bucket)-1]

			break
		}
	}
	if len(g.cells[key]) == 0 {
		delete(g.cells, key)
	}
}

// Interface guard
var _ repository.GeoIndex = (*GridIndex)(nil)
