// Package viewport maps map-viewport zoom levels to discovery search radii.
package viewport

// RadiusForZoom returns the search radius in kilometers for a map zoom level.
// Higher zoom means a tighter view and a smaller radius. The function is a
// pure step function so the thresholds stay independently testable instead of
// being inlined into the discovery call path.
func RadiusForZoom(zoom float64) float64 {
	switch {
	case zoom < 10:
		return 20
	case zoom < 12:
		return 10
	case zoom < 14:
		return 5
	case zoom < 16:
		return 2
	default:
		return 1
	}
}
