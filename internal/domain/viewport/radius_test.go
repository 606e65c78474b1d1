package viewport

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRadiusForZoom(t *testing.T) {
	tests := []struct {
		name     string
		zoom     float64
		expected float64
	}{
		{"far out", 3, 20},
		{"just below city level", 9.9, 20},
		{"city level", 10, 10},
		{"district", 11.5, 10},
		{"neighborhood", 12, 5},
		{"street low", 14, 2},
		{"street high", 15.9, 2},
		{"block", 16, 1},
		{"max zoom", 21, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RadiusForZoom(tt.zoom))
		})
	}
}
