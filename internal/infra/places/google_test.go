package places

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"pulse/config"
	"pulse/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewGooglePlacesProvider_RequiresAPIKey(t *testing.T) {
	_, err := NewGooglePlacesProvider(&config.PlacesConfig{}, newTestLogger())
	assert.Error(t, err)

	_, err = NewGooglePlacesProvider(nil, newTestLogger())
	assert.Error(t, err)
}

func TestGooglePlacesProvider_SearchNearby(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/nearbysearch/json", r.URL.Path)
		query := r.URL.Query()
		assert.Equal(t, "25.033,121.5654", query.Get("location"))
		assert.Equal(t, "2000", query.Get("radius"))
		assert.Equal(t, "hospital", query.Get("type"))
		assert.Equal(t, "test-key", query.Get("key"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": "OK",
			"results": [
				{
					"place_id": "place-1",
					"name": "General Hospital",
					"vicinity": "1 Main St",
					"geometry": {"location": {"lat": 25.04, "lng": 121.56}},
					"rating": 4.2,
					"formatted_phone_number": "+886 2 1234 5678",
					"website": "https://hospital.example"
				},
				{
					"place_id": "place-2",
					"name": "Side Clinic",
					"vicinity": "2 Side St",
					"geometry": {"location": {"lat": 25.05, "lng": 121.57}}
				}
			]
		}`))
	}))
	defer server.Close()

	provider, err := NewGooglePlacesProvider(&config.PlacesConfig{
		APIKey:  "test-key",
		BaseURL: server.URL,
	}, newTestLogger())
	require.NoError(t, err)

	center := entity.Location{Latitude: 25.033, Longitude: 121.5654}
	places, err := provider.SearchNearby(context.Background(), center, 2.0, entity.FacilityTypeHospital)
	require.NoError(t, err)
	require.Len(t, places, 2)

	assert.Equal(t, "place-1", places[0].PlaceID)
	assert.Equal(t, "General Hospital", places[0].Name)
	assert.Equal(t, "1 Main St", places[0].Address)
	assert.InDelta(t, 25.04, places[0].Location.Latitude, 1e-9)
	assert.InDelta(t, 121.56, places[0].Location.Longitude, 1e-9)
	assert.True(t, places[0].HasRating)
	assert.InDelta(t, 4.2, places[0].Rating, 1e-9)
	assert.Equal(t, "https://hospital.example", places[0].Website)

	assert.Equal(t, "place-2", places[1].PlaceID)
	assert.False(t, places[1].HasRating)
}

func TestGooglePlacesProvider_SearchNearby_ZeroResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status": "ZERO_RESULTS", "results": []}`))
	}))
	defer server.Close()

	provider, err := NewGooglePlacesProvider(&config.PlacesConfig{
		APIKey:  "test-key",
		BaseURL: server.URL,
	}, newTestLogger())
	require.NoError(t, err)

	places, err := provider.SearchNearby(context.Background(), entity.Location{}, 1.0, entity.FacilityTypePharmacy)
	require.NoError(t, err)
	assert.Empty(t, places)
}

func TestGooglePlacesProvider_SearchNearby_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status": "REQUEST_DENIED", "error_message": "bad key"}`))
	}))
	defer server.Close()

	provider, err := NewGooglePlacesProvider(&config.PlacesConfig{
		APIKey:  "bogus",
		BaseURL: server.URL,
	}, newTestLogger())
	require.NoError(t, err)

	_, err = provider.SearchNearby(context.Background(), entity.Location{}, 1.0, entity.FacilityTypeClinic)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "REQUEST_DENIED")
}

func TestGooglePlaceType(t *testing.T) {
	assert.Equal(t, "hospital", googlePlaceType(entity.FacilityTypeHospital))
	assert.Equal(t, "pharmacy", googlePlaceType(entity.FacilityTypePharmacy))
	assert.Equal(t, "doctor", googlePlaceType(entity.FacilityTypeClinic))
	assert.Equal(t, "health", googlePlaceType(entity.FacilityTypeUrgentCare))
	assert.Equal(t, "health", googlePlaceType(entity.FacilityType("bogus")))
}
