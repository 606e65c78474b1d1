// Package places implements the external place-search provider backed by the
// Google Places Nearby Search API.
package places

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"pulse/config"
	"pulse/internal/domain/entity"
	"pulse/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	defaultBaseURL = "https://maps.googleapis.com/maps/api/place"
	defaultTimeout = 10 * time.Second

	statusOK          = "OK"
	statusZeroResults = "ZERO_RESULTS"
)

// googlePlacesProvider implements PlaceSearchProvider against the Google
// Places Nearby Search endpoint.
type googlePlacesProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewGooglePlacesProvider creates a place-search provider from config.
// The base URL is overridable so tests can point at a local server.
func NewGooglePlacesProvider(cfg *config.PlacesConfig, logger *slog.Logger) (service.PlaceSearchProvider, error) {
	if cfg == nil || cfg.APIKey == "" {
		return nil, errors.New("places API key is not configured")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &googlePlacesProvider{
		apiKey:  cfg.APIKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}, nil
}

// nearbySearchResponse is the wire shape of the Nearby Search endpoint.
type nearbySearchResponse struct {
	Results      []nearbyPlace `json:"results"`
	Status       string        `json:"status"`
	ErrorMessage string        `json:"error_message"`
}

type nearbyPlace struct {
	PlaceID  string `json:"place_id"`
	Name     string `json:"name"`
	Vicinity string `json:"vicinity"`
	Geometry struct {
		Location struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"location"`
	} `json:"geometry"`
	Rating               *float64 `json:"rating,omitempty"`
	FormattedPhoneNumber string   `json:"formatted_phone_number,omitempty"`
	Website              string   `json:"website,omitempty"`
}

// SearchNearby queries the Nearby Search endpoint for places of the given type
// within radiusKm of the center.
func (p *googlePlacesProvider) SearchNearby(ctx context.Context, center entity.Location, radiusKm float64, facilityType entity.FacilityType) ([]*service.Place, error) {
	query := url.Values{}
	query.Set("location", strconv.FormatFloat(center.Latitude, 'f', -1, 64)+","+strconv.FormatFloat(center.Longitude, 'f', -1, 64))
	query.Set("radius", strconv.Itoa(int(radiusKm*1000)))
	query.Set("type", googlePlaceType(facilityType))
	query.Set("key", p.apiKey)

	endpoint := p.baseURL + "/nearbysearch/json?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "nearby search request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("nearby search returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var parsed nearbySearchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, errors.Wrap(err, "decode nearby search response")
	}

	if parsed.Status != statusOK && parsed.Status != statusZeroResults {
		return nil, errors.Errorf("nearby search status %s: %s", parsed.Status, parsed.ErrorMessage)
	}

	places := make([]*service.Place, 0, len(parsed.Results))
	for _, result := range parsed.Results {
		place := &service.Place{
			PlaceID: result.PlaceID,
			Name:    result.Name,
			Address: result.Vicinity,
			Location: entity.Location{
				Latitude:  result.Geometry.Location.Lat,
				Longitude: result.Geometry.Location.Lng,
			},
			PhoneNumber: result.FormattedPhoneNumber,
			Website:     result.Website,
		}
		if result.Rating != nil {
			place.Rating = *result.Rating
			place.HasRating = true
		}
		places = append(places, place)
	}

	p.logger.Debug("[Places] Nearby search completed",
		slog.String("type", string(facilityType)),
		slog.Int("results", len(places)),
	)

	return places, nil
}

// googlePlaceType maps a facility type to the closest Places API type filter.
func googlePlaceType(facilityType entity.FacilityType) string {
	switch facilityType {
	case entity.FacilityTypeHospital:
		return "hospital"
	case entity.FacilityTypePharmacy:
		return "pharmacy"
	case entity.FacilityTypeClinic:
		return "doctor"
	case entity.FacilityTypeUrgentCare, entity.FacilityTypeOther:
		return "health"
	default:
		return "health"
	}
}
