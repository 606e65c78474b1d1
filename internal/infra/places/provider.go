package places

import (
	"context"
	"log/slog"

	"pulse/config"
	"pulse/internal/domain/entity"
	"pulse/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// disabledProvider rejects searches when no place-search provider is
// configured. Imports fail loudly instead of silently returning nothing.
type disabledProvider struct{}

func (disabledProvider) SearchNearby(_ context.Context, _ entity.Location, _ float64, _ entity.FacilityType) ([]*service.Place, error) {
	return nil, errors.New("place search is not configured")
}

// ProviderParams holds dependencies for PlaceSearchProvider, injected by Fx.
type ProviderParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewPlaceSearchProvider creates a place-search provider from configuration,
// falling back to a disabled provider when no API key is set.
func NewPlaceSearchProvider(params ProviderParams) (service.PlaceSearchProvider, error) {
	cfg := params.Config.Places
	if cfg == nil || cfg.APIKey == "" {
		params.Logger.Info("Place search not configured, imports are disabled")

		return disabledProvider{}, nil
	}

	return NewGooglePlacesProvider(cfg, params.Logger)
}
