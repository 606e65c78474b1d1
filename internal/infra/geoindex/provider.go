package geoindex

import (
	"log/slog"

	"pulse/config"
	"pulse/internal/domain/constants"
	"pulse/internal/domain/repository"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Params holds dependencies for the geo index provider, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	DB     *gorm.DB
}

// New creates a GeoIndex backend based on configuration. PostGIS is the
// default; the in-process grid exists for development and tests.
func New(params Params) (repository.GeoIndex, error) {
	cfg := params.Config.GeoIndex
	if cfg == nil || cfg.Provider == "" || cfg.Provider == constants.GeoIndexProviderPostgres {
		params.Logger.Info("Using PostGIS geo index")

		return NewPostgresGeoIndex(params.DB), nil
	}

	switch cfg.Provider {
	case constants.GeoIndexProviderMemory:
		params.Logger.Info("Using in-memory grid geo index",
			slog.Float64("grid_cell_size_km", cfg.GridCellSizeKm),
		)

		return NewGridIndex(cfg.GridCellSizeKm), nil

	default:
		return nil, errors.Errorf("unknown geo index provider: %s", cfg.Provider)
	}
}
