// Command import bootstraps facilities from the configured place-search
// provider around a center coordinate.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"pulse/config"
	"pulse/internal/domain/entity"
	"pulse/internal/infra/geoindex"
	logs "pulse/internal/infra/log"
	"pulse/internal/infra/persistence/postgres"
	"pulse/internal/infra/places"
	"pulse/internal/usecase"
	"pulse/internal/usecase/impl"

	"go.uber.org/fx"
)

type importFlags struct {
	lat          float64
	lng          float64
	radiusKm     float64
	facilityType string
}

type runImportParams struct {
	fx.In
	fx.Shutdowner

	FacilityUC usecase.FacilityUsecase
	Logger     *slog.Logger
}

func main() {
	flags := importFlags{}
	flag.Float64Var(&flags.lat, "lat", 0, "Latitude of the import center")
	flag.Float64Var(&flags.lng, "lng", 0, "Longitude of the import center")
	flag.Float64Var(&flags.radiusKm, "radius", 5, "Search radius in kilometers")
	flag.StringVar(&flags.facilityType, "type", "hospital", "Facility type to import (hospital, urgent_care, clinic, pharmacy, other)")
	flag.Parse()

	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			postgres.NewFacilityRepository,
			geoindex.New,
			places.NewPlaceSearchProvider,
			impl.NewFacilityService,
			func() importFlags { return flags },
		),
		fx.Invoke(runImport),
	).Run()
}

func runImport(ctx context.Context, flags importFlags, params runImportParams) {
	go func() {
		output, err := params.FacilityUC.ImportNearby(ctx, &usecase.ImportNearbyInput{
			Center:   entity.Location{Latitude: flags.lat, Longitude: flags.lng},
			RadiusKm: flags.radiusKm,
			Type:     entity.FacilityType(flags.facilityType),
		})
		if err != nil {
			params.Logger.Error("Import failed", slog.Any("error", err))
			if shutdownErr := params.Shutdown(fx.ExitCode(1)); shutdownErr != nil {
				os.Exit(1)
			}

			return
		}

		params.Logger.Info("Import finished",
			slog.Int("imported", output.Imported),
			slog.Int("skipped", output.Skipped),
		)

		if err := params.Shutdown(); err != nil {
			os.Exit(1)
		}
	}()
}
