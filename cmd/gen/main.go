package main

import (
	"pulse/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.FacilityModel{},
		model.ReviewModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
