package main

import (
	"steamcache/internal/infra/persistence/model"

	"gorm.io/gen"
)

// Catalog tables stay on hand-written gorm chains for their dialect specific upserts.
func main() {
	models := []any{
		model.UserModel{},
		model.FavoriteModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
