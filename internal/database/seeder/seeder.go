package seeder

import (
	"context"

	"competency-matrix/internal/database"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}
