package usecase

import (
	"context"
	"time"
)

// HealthUsecase probes dependencies for operational endpoints.
type HealthUsecase interface {
	// CheckDatabase returns the database clock when the connection works.
	CheckDatabase(ctx context.Context) (time.Time, error)
}
