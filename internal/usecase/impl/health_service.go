package impl

import (
	"context"
	"time"

	"housecash/internal/domain/repository"
	"housecash/internal/usecase"

	"github.com/pkg/errors"
)

type healthService struct {
	healthRepo repository.HealthRepository
}

// NewHealthService creates a new health check service
func NewHealthService(healthRepo repository.HealthRepository) usecase.HealthUsecase {
	return &healthService{healthRepo: healthRepo}
}

func (srv *healthService) CheckDatabase(ctx context.Context) (time.Time, error) {
	now, err := srv.healthRepo.Now(ctx)
	if err != nil {
		return time.Time{}, errors.Wrap(err, "database ping failed")
	}

	return now, nil
}
