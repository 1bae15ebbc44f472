package postgres

import (
	"context"
	"time"

	"housecash/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type healthRepository struct {
	db *gorm.DB
}

// NewHealthRepository is the constructor for healthRepository.
func NewHealthRepository(db *gorm.DB) repository.HealthRepository {
	return &healthRepository{
		db: db,
	}
}

// Now is the only raw SQL in the persistence layer.
func (repo *healthRepository) Now(ctx context.Context) (time.Time, error) {
	var now time.Time

	if err := repo.db.WithContext(ctx).Raw("SELECT NOW()").Scan(&now).Error; err != nil {
		return time.Time{}, errors.Wrap(err, "failed to query database time")
	}

	return now, nil
}
