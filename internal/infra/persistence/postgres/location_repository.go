package postgres

import (
	"context"

	"housecash/internal/domain/entity"
	domainerrors "housecash/internal/domain/errors"
	"housecash/internal/domain/repository"
	"housecash/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{
		db: db,
	}
}

func (repo *locationRepository) List(ctx context.Context) ([]*entity.BusinessLocation, error) {
	var locationModels []*model.BusinessLocationModel

	if err := repo.db.WithContext(ctx).
		Order("is_primary DESC").
		Order("created_at ASC").
		Find(&locationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list locations")
	}

	locations := make([]*entity.BusinessLocation, 0, len(locationModels))
	for _, locationM := range locationModels {
		locations = append(locations, toLocationDomain(locationM))
	}

	return locations, nil
}

func (repo *locationRepository) ClearPrimary(ctx context.Context) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.BusinessLocationModel{}).
		Where("is_primary = ?", true).
		Update("is_primary", false).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear primary location")
	}

	return nil
}

func (repo *locationRepository) DeleteAll(ctx context.Context) error {
	if err := repo.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&model.BusinessLocationModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete locations")
	}

	return nil
}

// CreateMany inserts one row at a time so created_at preserves input order.
func (repo *locationRepository) CreateMany(ctx context.Context, locations []*entity.BusinessLocation) error {
	db := repo.db.WithContext(ctx)

	for _, location := range locations {
		locationM := fromLocationDomain(location)
		if err := db.Create(locationM).Error; err != nil {
			return translateWriteError(err, domainerrors.ErrLocationsUpdateFailed, "failed to create location")
		}

		location.ID = locationM.ID
		location.CreatedAt = locationM.CreatedAt
		location.UpdatedAt = locationM.UpdatedAt
	}

	return nil
}
