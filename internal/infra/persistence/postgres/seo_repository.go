package postgres

import (
	"context"

	"housecash/internal/domain/entity"
	domainerrors "housecash/internal/domain/errors"
	"housecash/internal/domain/repository"
	"housecash/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

var seoSettingsColumns = []string{
	"site_name", "site_description",
	"google_analytics_id", "google_tag_manager_id", "facebook_pixel_id",
	"google_verification", "bing_verification", "default_og_image", "updated_at",
}

type seoSettingsRepository struct {
	db *gorm.DB
}

// NewSeoSettingsRepository is the constructor for seoSettingsRepository.
func NewSeoSettingsRepository(db *gorm.DB) repository.SeoSettingsRepository {
	return &seoSettingsRepository{
		db: db,
	}
}

func (repo *seoSettingsRepository) Find(ctx context.Context) (*entity.SeoSettings, error) {
	settingsM, err := firstSeoSettings(repo.db.WithContext(ctx))
	if err != nil {
		return nil, err
	}

	return toSeoSettingsDomain(settingsM), nil
}

func (repo *seoSettingsRepository) FindOrCreate(ctx context.Context, defaults *entity.SeoSettings) (*entity.SeoSettings, error) {
	db := repo.db.WithContext(ctx).Clauses(dbresolver.Write)

	settingsM, err := firstSeoSettings(db)
	if errors.Is(err, repository.ErrSeoSettingsNotFound) {
		settingsM = fromSeoSettingsDomain(defaults)
		if err := db.Create(settingsM).Error; err != nil {
			return nil, translateWriteError(err, domainerrors.ErrSeoSettingsFetchFailed, "failed to create default seo settings")
		}
	} else if err != nil {
		return nil, err
	}

	return toSeoSettingsDomain(settingsM), nil
}

func (repo *seoSettingsRepository) Upsert(ctx context.Context, settings *entity.SeoSettings) error {
	db := repo.db.WithContext(ctx).Clauses(dbresolver.Write)
	settingsM := fromSeoSettingsDomain(settings)

	existing, err := firstSeoSettings(db)
	switch {
	case errors.Is(err, repository.ErrSeoSettingsNotFound):
		settingsM.ID = settings.ID
		if err := db.Create(settingsM).Error; err != nil {
			return translateWriteError(err, domainerrors.ErrSeoSettingsUpdateFailed, "failed to create seo settings")
		}
	case err != nil:
		return err
	default:
		if err := db.Model(existing).Select(seoSettingsColumns).Updates(settingsM).Error; err != nil {
			return translateWriteError(err, domainerrors.ErrSeoSettingsUpdateFailed, "failed to update seo settings")
		}
		settingsM.ID = existing.ID
		settingsM.CreatedAt = existing.CreatedAt
	}

	settings.ID = settingsM.ID
	settings.CreatedAt = settingsM.CreatedAt
	settings.UpdatedAt = settingsM.UpdatedAt

	return nil
}

func firstSeoSettings(db *gorm.DB) (*model.SeoSettingsModel, error) {
	var settingsM model.SeoSettingsModel

	if err := db.Order("created_at ASC").First(&settingsM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSeoSettingsNotFound
		}

		return nil, errors.Wrap(err, "failed to find seo settings")
	}

	return &settingsM, nil
}
