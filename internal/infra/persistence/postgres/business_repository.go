package postgres

import (
	"context"

	"housecash/internal/domain/entity"
	domainerrors "housecash/internal/domain/errors"
	"housecash/internal/domain/repository"
	"housecash/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// businessInfoColumns are the columns an info upsert overwrites. The JSON
// columns have their own update paths.
var businessInfoColumns = []string{
	"business_name", "legal_name", "description", "telephone", "email", "website",
	"street_address", "city", "state", "postal_code", "country",
	"latitude", "longitude", "price_range", "logo", "image",
	"founding_date", "payment_accepted", "area_served", "updated_at",
}

type businessInfoRepository struct {
	db *gorm.DB
}

// NewBusinessInfoRepository is the constructor for businessInfoRepository.
func NewBusinessInfoRepository(db *gorm.DB) repository.BusinessInfoRepository {
	return &businessInfoRepository{
		db: db,
	}
}

// Find returns the oldest business row.
func (repo *businessInfoRepository) Find(ctx context.Context) (*entity.BusinessInfo, error) {
	infoM, err := firstBusinessInfo(repo.db.WithContext(ctx))
	if err != nil {
		return nil, err
	}

	return toBusinessInfoDomain(infoM), nil
}

// Upsert reads from the primary so a just-created row is never duplicated.
func (repo *businessInfoRepository) Upsert(ctx context.Context, info *entity.BusinessInfo) error {
	db := repo.db.WithContext(ctx).Clauses(dbresolver.Write)

	existing, err := firstBusinessInfo(db)
	if errors.Is(err, repository.ErrBusinessInfoNotFound) {
		infoM := fromBusinessInfoDomain(info)
		if err := db.Create(infoM).Error; err != nil {
			return translateWriteError(err, domainerrors.ErrBusinessInfoUpdateFailed, "failed to create business info")
		}
		info.ID = infoM.ID
		info.CreatedAt = infoM.CreatedAt
		info.UpdatedAt = infoM.UpdatedAt

		return nil
	}
	if err != nil {
		return err
	}

	infoM := fromBusinessInfoDomain(info)
	if err := db.Model(existing).Select(businessInfoColumns).Updates(infoM).Error; err != nil {
		return translateWriteError(err, domainerrors.ErrBusinessInfoUpdateFailed, "failed to update business info")
	}
	info.ID = existing.ID
	info.CreatedAt = existing.CreatedAt
	info.UpdatedAt = infoM.UpdatedAt

	return nil
}

func (repo *businessInfoRepository) UpdateOpeningHours(ctx context.Context, hours entity.OpeningHours, defaultName string) error {
	return repo.updateColumn(ctx, "opening_hours", datatypes.NewJSONType(hours), func(m *model.BusinessInfoModel) {
		m.OpeningHours = datatypes.NewJSONType(hours)
	}, defaultName)
}

func (repo *businessInfoRepository) UpdateSocialProfiles(ctx context.Context, profiles []entity.SocialProfile, defaultName string) error {
	return repo.updateColumn(ctx, "social_profiles", datatypes.NewJSONType(profiles), func(m *model.BusinessInfoModel) {
		m.SocialProfiles = datatypes.NewJSONType(profiles)
	}, defaultName)
}

// updateColumn writes one column of the singleton, creating the row named
// defaultName when none exists.
func (repo *businessInfoRepository) updateColumn(ctx context.Context, column string, value any, seed func(*model.BusinessInfoModel), defaultName string) error {
	db := repo.db.WithContext(ctx).Clauses(dbresolver.Write)

	existing, err := firstBusinessInfo(db)
	if errors.Is(err, repository.ErrBusinessInfoNotFound) {
		infoM := &model.BusinessInfoModel{BusinessName: defaultName}
		seed(infoM)
		if err := db.Create(infoM).Error; err != nil {
			return translateWriteError(err, domainerrors.ErrBusinessInfoUpdateFailed, "failed to create business info")
		}

		return nil
	}
	if err != nil {
		return err
	}

	if err := db.Model(existing).Update(column, value).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update "+column)
	}

	return nil
}

func firstBusinessInfo(db *gorm.DB) (*model.BusinessInfoModel, error) {
	var infoM model.BusinessInfoModel

	if err := db.Order("created_at ASC").First(&infoM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBusinessInfoNotFound
		}

		return nil, errors.Wrap(err, "failed to find business info")
	}

	return &infoM, nil
}

// translateWriteError maps constraint failures onto the caller's domain error.
func translateWriteError(err error, domainErr *domainerrors.BaseError, details string) error {
	switch {
	case isUniqueConstraintViolation(err):
		return domainErr.WrapMessage("duplicate record")
	case isNotNullConstraintViolation(err):
		return domainErr.WrapMessage("missing required information")
	case isCheckConstraintViolation(err):
		return domainErr.WrapMessage("value out of range")
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}
