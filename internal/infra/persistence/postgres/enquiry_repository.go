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

type enquiryRepository struct {
	db *gorm.DB
}

// NewEnquiryRepository is the constructor for enquiryRepository.
func NewEnquiryRepository(db *gorm.DB) repository.EnquiryRepository {
	return &enquiryRepository{
		db: db,
	}
}

func (repo *enquiryRepository) Create(ctx context.Context, enquiry *entity.Enquiry) error {
	enquiryM := fromEnquiryDomain(enquiry)

	if err := repo.db.WithContext(ctx).Create(enquiryM).Error; err != nil {
		return translateWriteError(err, domainerrors.ErrEnquiryCreateFailed, "failed to create enquiry")
	}

	enquiry.ID = enquiryM.ID
	enquiry.CreatedAt = enquiryM.CreatedAt

	return nil
}

func (repo *enquiryRepository) ListRecent(ctx context.Context, limit int) ([]*entity.Enquiry, error) {
	var enquiryModels []*model.EnquiryModel

	query := repo.db.WithContext(ctx).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&enquiryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list enquiries")
	}

	enquiries := make([]*entity.Enquiry, 0, len(enquiryModels))
	for _, enquiryM := range enquiryModels {
		enquiries = append(enquiries, toEnquiryDomain(enquiryM))
	}

	return enquiries, nil
}

func (repo *enquiryRepository) Count(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).Model(&model.EnquiryModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count enquiries")
	}

	return count, nil
}
