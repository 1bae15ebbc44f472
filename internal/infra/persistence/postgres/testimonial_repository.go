package postgres

import (
	"context"

	"housecash/internal/domain/entity"
	domainerrors "housecash/internal/domain/errors"
	"housecash/internal/domain/repository"
	"housecash/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

type testimonialRepository struct {
	db *gorm.DB
}

// NewTestimonialRepository is the constructor for testimonialRepository.
func NewTestimonialRepository(db *gorm.DB) repository.TestimonialRepository {
	return &testimonialRepository{
		db: db,
	}
}

func (repo *testimonialRepository) List(ctx context.Context, filter repository.TestimonialFilter) ([]*entity.Testimonial, error) {
	var testimonialModels []*model.TestimonialModel

	query := repo.db.WithContext(ctx).Order("date DESC")
	if filter.FeaturedOnly {
		query = query.Where("featured = ?", true)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	if err := query.Find(&testimonialModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list testimonials")
	}

	testimonials := make([]*entity.Testimonial, 0, len(testimonialModels))
	for _, testimonialM := range testimonialModels {
		testimonials = append(testimonials, toTestimonialDomain(testimonialM))
	}

	return testimonials, nil
}

func (repo *testimonialRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Testimonial, error) {
	return repo.findByID(repo.db.WithContext(ctx), id)
}

func (repo *testimonialRepository) findByID(db *gorm.DB, id uuid.UUID) (*entity.Testimonial, error) {
	var testimonialM model.TestimonialModel

	if err := db.Where("id = ?", id).First(&testimonialM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTestimonialNotFound
		}

		return nil, errors.Wrap(err, "failed to find testimonial by ID")
	}

	return toTestimonialDomain(&testimonialM), nil
}

func (repo *testimonialRepository) Create(ctx context.Context, testimonial *entity.Testimonial) error {
	testimonialM := fromTestimonialDomain(testimonial)

	if err := repo.db.WithContext(ctx).Create(testimonialM).Error; err != nil {
		return translateWriteError(err, domainerrors.ErrTestimonialCreateFailed, "failed to create testimonial")
	}

	testimonial.ID = testimonialM.ID
	testimonial.CreatedAt = testimonialM.CreatedAt
	testimonial.UpdatedAt = testimonialM.UpdatedAt

	return nil
}

// Update writes every column and reloads the row from the primary.
func (repo *testimonialRepository) Update(ctx context.Context, testimonial *entity.Testimonial) error {
	db := repo.db.WithContext(ctx).Clauses(dbresolver.Write)
	testimonialM := fromTestimonialDomain(testimonial)

	result := db.Model(&model.TestimonialModel{ID: testimonial.ID}).
		Select("*").
		Omit("id", "created_at").
		Updates(testimonialM)
	if result.Error != nil {
		return translateWriteError(result.Error, domainerrors.ErrTestimonialUpdateFailed, "failed to update testimonial")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTestimonialNotFound
	}

	saved, err := repo.findByID(db, testimonial.ID)
	if err != nil {
		return err
	}
	*testimonial = *saved

	return nil
}

func (repo *testimonialRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.TestimonialModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete testimonial")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTestimonialNotFound
	}

	return nil
}

func (repo *testimonialRepository) Count(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).Model(&model.TestimonialModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count testimonials")
	}

	return count, nil
}
