package repository

import (
	"context"

	"housecash/internal/domain/entity"
)

// EnquiryRepository persists contact form enquiries.
type EnquiryRepository interface {
	Create(ctx context.Context, enquiry *entity.Enquiry) error

	// ListRecent returns up to limit enquiries, newest first. A limit of 0 returns all.
	ListRecent(ctx context.Context, limit int) ([]*entity.Enquiry, error)

	Count(ctx context.Context) (int64, error)
}
