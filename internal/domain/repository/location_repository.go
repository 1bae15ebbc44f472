package repository

import (
	"context"

	"housecash/internal/domain/entity"
)

// LocationRepository persists business locations.
type LocationRepository interface {
	// List returns all locations, primary first then oldest first.
	List(ctx context.Context) ([]*entity.BusinessLocation, error)

	// ClearPrimary unsets the primary flag on every location.
	ClearPrimary(ctx context.Context) error

	// DeleteAll removes every location.
	DeleteAll(ctx context.Context) error

	// CreateMany inserts the given locations in order.
	CreateMany(ctx context.Context, locations []*entity.BusinessLocation) error
}
