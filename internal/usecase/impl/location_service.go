package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "housecash/internal/delivery/context"
	"housecash/internal/domain/entity"
	"housecash/internal/domain/repository"
	"housecash/internal/usecase"
)

type locationService struct {
	txManager    repository.TransactionManager
	locationRepo repository.LocationRepository
	logger       *slog.Logger
}

// NewLocationService creates a new location service instance
func NewLocationService(
	txManager repository.TransactionManager,
	locationRepo repository.LocationRepository,
	logger *slog.Logger,
) usecase.LocationUsecase {
	return &locationService{
		txManager:    txManager,
		locationRepo: locationRepo,
		logger:       logger,
	}
}

func (srv *locationService) ListLocations(ctx context.Context) ([]*entity.BusinessLocation, error) {
	locations, err := srv.locationRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}

	return locations, nil
}

// ReplaceLocations clears, deletes and reinserts inside one transaction.
func (srv *locationService) ReplaceLocations(ctx context.Context, inputs []*usecase.LocationInput) ([]*entity.BusinessLocation, error) {
	locations := make([]*entity.BusinessLocation, 0, len(inputs))
	for _, input := range inputs {
		locations = append(locations, &entity.BusinessLocation{
			Name:          input.Name,
			StreetAddress: input.StreetAddress,
			City:          input.City,
			State:         input.State,
			PostalCode:    input.PostalCode,
			Country:       input.Country,
			Phone:         input.Phone,
			Email:         input.Email,
			Latitude:      input.Latitude,
			Longitude:     input.Longitude,
			IsPrimary:     input.IsPrimary,
		})
	}
	entity.EnforceSinglePrimary(locations)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		locationRepo := repoFactory.LocationRepo()

		if err := locationRepo.ClearPrimary(ctx); err != nil {
			return fmt.Errorf("failed to clear primary location: %w", err)
		}
		if err := locationRepo.DeleteAll(ctx); err != nil {
			return fmt.Errorf("failed to delete locations: %w", err)
		}
		if len(locations) == 0 {
			return nil
		}
		if err := locationRepo.CreateMany(ctx, locations); err != nil {
			return fmt.Errorf("failed to create locations: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to replace locations: %w", err)
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Locations replaced", "count", len(locations))

	return locations, nil
}
