package impl

import (
	"context"
	"testing"

	"housecash/internal/domain/entity"
	"housecash/internal/domain/repository"
	mockRepo "housecash/internal/mocks/repository"
	"housecash/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type locationServiceFixtures struct {
	t            *testing.T
	service      usecase.LocationUsecase
	txManager    *mockRepo.MockTransactionManager
	locationRepo *mockRepo.MockLocationRepository
}

func createTestLocationService(t *testing.T) locationServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	locationRepo := mockRepo.NewMockLocationRepository(t)

	return locationServiceFixtures{
		t:            t,
		service:      NewLocationService(txManager, locationRepo, discardLogger()),
		txManager:    txManager,
		locationRepo: locationRepo,
	}
}

// onExecute runs fn against a factory prepared by setup and makes Execute
// return what fn returned.
func (fx locationServiceFixtures) onExecute(ctx context.Context, setup func(txRepo *mockRepo.MockLocationRepository)) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(fx.t)
			txRepo := mockRepo.NewMockLocationRepository(fx.t)

			mockFactory.EXPECT().LocationRepo().Return(txRepo)
			setup(txRepo)

			return fn(mockFactory)
		})
}

func TestLocationService_ListLocations(t *testing.T) {
	fx := createTestLocationService(t)
	ctx := context.Background()
	expected := []*entity.BusinessLocation{{Name: "Head office", IsPrimary: true}, {Name: "Branch"}}

	fx.locationRepo.EXPECT().List(ctx).Return(expected, nil)

	locations, err := fx.service.ListLocations(ctx)
	require.NoError(t, err)
	assert.Equal(t, expected, locations)
}

func TestLocationService_ReplaceLocations_PrimaryRule(t *testing.T) {
	tests := []struct {
		name        string
		flags       []bool
		wantPrimary []bool
	}{
		{name: "none flagged promotes first", flags: []bool{false, false, false}, wantPrimary: []bool{true, false, false}},
		{name: "single flag kept", flags: []bool{false, true, false}, wantPrimary: []bool{false, true, false}},
		{name: "first of several flags wins", flags: []bool{false, true, true}, wantPrimary: []bool{false, true, false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestLocationService(t)
			ctx := context.Background()

			inputs := make([]*usecase.LocationInput, 0, len(tt.flags))
			for _, flag := range tt.flags {
				inputs = append(inputs, &usecase.LocationInput{Name: "Office", IsPrimary: flag})
			}

			var created []*entity.BusinessLocation
			fx.onExecute(ctx, func(txRepo *mockRepo.MockLocationRepository) {
				txRepo.EXPECT().ClearPrimary(ctx).Return(nil)
				txRepo.EXPECT().DeleteAll(ctx).Return(nil)
				txRepo.EXPECT().
					CreateMany(ctx, mock.AnythingOfType("[]*entity.BusinessLocation")).
					Run(func(_ context.Context, locations []*entity.BusinessLocation) { created = locations }).
					Return(nil)
			})

			locations, err := fx.service.ReplaceLocations(ctx, inputs)
			require.NoError(t, err)
			require.Len(t, created, len(tt.flags))

			primaries := 0
			for i, loc := range locations {
				assert.Equal(t, tt.wantPrimary[i], loc.IsPrimary, "location %d", i)
				if loc.IsPrimary {
					primaries++
				}
			}
			assert.Equal(t, 1, primaries)
		})
	}
}

func TestLocationService_ReplaceLocations_EmptyClearsAll(t *testing.T) {
	fx := createTestLocationService(t)
	ctx := context.Background()

	fx.onExecute(ctx, func(txRepo *mockRepo.MockLocationRepository) {
		txRepo.EXPECT().ClearPrimary(ctx).Return(nil)
		txRepo.EXPECT().DeleteAll(ctx).Return(nil)
	})

	locations, err := fx.service.ReplaceLocations(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, locations)
}

func TestLocationService_ReplaceLocations_InsertFailureRollsBack(t *testing.T) {
	fx := createTestLocationService(t)
	ctx := context.Background()

	fx.onExecute(ctx, func(txRepo *mockRepo.MockLocationRepository) {
		txRepo.EXPECT().ClearPrimary(ctx).Return(nil)
		txRepo.EXPECT().DeleteAll(ctx).Return(nil)
		txRepo.EXPECT().CreateMany(ctx, mock.Anything).Return(errors.New("unique violation"))
	})

	_, err := fx.service.ReplaceLocations(ctx, []*usecase.LocationInput{{Name: "Office"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to replace locations")
	assert.Contains(t, err.Error(), "failed to create locations")
}
