package impl

import (
	"context"
	"testing"
	"time"

	mockRepo "housecash/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestHealthService_CheckDatabase(t *testing.T) {
	healthRepo := mockRepo.NewMockHealthRepository(t)
	srv := NewHealthService(healthRepo)

	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	healthRepo.EXPECT().Now(mock.Anything).Return(now, nil).Once()

	got, err := srv.CheckDatabase(context.Background())

	require.NoError(t, err)
	assert.Equal(t, now, got)
}

func TestHealthService_CheckDatabase_Error(t *testing.T) {
	healthRepo := mockRepo.NewMockHealthRepository(t)
	srv := NewHealthService(healthRepo)

	cause := errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")
	healthRepo.EXPECT().Now(mock.Anything).Return(time.Time{}, cause).Once()

	got, err := srv.CheckDatabase(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "database ping failed")
	assert.True(t, got.IsZero())
}
