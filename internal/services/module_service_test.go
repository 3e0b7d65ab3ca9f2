package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/skillforge/skillforge-api/internal/models"
	"github.com/skillforge/skillforge-api/internal/services"
	apperrors "github.com/skillforge/skillforge-api/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModuleService_UpdateProgress(t *testing.T) {
	moduleRepo := new(MockModuleRepository)
	progressRepo := new(MockProgressRepository)
	service := services.NewModuleService(moduleRepo, progressRepo)
	ctx := context.Background()

	moduleRepo.On("GetModule", ctx, "m1").Return(&models.Module{ID: "m1"}, nil).Once()
	progressRepo.On("UpdateProgress", ctx, "u1", "m1", 40).Return(&models.UserProgress{
		UserID:   "u1",
		ModuleID: "m1",
		Progress: 40,
	}, nil).Once()

	record, err := service.UpdateProgress(ctx, "u1", "m1", 40)
	require.NoError(t, err)
	assert.Equal(t, 40, record.Progress)
	assert.False(t, record.Completed)

	moduleRepo.AssertExpectations(t)
	progressRepo.AssertExpectations(t)
}

func TestModuleService_UpdateProgress_Completion(t *testing.T) {
	moduleRepo := new(MockModuleRepository)
	progressRepo := new(MockProgressRepository)
	service := services.NewModuleService(moduleRepo, progressRepo)
	ctx := context.Background()

	now := time.Now()
	moduleRepo.On("GetModule", ctx, "m1").Return(&models.Module{ID: "m1"}, nil).Once()
	progressRepo.On("UpdateProgress", ctx, "u1", "m1", 100).Return(&models.UserProgress{
		UserID:      "u1",
		ModuleID:    "m1",
		Progress:    100,
		Completed:   true,
		CompletedAt: &now,
	}, nil).Once()

	record, err := service.UpdateProgress(ctx, "u1", "m1", 100)
	require.NoError(t, err)
	assert.True(t, record.Completed)
	assert.NotNil(t, record.CompletedAt)
}

func TestModuleService_UpdateProgress_UnknownModule(t *testing.T) {
	moduleRepo := new(MockModuleRepository)
	progressRepo := new(MockProgressRepository)
	service := services.NewModuleService(moduleRepo, progressRepo)
	ctx := context.Background()

	moduleRepo.On("GetModule", ctx, "ghost").Return(nil, apperrors.NotFoundError("module")).Once()

	_, err := service.UpdateProgress(ctx, "u1", "ghost", 50)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	progressRepo.AssertNotCalled(t, "UpdateProgress")
}
