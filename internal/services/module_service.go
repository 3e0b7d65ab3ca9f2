package services

import (
	"context"

	"github.com/skillforge/skillforge-api/internal/models"
	"github.com/skillforge/skillforge-api/internal/repository"
	"github.com/skillforge/skillforge-api/pkg/logger"
	"github.com/skillforge/skillforge-api/pkg/metrics"
	"go.uber.org/zap"
)

// ModuleService handles learning modules and per-user progress
type ModuleService struct {
	moduleRepo   repository.ModuleRepositoryInterface
	progressRepo repository.ProgressRepositoryInterface
}

// NewModuleService creates a new module service
func NewModuleService(
	moduleRepo repository.ModuleRepositoryInterface,
	progressRepo repository.ProgressRepositoryInterface,
) *ModuleService {
	return &ModuleService{
		moduleRepo:   moduleRepo,
		progressRepo: progressRepo,
	}
}

var _ ModuleServiceInterface = (*ModuleService)(nil)

func (s *ModuleService) GetModules(ctx context.Context) ([]*models.Module, error) {
	return s.moduleRepo.GetModules(ctx)
}

func (s *ModuleService) GetModule(ctx context.Context, id string) (*models.Module, error) {
	return s.moduleRepo.GetModule(ctx, id)
}

func (s *ModuleService) CreateModule(ctx context.Context, input *models.ModuleInput) (*models.Module, error) {
	module, err := s.moduleRepo.CreateModule(ctx, input)
	if err != nil {
		logger.Error("Failed to create module", zap.Error(err))
		return nil, err
	}
	logger.Info("Module created", zap.String("module_id", module.ID), zap.String("title", module.Title))
	return module, nil
}

func (s *ModuleService) UpdateModule(ctx context.Context, id string, input *models.ModuleInput) (*models.Module, error) {
	module, err := s.moduleRepo.UpdateModule(ctx, id, input)
	if err != nil {
		return nil, err
	}
	logger.Info("Module updated", zap.String("module_id", module.ID))
	return module, nil
}

// UpdateProgress records a user's progress on a module. The module must
// exist; completion state is derived from the percentage.
func (s *ModuleService) UpdateProgress(ctx context.Context, userID, moduleID string, progress int) (*models.UserProgress, error) {
	if _, err := s.moduleRepo.GetModule(ctx, moduleID); err != nil {
		metrics.ProgressUpdates.WithLabelValues("not_found").Inc()
		return nil, err
	}

	record, err := s.progressRepo.UpdateProgress(ctx, userID, moduleID, progress)
	if err != nil {
		metrics.ProgressUpdates.WithLabelValues("error").Inc()
		logger.Error("Failed to update progress",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.String("module_id", moduleID))
		return nil, err
	}

	metrics.ProgressUpdates.WithLabelValues("success").Inc()
	if record.Completed {
		metrics.ModulesCompleted.Inc()
		logger.Info("Module completed",
			zap.String("user_id", userID),
			zap.String("module_id", moduleID))
	}
	return record, nil
}
