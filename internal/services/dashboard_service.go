package services

import (
	"context"

	"github.com/skillforge/skillforge-api/internal/models"
	"github.com/skillforge/skillforge-api/internal/repository"
	"github.com/skillforge/skillforge-api/pkg/logger"
	"github.com/skillforge/skillforge-api/pkg/metrics"
	"go.uber.org/zap"
)

// DashboardService aggregates a user's learning stats, progress, and badges
type DashboardService struct {
	statsRepo    repository.StatsRepositoryInterface
	progressRepo repository.ProgressRepositoryInterface
	badgeRepo    repository.BadgeRepositoryInterface
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	statsRepo repository.StatsRepositoryInterface,
	progressRepo repository.ProgressRepositoryInterface,
	badgeRepo repository.BadgeRepositoryInterface,
) *DashboardService {
	return &DashboardService{
		statsRepo:    statsRepo,
		progressRepo: progressRepo,
		badgeRepo:    badgeRepo,
	}
}

var _ DashboardServiceInterface = (*DashboardService)(nil)

func (s *DashboardService) GetStats(ctx context.Context, userID string) (*models.UserStats, error) {
	return s.statsRepo.GetUserStats(ctx, userID)
}

func (s *DashboardService) GetProgress(ctx context.Context, userID string) ([]*models.UserProgress, error) {
	return s.progressRepo.GetUserProgress(ctx, userID)
}

func (s *DashboardService) GetBadges(ctx context.Context, userID string) ([]*models.UserBadge, error) {
	return s.badgeRepo.GetUserBadges(ctx, userID)
}

// AwardBadge grants a badge to a user. Awarding the same badge twice returns
// the original badge unchanged, so callers can fire it on every qualifying
// event without checking first.
func (s *DashboardService) AwardBadge(ctx context.Context, userID, badgeType string) (*models.UserBadge, bool, error) {
	badge, created, err := s.badgeRepo.AwardBadge(ctx, userID, badgeType)
	if err != nil {
		logger.Error("Failed to award badge",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.String("badge_type", badgeType))
		return nil, false, err
	}

	if created {
		metrics.BadgesAwarded.WithLabelValues("created").Inc()
		logger.Info("Badge awarded",
			zap.String("user_id", userID),
			zap.String("badge_type", badgeType))
	} else {
		metrics.BadgesAwarded.WithLabelValues("existing").Inc()
	}
	return badge, created, nil
}
