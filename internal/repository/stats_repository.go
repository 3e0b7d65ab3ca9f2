package repository

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/skillforge/skillforge-api/internal/models"
	"github.com/skillforge/skillforge-api/pkg/metrics"
)

// StatsRepository computes dashboard aggregates for a user
type StatsRepository struct {
	pool *pgxpool.Pool
}

// NewStatsRepository creates a new stats repository
func NewStatsRepository(pool *pgxpool.Pool) *StatsRepository {
	return &StatsRepository{pool: pool}
}

var _ StatsRepositoryInterface = (*StatsRepository)(nil)

// GetUserStats aggregates module completions, badges, completed mentor
// sessions, and estimated study hours. Hours assume roughly two hours of
// study per fully-completed module, prorated by progress.
func (r *StatsRepository) GetUserStats(ctx context.Context, userID string) (*models.UserStats, error) {
	start := time.Now()
	operation := "getUserStats"

	query := `
		SELECT
			(SELECT count(*) FROM user_progress WHERE user_id = $1 AND completed = true),
			(SELECT count(*) FROM user_badges WHERE user_id = $1),
			(SELECT count(*) FROM mentor_sessions WHERE student_id = $1 AND status = 'completed'),
			(SELECT coalesce(sum(progress), 0) FROM user_progress WHERE user_id = $1)`

	var completed, badges, sessions, progressSum int
	err := r.pool.QueryRow(ctx, query, userID).Scan(&completed, &badges, &sessions, &progressSum)
	duration := metrics.MeasureDuration(start)

	if err != nil {
		recordMetrics(operation, "error", duration)
		return nil, fmt.Errorf("failed to query user stats: %w", err)
	}

	recordMetrics(operation, "success", duration)
	return &models.UserStats{
		CompletedModules: completed,
		Badges:           badges,
		MentorSessions:   sessions,
		StudyHours:       int(math.Round(float64(progressSum) / 100.0 * 2.0)),
	}, nil
}
