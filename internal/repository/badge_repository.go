package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/skillforge/skillforge-api/internal/models"
	"github.com/skillforge/skillforge-api/pkg/metrics"
)

// BadgeRepository handles user badge data access. (user_id, badge_type) is
// unique, which makes awarding naturally idempotent.
type BadgeRepository struct {
	pool *pgxpool.Pool
}

// NewBadgeRepository creates a new badge repository
func NewBadgeRepository(pool *pgxpool.Pool) *BadgeRepository {
	return &BadgeRepository{pool: pool}
}

var _ BadgeRepositoryInterface = (*BadgeRepository)(nil)

// GetUserBadges returns a user's badges, most recently earned first
func (r *BadgeRepository) GetUserBadges(ctx context.Context, userID string) ([]*models.UserBadge, error) {
	start := time.Now()
	operation := "getUserBadges"

	query := `
		SELECT id, user_id, badge_type, earned_at
		FROM user_badges
		WHERE user_id = $1
		ORDER BY earned_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		recordMetrics(operation, "error", metrics.MeasureDuration(start))
		return nil, fmt.Errorf("failed to query badges: %w", err)
	}
	defer rows.Close()

	badges := make([]*models.UserBadge, 0)
	for rows.Next() {
		var b models.UserBadge
		if err := rows.Scan(&b.ID, &b.UserID, &b.BadgeType, &b.EarnedAt); err != nil {
			recordMetrics(operation, "error", metrics.MeasureDuration(start))
			return nil, fmt.Errorf("failed to scan badge: %w", err)
		}
		badges = append(badges, &b)
	}
	if err := rows.Err(); err != nil {
		recordMetrics(operation, "error", metrics.MeasureDuration(start))
		return nil, fmt.Errorf("failed to iterate badges: %w", err)
	}

	recordMetrics(operation, "success", metrics.MeasureDuration(start))
	return badges, nil
}

// AwardBadge grants a badge once per (user, badgeType). The insert races
// safely on the unique index; when the badge already exists the existing row
// comes back with created=false and earnedAt untouched.
func (r *BadgeRepository) AwardBadge(ctx context.Context, userID, badgeType string) (*models.UserBadge, bool, error) {
	start := time.Now()
	operation := "awardBadge"

	insertQuery := `
		INSERT INTO user_badges (user_id, badge_type)
		VALUES ($1, $2)
		ON CONFLICT (user_id, badge_type) DO NOTHING
		RETURNING id, user_id, badge_type, earned_at`

	var b models.UserBadge
	err := r.pool.QueryRow(ctx, insertQuery, userID, badgeType).Scan(&b.ID, &b.UserID, &b.BadgeType, &b.EarnedAt)
	if err == nil {
		recordMetrics(operation, "success", metrics.MeasureDuration(start))
		return &b, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		recordMetrics(operation, "error", metrics.MeasureDuration(start))
		return nil, false, fmt.Errorf("failed to award badge: %w", err)
	}

	selectQuery := `SELECT id, user_id, badge_type, earned_at FROM user_badges WHERE user_id = $1 AND badge_type = $2`

	err = r.pool.QueryRow(ctx, selectQuery, userID, badgeType).Scan(&b.ID, &b.UserID, &b.BadgeType, &b.EarnedAt)
	duration := metrics.MeasureDuration(start)

	if err != nil {
		recordMetrics(operation, "error", duration)
		return nil, false, fmt.Errorf("failed to load existing badge: %w", err)
	}

	recordMetrics(operation, "success", duration)
	return &b, false, nil
}
