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

const progressColumns = `id, user_id, module_id, progress, completed, started_at, completed_at`

// ProgressRepository handles per-user module progress data access.
// The (user_id, module_id) pair is unique, which lets UpdateProgress run as a
// single atomic insert-or-update.
type ProgressRepository struct {
	pool *pgxpool.Pool
}

// NewProgressRepository creates a new progress repository
func NewProgressRepository(pool *pgxpool.Pool) *ProgressRepository {
	return &ProgressRepository{pool: pool}
}

var _ ProgressRepositoryInterface = (*ProgressRepository)(nil)

func scanProgress(row pgx.Row) (*models.UserProgress, error) {
	var p models.UserProgress
	err := row.Scan(
		&p.ID, &p.UserID, &p.ModuleID, &p.Progress,
		&p.Completed, &p.StartedAt, &p.CompletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetUserProgress returns all progress records for a user
func (r *ProgressRepository) GetUserProgress(ctx context.Context, userID string) ([]*models.UserProgress, error) {
	start := time.Now()
	operation := "getUserProgress"

	query := fmt.Sprintf(`SELECT %s FROM user_progress WHERE user_id = $1 ORDER BY started_at ASC`, progressColumns)

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		recordMetrics(operation, "error", metrics.MeasureDuration(start))
		return nil, fmt.Errorf("failed to query user progress: %w", err)
	}
	defer rows.Close()

	records := make([]*models.UserProgress, 0)
	for rows.Next() {
		p, err := scanProgress(rows)
		if err != nil {
			recordMetrics(operation, "error", metrics.MeasureDuration(start))
			return nil, fmt.Errorf("failed to scan progress: %w", err)
		}
		records = append(records, p)
	}
	if err := rows.Err(); err != nil {
		recordMetrics(operation, "error", metrics.MeasureDuration(start))
		return nil, fmt.Errorf("failed to iterate progress: %w", err)
	}

	recordMetrics(operation, "success", metrics.MeasureDuration(start))
	return records, nil
}

// GetModuleProgress fetches one user's progress on one module.
// A missing record means the module was never started and returns (nil, nil).
func (r *ProgressRepository) GetModuleProgress(ctx context.Context, userID, moduleID string) (*models.UserProgress, error) {
	start := time.Now()
	operation := "getModuleProgress"

	query := fmt.Sprintf(`SELECT %s FROM user_progress WHERE user_id = $1 AND module_id = $2`, progressColumns)

	progress, err := scanProgress(r.pool.QueryRow(ctx, query, userID, moduleID))
	duration := metrics.MeasureDuration(start)

	if errors.Is(err, pgx.ErrNoRows) {
		recordMetrics(operation, "not_found", duration)
		return nil, nil
	}
	if err != nil {
		recordMetrics(operation, "error", duration)
		return nil, fmt.Errorf("failed to query module progress: %w", err)
	}

	recordMetrics(operation, "success", duration)
	return progress, nil
}

// UpdateProgress inserts or updates the progress record for (user, module) in
// a single statement. Completion state is derived from the percentage before
// the write so both paths store consistent values.
func (r *ProgressRepository) UpdateProgress(ctx context.Context, userID, moduleID string, progress int) (*models.UserProgress, error) {
	start := time.Now()
	operation := "updateProgress"

	completed, completedAt := models.DeriveCompletion(progress, time.Now().UTC())

	query := fmt.Sprintf(`
		INSERT INTO user_progress (user_id, module_id, progress, completed, completed_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, module_id) DO UPDATE
		SET progress = EXCLUDED.progress,
		    completed = EXCLUDED.completed,
		    completed_at = EXCLUDED.completed_at
		RETURNING %s`, progressColumns)

	record, err := scanProgress(r.pool.QueryRow(ctx, query, userID, moduleID, progress, completed, completedAt))
	duration := metrics.MeasureDuration(start)

	if err != nil {
		recordMetrics(operation, "error", duration)
		return nil, fmt.Errorf("failed to upsert progress: %w", err)
	}

	recordMetrics(operation, "success", duration)
	return record, nil
}
