package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/skillforge/skillforge-api/internal/models"
	apperrors "github.com/skillforge/skillforge-api/pkg/errors"
	"github.com/skillforge/skillforge-api/pkg/metrics"
)

const moduleColumns = `id, title, description, difficulty, icon, lessons, estimated_hours, created_at`

// ModuleRepository handles learning module data access
type ModuleRepository struct {
	pool *pgxpool.Pool
}

// NewModuleRepository creates a new module repository
func NewModuleRepository(pool *pgxpool.Pool) *ModuleRepository {
	return &ModuleRepository{pool: pool}
}

var _ ModuleRepositoryInterface = (*ModuleRepository)(nil)

func scanModule(row pgx.Row) (*models.Module, error) {
	var m models.Module
	err := row.Scan(
		&m.ID, &m.Title, &m.Description, &m.Difficulty,
		&m.Icon, &m.Lessons, &m.EstimatedHours, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// GetModules returns all modules ordered by title
func (r *ModuleRepository) GetModules(ctx context.Context) ([]*models.Module, error) {
	start := time.Now()
	operation := "getModules"

	query := fmt.Sprintf(`SELECT %s FROM modules ORDER BY title ASC`, moduleColumns)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		recordMetrics(operation, "error", metrics.MeasureDuration(start))
		return nil, fmt.Errorf("failed to query modules: %w", err)
	}
	defer rows.Close()

	modules := make([]*models.Module, 0)
	for rows.Next() {
		m, err := scanModule(rows)
		if err != nil {
			recordMetrics(operation, "error", metrics.MeasureDuration(start))
			return nil, fmt.Errorf("failed to scan module: %w", err)
		}
		modules = append(modules, m)
	}
	if err := rows.Err(); err != nil {
		recordMetrics(operation, "error", metrics.MeasureDuration(start))
		return nil, fmt.Errorf("failed to iterate modules: %w", err)
	}

	recordMetrics(operation, "success", metrics.MeasureDuration(start))
	return modules, nil
}

// GetModule fetches a module by id
func (r *ModuleRepository) GetModule(ctx context.Context, id string) (*models.Module, error) {
	start := time.Now()
	operation := "getModule"

	query := fmt.Sprintf(`SELECT %s FROM modules WHERE id = $1`, moduleColumns)

	module, err := scanModule(r.pool.QueryRow(ctx, query, id))
	duration := metrics.MeasureDuration(start)

	if errors.Is(err, pgx.ErrNoRows) {
		recordMetrics(operation, "not_found", duration)
		return nil, apperrors.NotFoundError("module")
	}
	if err != nil {
		recordMetrics(operation, "error", duration)
		return nil, fmt.Errorf("failed to query module: %w", err)
	}

	recordMetrics(operation, "success", duration)
	return module, nil
}

// CreateModule inserts a new module
func (r *ModuleRepository) CreateModule(ctx context.Context, input *models.ModuleInput) (*models.Module, error) {
	start := time.Now()
	operation := "createModule"

	query := fmt.Sprintf(`
		INSERT INTO modules (title, description, difficulty, icon, lessons, estimated_hours)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING %s`, moduleColumns)

	module, err := scanModule(r.pool.QueryRow(ctx, query,
		input.Title, input.Description, input.Difficulty,
		input.Icon, input.Lessons, input.EstimatedHours,
	))
	duration := metrics.MeasureDuration(start)

	if err != nil {
		recordMetrics(operation, "error", duration)
		return nil, fmt.Errorf("failed to create module: %w", err)
	}

	recordMetrics(operation, "success", duration)
	return module, nil
}

// UpdateModule replaces a module's mutable fields
func (r *ModuleRepository) UpdateModule(ctx context.Context, id string, input *models.ModuleInput) (*models.Module, error) {
	start := time.Now()
	operation := "updateModule"

	query := fmt.Sprintf(`
		UPDATE modules
		SET title = $2, description = $3, difficulty = $4, icon = $5, lessons = $6, estimated_hours = $7
		WHERE id = $1
		RETURNING %s`, moduleColumns)

	module, err := scanModule(r.pool.QueryRow(ctx, query,
		id, input.Title, input.Description, input.Difficulty,
		input.Icon, input.Lessons, input.EstimatedHours,
	))
	duration := metrics.MeasureDuration(start)

	if errors.Is(err, pgx.ErrNoRows) {
		recordMetrics(operation, "not_found", duration)
		return nil, apperrors.NotFoundError("module")
	}
	if err != nil {
		recordMetrics(operation, "error", duration)
		return nil, fmt.Errorf("failed to update module: %w", err)
	}

	recordMetrics(operation, "success", duration)
	return module, nil
}
