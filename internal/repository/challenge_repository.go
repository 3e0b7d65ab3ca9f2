package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/skillforge/skillforge-api/internal/models"
	apperrors "github.com/skillforge/skillforge-api/pkg/errors"
	"github.com/skillforge/skillforge-api/pkg/metrics"
)

const challengeColumns = `id, title, description, difficulty, solution, test_cases, tags, created_at`

// ChallengeRepository handles interview challenge and attempt data access
type ChallengeRepository struct {
	pool *pgxpool.Pool
}

// NewChallengeRepository creates a new challenge repository
func NewChallengeRepository(pool *pgxpool.Pool) *ChallengeRepository {
	return &ChallengeRepository{pool: pool}
}

var _ ChallengeRepositoryInterface = (*ChallengeRepository)(nil)

func scanChallenge(row pgx.Row) (*models.InterviewChallenge, error) {
	var c models.InterviewChallenge
	err := row.Scan(
		&c.ID, &c.Title, &c.Description, &c.Difficulty,
		&c.Solution, &c.TestCases, &c.Tags, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetChallenges returns all challenges, easiest tier first, then by title
func (r *ChallengeRepository) GetChallenges(ctx context.Context) ([]*models.InterviewChallenge, error) {
	start := time.Now()
	operation := "getChallenges"

	query := fmt.Sprintf(`
		SELECT %s FROM interview_challenges
		ORDER BY CASE difficulty WHEN 'easy' THEN 1 WHEN 'medium' THEN 2 ELSE 3 END, title ASC`, challengeColumns)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		recordMetrics(operation, "error", metrics.MeasureDuration(start))
		return nil, fmt.Errorf("failed to query challenges: %w", err)
	}
	defer rows.Close()

	challenges := make([]*models.InterviewChallenge, 0)
	for rows.Next() {
		c, err := scanChallenge(rows)
		if err != nil {
			recordMetrics(operation, "error", metrics.MeasureDuration(start))
			return nil, fmt.Errorf("failed to scan challenge: %w", err)
		}
		challenges = append(challenges, c)
	}
	if err := rows.Err(); err != nil {
		recordMetrics(operation, "error", metrics.MeasureDuration(start))
		return nil, fmt.Errorf("failed to iterate challenges: %w", err)
	}

	recordMetrics(operation, "success", metrics.MeasureDuration(start))
	return challenges, nil
}

// GetChallenge fetches a challenge by id
func (r *ChallengeRepository) GetChallenge(ctx context.Context, id string) (*models.InterviewChallenge, error) {
	start := time.Now()
	operation := "getChallenge"

	query := fmt.Sprintf(`SELECT %s FROM interview_challenges WHERE id = $1`, challengeColumns)

	challenge, err := scanChallenge(r.pool.QueryRow(ctx, query, id))
	duration := metrics.MeasureDuration(start)

	if errors.Is(err, pgx.ErrNoRows) {
		recordMetrics(operation, "not_found", duration)
		return nil, apperrors.NotFoundError("challenge")
	}
	if err != nil {
		recordMetrics(operation, "error", duration)
		return nil, fmt.Errorf("failed to query challenge: %w", err)
	}

	recordMetrics(operation, "success", duration)
	return challenge, nil
}

// CreateChallenge inserts a new challenge
func (r *ChallengeRepository) CreateChallenge(ctx context.Context, input *models.ChallengeInput) (*models.InterviewChallenge, error) {
	start := time.Now()
	operation := "createChallenge"

	query := fmt.Sprintf(`
		INSERT INTO interview_challenges (title, description, difficulty, solution, test_cases, tags)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING %s`, challengeColumns)

	challenge, err := scanChallenge(r.pool.QueryRow(ctx, query,
		input.Title, input.Description, input.Difficulty,
		input.Solution, input.TestCases, input.Tags,
	))
	duration := metrics.MeasureDuration(start)

	if err != nil {
		recordMetrics(operation, "error", duration)
		return nil, fmt.Errorf("failed to create challenge: %w", err)
	}

	recordMetrics(operation, "success", duration)
	return challenge, nil
}

// GetUserChallengeAttempts returns a user's attempts, newest first
func (r *ChallengeRepository) GetUserChallengeAttempts(ctx context.Context, userID string) ([]*models.ChallengeAttempt, error) {
	start := time.Now()
	operation := "getUserChallengeAttempts"

	query := `
		SELECT id, user_id, challenge_id, code, language, passed, score, created_at
		FROM challenge_attempts
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		recordMetrics(operation, "error", metrics.MeasureDuration(start))
		return nil, fmt.Errorf("failed to query challenge attempts: %w", err)
	}
	defer rows.Close()

	attempts := make([]*models.ChallengeAttempt, 0)
	for rows.Next() {
		var a models.ChallengeAttempt
		err := rows.Scan(&a.ID, &a.UserID, &a.ChallengeID, &a.Code, &a.Language, &a.Passed, &a.Score, &a.CreatedAt)
		if err != nil {
			recordMetrics(operation, "error", metrics.MeasureDuration(start))
			return nil, fmt.Errorf("failed to scan challenge attempt: %w", err)
		}
		attempts = append(attempts, &a)
	}
	if err := rows.Err(); err != nil {
		recordMetrics(operation, "error", metrics.MeasureDuration(start))
		return nil, fmt.Errorf("failed to iterate challenge attempts: %w", err)
	}

	recordMetrics(operation, "success", metrics.MeasureDuration(start))
	return attempts, nil
}

// CreateChallengeAttempt records a submission against a challenge
func (r *ChallengeRepository) CreateChallengeAttempt(ctx context.Context, userID string, input *models.AttemptInput) (*models.ChallengeAttempt, error) {
	start := time.Now()
	operation := "createChallengeAttempt"

	query := `
		INSERT INTO challenge_attempts (user_id, challenge_id, code, language, passed, score)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, user_id, challenge_id, code, language, passed, score, created_at`

	var a models.ChallengeAttempt
	err := r.pool.QueryRow(ctx, query,
		userID, input.ChallengeID, input.Code, input.Language, input.Passed, input.Score,
	).Scan(&a.ID, &a.UserID, &a.ChallengeID, &a.Code, &a.Language, &a.Passed, &a.Score, &a.CreatedAt)
	duration := metrics.MeasureDuration(start)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			recordMetrics(operation, "not_found", duration)
			return nil, apperrors.NotFoundError("challenge")
		}
		recordMetrics(operation, "error", duration)
		return nil, fmt.Errorf("failed to create challenge attempt: %w", err)
	}

	recordMetrics(operation, "success", duration)
	return &a, nil
}
