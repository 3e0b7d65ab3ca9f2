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

// SessionRepository handles server-side session rows. The table layout
// (sid, sess jsonb, expire) is the canonical web-session store shape, so
// external tooling that understands it keeps working.
type SessionRepository struct {
	pool *pgxpool.Pool
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(pool *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{pool: pool}
}

var _ SessionRepositoryInterface = (*SessionRepository)(nil)

// Create inserts a session row
func (r *SessionRepository) Create(ctx context.Context, session *models.Session) error {
	start := time.Now()
	operation := "createSession"

	query := `INSERT INTO sessions (sid, sess, expire) VALUES ($1, $2, $3)`

	_, err := r.pool.Exec(ctx, query, session.SID, session.Sess, session.Expire)
	duration := metrics.MeasureDuration(start)

	if err != nil {
		recordMetrics(operation, "error", duration)
		return fmt.Errorf("failed to create session: %w", err)
	}

	recordMetrics(operation, "success", duration)
	return nil
}

// Get fetches a session by sid
func (r *SessionRepository) Get(ctx context.Context, sid string) (*models.Session, error) {
	start := time.Now()
	operation := "getSession"

	query := `SELECT sid, sess, expire FROM sessions WHERE sid = $1`

	var s models.Session
	err := r.pool.QueryRow(ctx, query, sid).Scan(&s.SID, &s.Sess, &s.Expire)
	duration := metrics.MeasureDuration(start)

	if errors.Is(err, pgx.ErrNoRows) {
		recordMetrics(operation, "not_found", duration)
		return nil, apperrors.NotFoundError("session")
	}
	if err != nil {
		recordMetrics(operation, "error", duration)
		return nil, fmt.Errorf("failed to query session: %w", err)
	}

	recordMetrics(operation, "success", duration)
	return &s, nil
}

// Delete removes a session by sid. Deleting an absent session is not an error.
func (r *SessionRepository) Delete(ctx context.Context, sid string) error {
	start := time.Now()
	operation := "deleteSession"

	query := `DELETE FROM sessions WHERE sid = $1`

	_, err := r.pool.Exec(ctx, query, sid)
	duration := metrics.MeasureDuration(start)

	if err != nil {
		recordMetrics(operation, "error", duration)
		return fmt.Errorf("failed to delete session: %w", err)
	}

	recordMetrics(operation, "success", duration)
	return nil
}

// DeleteExpired removes all sessions past their expiry and reports how many
func (r *SessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	start := time.Now()
	operation := "deleteExpiredSessions"

	query := `DELETE FROM sessions WHERE expire <= now()`

	tag, err := r.pool.Exec(ctx, query)
	duration := metrics.MeasureDuration(start)

	if err != nil {
		recordMetrics(operation, "error", duration)
		return 0, fmt.Errorf("failed to delete expired sessions: %w", err)
	}

	recordMetrics(operation, "success", duration)
	return tag.RowsAffected(), nil
}
