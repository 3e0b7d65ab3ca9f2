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

const mentorColumns = `m.id, m.user_id, m.expertise, m.bio, m.hourly_rate, m.rating, m.total_sessions, m.is_available, m.created_at`

// MentorRepository handles mentor profile and session-booking data access
type MentorRepository struct {
	pool *pgxpool.Pool
}

// NewMentorRepository creates a new mentor repository
func NewMentorRepository(pool *pgxpool.Pool) *MentorRepository {
	return &MentorRepository{pool: pool}
}

var _ MentorRepositoryInterface = (*MentorRepository)(nil)

func scanMentorWithUser(row pgx.Row) (*models.MentorWithUser, error) {
	var m models.MentorWithUser
	err := row.Scan(
		&m.ID, &m.UserID, &m.Expertise, &m.Bio, &m.HourlyRate,
		&m.Rating, &m.TotalSessions, &m.IsAvailable, &m.CreatedAt,
		&m.User.ID, &m.User.Email, &m.User.FirstName, &m.User.LastName,
		&m.User.ProfileImageURL, &m.User.Role, &m.User.CreatedAt, &m.User.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// GetMentors returns available mentors joined with their user rows, best
// rated first. Ties break on profile age then id so the order is stable
// across requests.
func (r *MentorRepository) GetMentors(ctx context.Context) ([]*models.MentorWithUser, error) {
	start := time.Now()
	operation := "getMentors"

	query := fmt.Sprintf(`
		SELECT %s,
		       u.id, u.email, u.first_name, u.last_name, u.profile_image_url, u.role, u.created_at, u.updated_at
		FROM mentors m
		JOIN users u ON u.id = m.user_id
		WHERE m.is_available = true
		ORDER BY m.rating DESC, m.created_at ASC, m.id ASC`, mentorColumns)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		recordMetrics(operation, "error", metrics.MeasureDuration(start))
		return nil, fmt.Errorf("failed to query mentors: %w", err)
	}
	defer rows.Close()

	mentors := make([]*models.MentorWithUser, 0)
	for rows.Next() {
		m, err := scanMentorWithUser(rows)
		if err != nil {
			recordMetrics(operation, "error", metrics.MeasureDuration(start))
			return nil, fmt.Errorf("failed to scan mentor: %w", err)
		}
		mentors = append(mentors, m)
	}
	if err := rows.Err(); err != nil {
		recordMetrics(operation, "error", metrics.MeasureDuration(start))
		return nil, fmt.Errorf("failed to iterate mentors: %w", err)
	}

	recordMetrics(operation, "success", metrics.MeasureDuration(start))
	return mentors, nil
}

// GetMentor fetches a mentor with their user row by mentor id
func (r *MentorRepository) GetMentor(ctx context.Context, id string) (*models.MentorWithUser, error) {
	start := time.Now()
	operation := "getMentor"

	query := fmt.Sprintf(`
		SELECT %s,
		       u.id, u.email, u.first_name, u.last_name, u.profile_image_url, u.role, u.created_at, u.updated_at
		FROM mentors m
		JOIN users u ON u.id = m.user_id
		WHERE m.id = $1`, mentorColumns)

	mentor, err := scanMentorWithUser(r.pool.QueryRow(ctx, query, id))
	duration := metrics.MeasureDuration(start)

	if errors.Is(err, pgx.ErrNoRows) {
		recordMetrics(operation, "not_found", duration)
		return nil, apperrors.NotFoundError("mentor")
	}
	if err != nil {
		recordMetrics(operation, "error", duration)
		return nil, fmt.Errorf("failed to query mentor: %w", err)
	}

	recordMetrics(operation, "success", duration)
	return mentor, nil
}

// CreateMentor inserts a mentor profile for a user
func (r *MentorRepository) CreateMentor(ctx context.Context, userID string, input *models.MentorInput) (*models.Mentor, error) {
	start := time.Now()
	operation := "createMentor"

	available := true
	if input.IsAvailable != nil {
		available = *input.IsAvailable
	}

	query := `
		INSERT INTO mentors (user_id, expertise, bio, hourly_rate, is_available)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, expertise, bio, hourly_rate, rating, total_sessions, is_available, created_at`

	var m models.Mentor
	err := r.pool.QueryRow(ctx, query, userID, input.Expertise, input.Bio, input.HourlyRate, available).Scan(
		&m.ID, &m.UserID, &m.Expertise, &m.Bio, &m.HourlyRate,
		&m.Rating, &m.TotalSessions, &m.IsAvailable, &m.CreatedAt,
	)
	duration := metrics.MeasureDuration(start)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			recordMetrics(operation, "not_found", duration)
			return nil, apperrors.NotFoundError("user")
		}
		recordMetrics(operation, "error", duration)
		return nil, fmt.Errorf("failed to create mentor: %w", err)
	}

	recordMetrics(operation, "success", duration)
	return &m, nil
}

// GetMentorSessions returns a student's booked sessions, soonest first,
// each joined with the mentor profile and its user
func (r *MentorRepository) GetMentorSessions(ctx context.Context, studentID string) ([]*models.MentorSessionWithMentor, error) {
	start := time.Now()
	operation := "getMentorSessions"

	query := fmt.Sprintf(`
		SELECT s.id, s.mentor_id, s.student_id, s.topic, s.scheduled_at, s.duration, s.status, s.created_at,
		       %s,
		       u.id, u.email, u.first_name, u.last_name, u.profile_image_url, u.role, u.created_at, u.updated_at
		FROM mentor_sessions s
		JOIN mentors m ON m.id = s.mentor_id
		JOIN users u ON u.id = m.user_id
		WHERE s.student_id = $1
		ORDER BY s.scheduled_at ASC`, mentorColumns)

	rows, err := r.pool.Query(ctx, query, studentID)
	if err != nil {
		recordMetrics(operation, "error", metrics.MeasureDuration(start))
		return nil, fmt.Errorf("failed to query mentor sessions: %w", err)
	}
	defer rows.Close()

	sessions := make([]*models.MentorSessionWithMentor, 0)
	for rows.Next() {
		var s models.MentorSessionWithMentor
		err := rows.Scan(
			&s.ID, &s.MentorID, &s.StudentID, &s.Topic, &s.ScheduledAt, &s.Duration, &s.Status, &s.CreatedAt,
			&s.Mentor.ID, &s.Mentor.UserID, &s.Mentor.Expertise, &s.Mentor.Bio, &s.Mentor.HourlyRate,
			&s.Mentor.Rating, &s.Mentor.TotalSessions, &s.Mentor.IsAvailable, &s.Mentor.CreatedAt,
			&s.Mentor.User.ID, &s.Mentor.User.Email, &s.Mentor.User.FirstName, &s.Mentor.User.LastName,
			&s.Mentor.User.ProfileImageURL, &s.Mentor.User.Role, &s.Mentor.User.CreatedAt, &s.Mentor.User.UpdatedAt,
		)
		if err != nil {
			recordMetrics(operation, "error", metrics.MeasureDuration(start))
			return nil, fmt.Errorf("failed to scan mentor session: %w", err)
		}
		sessions = append(sessions, &s)
	}
	if err := rows.Err(); err != nil {
		recordMetrics(operation, "error", metrics.MeasureDuration(start))
		return nil, fmt.Errorf("failed to iterate mentor sessions: %w", err)
	}

	recordMetrics(operation, "success", metrics.MeasureDuration(start))
	return sessions, nil
}

// CreateMentorSession books a session. A dangling mentor id surfaces as
// not found rather than a raw constraint error.
func (r *MentorRepository) CreateMentorSession(ctx context.Context, session *models.MentorSession) (*models.MentorSession, error) {
	start := time.Now()
	operation := "createMentorSession"

	query := `
		INSERT INTO mentor_sessions (mentor_id, student_id, topic, scheduled_at, duration, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, mentor_id, student_id, topic, scheduled_at, duration, status, created_at`

	var s models.MentorSession
	err := r.pool.QueryRow(ctx, query,
		session.MentorID, session.StudentID, session.Topic,
		session.ScheduledAt, session.Duration, session.Status,
	).Scan(&s.ID, &s.MentorID, &s.StudentID, &s.Topic, &s.ScheduledAt, &s.Duration, &s.Status, &s.CreatedAt)
	duration := metrics.MeasureDuration(start)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			recordMetrics(operation, "not_found", duration)
			return nil, apperrors.NotFoundError("mentor")
		}
		recordMetrics(operation, "error", duration)
		return nil, fmt.Errorf("failed to create mentor session: %w", err)
	}

	recordMetrics(operation, "success", duration)
	return &s, nil
}
