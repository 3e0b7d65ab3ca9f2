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

const userColumns = `id, email, password_hash, first_name, last_name, profile_image_url, role, created_at, updated_at`

// UserRepository handles user data access
type UserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new user repository
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

var _ UserRepositoryInterface = (*UserRepository)(nil)

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName,
		&u.ProfileImageURL, &u.Role, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetUser fetches a user by id
func (r *UserRepository) GetUser(ctx context.Context, id string) (*models.User, error) {
	start := time.Now()
	operation := "getUser"

	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1`, userColumns)

	user, err := scanUser(r.pool.QueryRow(ctx, query, id))
	duration := metrics.MeasureDuration(start)

	if errors.Is(err, pgx.ErrNoRows) {
		recordMetrics(operation, "not_found", duration)
		return nil, apperrors.NotFoundError("user")
	}
	if err != nil {
		recordMetrics(operation, "error", duration)
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	recordMetrics(operation, "success", duration)
	return user, nil
}

// GetUserByEmail fetches a user by email
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	start := time.Now()
	operation := "getUserByEmail"

	query := fmt.Sprintf(`SELECT %s FROM users WHERE email = $1`, userColumns)

	user, err := scanUser(r.pool.QueryRow(ctx, query, email))
	duration := metrics.MeasureDuration(start)

	if errors.Is(err, pgx.ErrNoRows) {
		recordMetrics(operation, "not_found", duration)
		return nil, apperrors.NotFoundError("user")
	}
	if err != nil {
		recordMetrics(operation, "error", duration)
		return nil, fmt.Errorf("failed to query user by email: %w", err)
	}

	recordMetrics(operation, "success", duration)
	return user, nil
}

// CreateUser inserts a new user. Returns ErrConflict when the email is taken.
func (r *UserRepository) CreateUser(ctx context.Context, user *models.UpsertUser) (*models.User, error) {
	start := time.Now()
	operation := "createUser"

	role := user.Role
	if role == "" {
		role = models.RoleStudent
	}

	query := fmt.Sprintf(`
		INSERT INTO users (email, password_hash, first_name, last_name, profile_image_url, role)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING %s
	`, userColumns)

	created, err := scanUser(r.pool.QueryRow(ctx, query,
		user.Email, user.PasswordHash, user.FirstName, user.LastName, user.ProfileImageURL, role))
	duration := metrics.MeasureDuration(start)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			recordMetrics(operation, "conflict", duration)
			return nil, apperrors.ConflictError("email already registered")
		}
		recordMetrics(operation, "error", duration)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	recordMetrics(operation, "success", duration)
	return created, nil
}

// UpsertUser inserts a user or, when the id already exists, overwrites its
// profile fields and bumps updated_at.
func (r *UserRepository) UpsertUser(ctx context.Context, user *models.UpsertUser) (*models.User, error) {
	start := time.Now()
	operation := "upsertUser"

	role := user.Role
	if role == "" {
		role = models.RoleStudent
	}

	query := fmt.Sprintf(`
		INSERT INTO users (id, email, password_hash, first_name, last_name, profile_image_url, role)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			email = EXCLUDED.email,
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			profile_image_url = EXCLUDED.profile_image_url,
			updated_at = now()
		RETURNING %s
	`, userColumns)

	upserted, err := scanUser(r.pool.QueryRow(ctx, query,
		user.ID, user.Email, user.PasswordHash, user.FirstName, user.LastName, user.ProfileImageURL, role))
	duration := metrics.MeasureDuration(start)

	if err != nil {
		recordMetrics(operation, "error", duration)
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}

	recordMetrics(operation, "success", duration)
	return upserted, nil
}

// UpdateProfileImage sets a user's profile image URL
func (r *UserRepository) UpdateProfileImage(ctx context.Context, userID, imageURL string) error {
	start := time.Now()
	operation := "updateProfileImage"

	tag, err := r.pool.Exec(ctx,
		`UPDATE users SET profile_image_url = $1, updated_at = now() WHERE id = $2`,
		imageURL, userID)
	duration := metrics.MeasureDuration(start)

	if err != nil {
		recordMetrics(operation, "error", duration)
		return fmt.Errorf("failed to update profile image: %w", err)
	}
	if tag.RowsAffected() == 0 {
		recordMetrics(operation, "not_found", duration)
		return apperrors.NotFoundError("user")
	}

	recordMetrics(operation, "success", duration)
	return nil
}
