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

const forumPostColumns = `p.id, p.author_id, p.title, p.content, p.tags, p.upvotes, p.answers_count, p.solved, p.created_at`

// ForumRepository handles Q&A forum data access
type ForumRepository struct {
	pool *pgxpool.Pool
}

// NewForumRepository creates a new forum repository
func NewForumRepository(pool *pgxpool.Pool) *ForumRepository {
	return &ForumRepository{pool: pool}
}

var _ ForumRepositoryInterface = (*ForumRepository)(nil)

func scanPostWithAuthor(row pgx.Row) (*models.ForumPostWithAuthor, error) {
	var p models.ForumPostWithAuthor
	err := row.Scan(
		&p.ID, &p.AuthorID, &p.Title, &p.Content, &p.Tags,
		&p.Upvotes, &p.AnswersCount, &p.Solved, &p.CreatedAt,
		&p.Author.ID, &p.Author.Email, &p.Author.FirstName, &p.Author.LastName,
		&p.Author.ProfileImageURL, &p.Author.Role, &p.Author.CreatedAt, &p.Author.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetForumPosts returns the newest posts with their authors
func (r *ForumRepository) GetForumPosts(ctx context.Context, limit int) ([]*models.ForumPostWithAuthor, error) {
	start := time.Now()
	operation := "getForumPosts"

	query := fmt.Sprintf(`
		SELECT %s,
		       u.id, u.email, u.first_name, u.last_name, u.profile_image_url, u.role, u.created_at, u.updated_at
		FROM forum_posts p
		JOIN users u ON u.id = p.author_id
		ORDER BY p.created_at DESC
		LIMIT $1`, forumPostColumns)

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		recordMetrics(operation, "error", metrics.MeasureDuration(start))
		return nil, fmt.Errorf("failed to query forum posts: %w", err)
	}
	defer rows.Close()

	posts := make([]*models.ForumPostWithAuthor, 0)
	for rows.Next() {
		p, err := scanPostWithAuthor(rows)
		if err != nil {
			recordMetrics(operation, "error", metrics.MeasureDuration(start))
			return nil, fmt.Errorf("failed to scan forum post: %w", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		recordMetrics(operation, "error", metrics.MeasureDuration(start))
		return nil, fmt.Errorf("failed to iterate forum posts: %w", err)
	}

	recordMetrics(operation, "success", metrics.MeasureDuration(start))
	return posts, nil
}

// GetForumPost fetches a post with its author and all answers. Answers sort
// most upvoted first, ties by age oldest first.
func (r *ForumRepository) GetForumPost(ctx context.Context, id string) (*models.ForumPostDetail, error) {
	start := time.Now()
	operation := "getForumPost"

	postQuery := fmt.Sprintf(`
		SELECT %s,
		       u.id, u.email, u.first_name, u.last_name, u.profile_image_url, u.role, u.created_at, u.updated_at
		FROM forum_posts p
		JOIN users u ON u.id = p.author_id
		WHERE p.id = $1`, forumPostColumns)

	post, err := scanPostWithAuthor(r.pool.QueryRow(ctx, postQuery, id))
	if errors.Is(err, pgx.ErrNoRows) {
		recordMetrics(operation, "not_found", metrics.MeasureDuration(start))
		return nil, apperrors.NotFoundError("forum post")
	}
	if err != nil {
		recordMetrics(operation, "error", metrics.MeasureDuration(start))
		return nil, fmt.Errorf("failed to query forum post: %w", err)
	}

	answersQuery := `
		SELECT a.id, a.post_id, a.author_id, a.content, a.upvotes, a.is_accepted, a.created_at,
		       u.id, u.email, u.first_name, u.last_name, u.profile_image_url, u.role, u.created_at, u.updated_at
		FROM forum_answers a
		JOIN users u ON u.id = a.author_id
		WHERE a.post_id = $1
		ORDER BY a.upvotes DESC, a.created_at ASC`

	rows, err := r.pool.Query(ctx, answersQuery, id)
	if err != nil {
		recordMetrics(operation, "error", metrics.MeasureDuration(start))
		return nil, fmt.Errorf("failed to query forum answers: %w", err)
	}
	defer rows.Close()

	answers := make([]models.ForumAnswerWithAuthor, 0)
	for rows.Next() {
		var a models.ForumAnswerWithAuthor
		err := rows.Scan(
			&a.ID, &a.PostID, &a.AuthorID, &a.Content, &a.Upvotes, &a.IsAccepted, &a.CreatedAt,
			&a.Author.ID, &a.Author.Email, &a.Author.FirstName, &a.Author.LastName,
			&a.Author.ProfileImageURL, &a.Author.Role, &a.Author.CreatedAt, &a.Author.UpdatedAt,
		)
		if err != nil {
			recordMetrics(operation, "error", metrics.MeasureDuration(start))
			return nil, fmt.Errorf("failed to scan forum answer: %w", err)
		}
		answers = append(answers, a)
	}
	if err := rows.Err(); err != nil {
		recordMetrics(operation, "error", metrics.MeasureDuration(start))
		return nil, fmt.Errorf("failed to iterate forum answers: %w", err)
	}

	recordMetrics(operation, "success", metrics.MeasureDuration(start))
	return &models.ForumPostDetail{ForumPostWithAuthor: *post, Answers: answers}, nil
}

// CreateForumPost inserts a new post
func (r *ForumRepository) CreateForumPost(ctx context.Context, authorID string, input *models.ForumPostInput) (*models.ForumPost, error) {
	start := time.Now()
	operation := "createForumPost"

	query := `
		INSERT INTO forum_posts (author_id, title, content, tags)
		VALUES ($1, $2, $3, $4)
		RETURNING id, author_id, title, content, tags, upvotes, answers_count, solved, created_at`

	var p models.ForumPost
	err := r.pool.QueryRow(ctx, query, authorID, input.Title, input.Content, input.Tags).Scan(
		&p.ID, &p.AuthorID, &p.Title, &p.Content, &p.Tags,
		&p.Upvotes, &p.AnswersCount, &p.Solved, &p.CreatedAt,
	)
	duration := metrics.MeasureDuration(start)

	if err != nil {
		recordMetrics(operation, "error", duration)
		return nil, fmt.Errorf("failed to create forum post: %w", err)
	}

	recordMetrics(operation, "success", duration)
	return &p, nil
}

// CreateForumAnswer inserts an answer and bumps the post's answer counter in
// one transaction, so the counter never drifts from the answers that exist.
func (r *ForumRepository) CreateForumAnswer(ctx context.Context, postID, authorID string, input *models.ForumAnswerInput) (*models.ForumAnswer, error) {
	start := time.Now()
	operation := "createForumAnswer"

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		recordMetrics(operation, "error", metrics.MeasureDuration(start))
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	insertQuery := `
		INSERT INTO forum_answers (post_id, author_id, content)
		VALUES ($1, $2, $3)
		RETURNING id, post_id, author_id, content, upvotes, is_accepted, created_at`

	var a models.ForumAnswer
	err = tx.QueryRow(ctx, insertQuery, postID, authorID, input.Content).Scan(
		&a.ID, &a.PostID, &a.AuthorID, &a.Content, &a.Upvotes, &a.IsAccepted, &a.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			recordMetrics(operation, "not_found", metrics.MeasureDuration(start))
			return nil, apperrors.NotFoundError("forum post")
		}
		recordMetrics(operation, "error", metrics.MeasureDuration(start))
		return nil, fmt.Errorf("failed to create forum answer: %w", err)
	}

	_, err = tx.Exec(ctx, `UPDATE forum_posts SET answers_count = answers_count + 1 WHERE id = $1`, postID)
	if err != nil {
		recordMetrics(operation, "error", metrics.MeasureDuration(start))
		return nil, fmt.Errorf("failed to increment answer count: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		recordMetrics(operation, "error", metrics.MeasureDuration(start))
		return nil, fmt.Errorf("failed to commit forum answer: %w", err)
	}

	recordMetrics(operation, "success", metrics.MeasureDuration(start))
	return &a, nil
}
