package services

import (
	"context"

	"github.com/skillforge/skillforge-api/internal/models"
	"github.com/skillforge/skillforge-api/internal/repository"
	apperrors "github.com/skillforge/skillforge-api/pkg/errors"
	"github.com/skillforge/skillforge-api/pkg/logger"
	"github.com/skillforge/skillforge-api/pkg/metrics"
	"go.uber.org/zap"
)

const (
	defaultPostLimit = 20
	maxPostLimit     = 100
)

// ForumService handles the Q&A forum
type ForumService struct {
	forumRepo repository.ForumRepositoryInterface
}

// NewForumService creates a new forum service
func NewForumService(forumRepo repository.ForumRepositoryInterface) *ForumService {
	return &ForumService{forumRepo: forumRepo}
}

var _ ForumServiceInterface = (*ForumService)(nil)

// GetPosts returns the newest posts. A non-positive limit falls back to the
// default page size and oversized limits are clamped.
func (s *ForumService) GetPosts(ctx context.Context, limit int) ([]*models.ForumPostWithAuthor, error) {
	if limit <= 0 {
		limit = defaultPostLimit
	}
	if limit > maxPostLimit {
		limit = maxPostLimit
	}
	return s.forumRepo.GetForumPosts(ctx, limit)
}

func (s *ForumService) GetPost(ctx context.Context, id string) (*models.ForumPostDetail, error) {
	return s.forumRepo.GetForumPost(ctx, id)
}

func (s *ForumService) CreatePost(ctx context.Context, authorID string, input *models.ForumPostInput) (*models.ForumPost, error) {
	post, err := s.forumRepo.CreateForumPost(ctx, authorID, input)
	if err != nil {
		metrics.ForumPostsCreated.WithLabelValues("error").Inc()
		logger.Error("Failed to create forum post", zap.Error(err), zap.String("author_id", authorID))
		return nil, err
	}

	metrics.ForumPostsCreated.WithLabelValues("success").Inc()
	logger.Info("Forum post created",
		zap.String("post_id", post.ID),
		zap.String("author_id", authorID))
	return post, nil
}

func (s *ForumService) CreateAnswer(ctx context.Context, postID, authorID string, input *models.ForumAnswerInput) (*models.ForumAnswer, error) {
	answer, err := s.forumRepo.CreateForumAnswer(ctx, postID, authorID, input)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			metrics.ForumAnswersCreated.WithLabelValues("not_found").Inc()
		} else {
			metrics.ForumAnswersCreated.WithLabelValues("error").Inc()
			logger.Error("Failed to create forum answer",
				zap.Error(err),
				zap.String("post_id", postID),
				zap.String("author_id", authorID))
		}
		return nil, err
	}

	metrics.ForumAnswersCreated.WithLabelValues("success").Inc()
	logger.Info("Forum answer created",
		zap.String("answer_id", answer.ID),
		zap.String("post_id", postID))
	return answer, nil
}
