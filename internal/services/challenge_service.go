package services

import (
	"context"
	"strconv"

	"github.com/skillforge/skillforge-api/internal/models"
	"github.com/skillforge/skillforge-api/internal/repository"
	apperrors "github.com/skillforge/skillforge-api/pkg/errors"
	"github.com/skillforge/skillforge-api/pkg/logger"
	"github.com/skillforge/skillforge-api/pkg/metrics"
	"go.uber.org/zap"
)

const defaultAttemptLanguage = "javascript"

// ChallengeService handles interview challenges and submissions
type ChallengeService struct {
	challengeRepo repository.ChallengeRepositoryInterface
}

// NewChallengeService creates a new challenge service
func NewChallengeService(challengeRepo repository.ChallengeRepositoryInterface) *ChallengeService {
	return &ChallengeService{challengeRepo: challengeRepo}
}

var _ ChallengeServiceInterface = (*ChallengeService)(nil)

func (s *ChallengeService) GetChallenges(ctx context.Context) ([]*models.InterviewChallenge, error) {
	return s.challengeRepo.GetChallenges(ctx)
}

func (s *ChallengeService) GetChallenge(ctx context.Context, id string) (*models.InterviewChallenge, error) {
	return s.challengeRepo.GetChallenge(ctx, id)
}

func (s *ChallengeService) CreateChallenge(ctx context.Context, input *models.ChallengeInput) (*models.InterviewChallenge, error) {
	challenge, err := s.challengeRepo.CreateChallenge(ctx, input)
	if err != nil {
		logger.Error("Failed to create challenge", zap.Error(err))
		return nil, err
	}
	logger.Info("Challenge created",
		zap.String("challenge_id", challenge.ID),
		zap.String("difficulty", challenge.Difficulty))
	return challenge, nil
}

func (s *ChallengeService) GetUserAttempts(ctx context.Context, userID string) ([]*models.ChallengeAttempt, error) {
	return s.challengeRepo.GetUserChallengeAttempts(ctx, userID)
}

// SubmitAttempt records a self-reported submission against a challenge.
// Scoring happens client-side; the server only persists the result.
func (s *ChallengeService) SubmitAttempt(ctx context.Context, userID string, input *models.AttemptInput) (*models.ChallengeAttempt, error) {
	if input.Language == "" {
		input.Language = defaultAttemptLanguage
	}

	attempt, err := s.challengeRepo.CreateChallengeAttempt(ctx, userID, input)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			metrics.ChallengeAttempts.WithLabelValues("not_found", "false").Inc()
		} else {
			metrics.ChallengeAttempts.WithLabelValues("error", "false").Inc()
			logger.Error("Failed to record challenge attempt",
				zap.Error(err),
				zap.String("user_id", userID),
				zap.String("challenge_id", input.ChallengeID))
		}
		return nil, err
	}

	metrics.ChallengeAttempts.WithLabelValues("success", strconv.FormatBool(attempt.Passed)).Inc()
	logger.Info("Challenge attempt recorded",
		zap.String("attempt_id", attempt.ID),
		zap.String("user_id", userID),
		zap.Bool("passed", attempt.Passed),
		zap.Int("score", attempt.Score))
	return attempt, nil
}
