package services

import (
	"context"
	"fmt"

	"github.com/skillforge/skillforge-api/internal/models"
	"github.com/skillforge/skillforge-api/internal/repository"
	apperrors "github.com/skillforge/skillforge-api/pkg/errors"
	"github.com/skillforge/skillforge-api/pkg/logger"
	"github.com/skillforge/skillforge-api/pkg/metrics"
	"github.com/skillforge/skillforge-api/pkg/objectstore"
	"go.uber.org/zap"
)

// ProfileService handles user profile reads and avatar uploads
type ProfileService struct {
	userRepo repository.UserRepositoryInterface
	storage  objectstore.ClientInterface
}

// NewProfileService creates a new profile service
func NewProfileService(userRepo repository.UserRepositoryInterface, storage objectstore.ClientInterface) *ProfileService {
	return &ProfileService{
		userRepo: userRepo,
		storage:  storage,
	}
}

var _ ProfileServiceInterface = (*ProfileService)(nil)

func (s *ProfileService) GetUser(ctx context.Context, userID string) (*models.User, error) {
	return s.userRepo.GetUser(ctx, userID)
}

// UploadAvatar validates and stores a profile image, then points the user's
// profile at the uploaded object. Returns the public URL.
func (s *ProfileService) UploadAvatar(ctx context.Context, userID, imageData, contentType string) (string, error) {
	if s.storage == nil {
		metrics.AvatarUploads.WithLabelValues("storage_unconfigured").Inc()
		return "", apperrors.InternalError("avatar storage is not configured")
	}
	if err := s.storage.ValidateImageType(contentType); err != nil {
		metrics.AvatarUploads.WithLabelValues("invalid_type").Inc()
		return "", apperrors.InvalidInputError("contentType", err.Error())
	}
	if err := s.storage.ValidateImageSize(imageData); err != nil {
		metrics.AvatarUploads.WithLabelValues("too_large").Inc()
		return "", apperrors.InvalidInputError("image", err.Error())
	}

	key := s.storage.AvatarKey(userID, contentType)
	url, err := s.storage.UploadImage(ctx, imageData, key, contentType)
	if err != nil {
		metrics.AvatarUploads.WithLabelValues("storage_error").Inc()
		logger.Error("Failed to upload avatar", zap.Error(err), zap.String("user_id", userID))
		return "", fmt.Errorf("failed to upload avatar: %w", err)
	}

	if err := s.userRepo.UpdateProfileImage(ctx, userID, url); err != nil {
		metrics.AvatarUploads.WithLabelValues("db_error").Inc()
		logger.Error("Failed to save avatar URL", zap.Error(err), zap.String("user_id", userID))
		return "", err
	}

	metrics.AvatarUploads.WithLabelValues("success").Inc()
	logger.Info("Avatar uploaded", zap.String("user_id", userID), zap.String("key", key))
	return url, nil
}
