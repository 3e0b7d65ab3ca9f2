package repository

import (
	"context"

	"github.com/skillforge/skillforge-api/internal/models"
)

// UserRepositoryInterface defines user data access operations
type UserRepositoryInterface interface {
	GetUser(ctx context.Context, id string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.UpsertUser) (*models.User, error)
	UpsertUser(ctx context.Context, user *models.UpsertUser) (*models.User, error)
	UpdateProfileImage(ctx context.Context, userID, imageURL string) error
}

// SessionRepositoryInterface defines session-store access operations
type SessionRepositoryInterface interface {
	Create(ctx context.Context, session *models.Session) error
	Get(ctx context.Context, sid string) (*models.Session, error)
	Delete(ctx context.Context, sid string) error
	DeleteExpired(ctx context.Context) (int64, error)
}

// ModuleRepositoryInterface defines module data access operations
type ModuleRepositoryInterface interface {
	GetModules(ctx context.Context) ([]*models.Module, error)
	GetModule(ctx context.Context, id string) (*models.Module, error)
	CreateModule(ctx context.Context, input *models.ModuleInput) (*models.Module, error)
	UpdateModule(ctx context.Context, id string, input *models.ModuleInput) (*models.Module, error)
}

// ProgressRepositoryInterface defines user-progress data access operations
type ProgressRepositoryInterface interface {
	GetUserProgress(ctx context.Context, userID string) ([]*models.UserProgress, error)
	GetModuleProgress(ctx context.Context, userID, moduleID string) (*models.UserProgress, error)
	UpdateProgress(ctx context.Context, userID, moduleID string, progress int) (*models.UserProgress, error)
}

// MentorRepositoryInterface defines mentor and session data access operations
type MentorRepositoryInterface interface {
	GetMentors(ctx context.Context) ([]*models.MentorWithUser, error)
	GetMentor(ctx context.Context, id string) (*models.MentorWithUser, error)
	CreateMentor(ctx context.Context, userID string, input *models.MentorInput) (*models.Mentor, error)
	GetMentorSessions(ctx context.Context, studentID string) ([]*models.MentorSessionWithMentor, error)
	CreateMentorSession(ctx context.Context, session *models.MentorSession) (*models.MentorSession, error)
}

// ForumRepositoryInterface defines forum data access operations
type ForumRepositoryInterface interface {
	GetForumPosts(ctx context.Context, limit int) ([]*models.ForumPostWithAuthor, error)
	GetForumPost(ctx context.Context, id string) (*models.ForumPostDetail, error)
	CreateForumPost(ctx context.Context, authorID string, input *models.ForumPostInput) (*models.ForumPost, error)
	CreateForumAnswer(ctx context.Context, postID, authorID string, input *models.ForumAnswerInput) (*models.ForumAnswer, error)
}

// ChallengeRepositoryInterface defines challenge data access operations
type ChallengeRepositoryInterface interface {
	GetChallenges(ctx context.Context) ([]*models.InterviewChallenge, error)
	GetChallenge(ctx context.Context, id string) (*models.InterviewChallenge, error)
	CreateChallenge(ctx context.Context, input *models.ChallengeInput) (*models.InterviewChallenge, error)
	GetUserChallengeAttempts(ctx context.Context, userID string) ([]*models.ChallengeAttempt, error)
	CreateChallengeAttempt(ctx context.Context, userID string, input *models.AttemptInput) (*models.ChallengeAttempt, error)
}

// BadgeRepositoryInterface defines badge data access operations
type BadgeRepositoryInterface interface {
	GetUserBadges(ctx context.Context, userID string) ([]*models.UserBadge, error)
	AwardBadge(ctx context.Context, userID, badgeType string) (*models.UserBadge, bool, error)
}

// StatsRepositoryInterface defines dashboard aggregate operations
type StatsRepositoryInterface interface {
	GetUserStats(ctx context.Context, userID string) (*models.UserStats, error)
}
