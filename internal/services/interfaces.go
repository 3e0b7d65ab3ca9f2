package services

import (
	"context"

	"github.com/skillforge/skillforge-api/internal/models"
)

// AuthServiceInterface defines session-based authentication operations
type AuthServiceInterface interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, string, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.User, string, error)
	Logout(ctx context.Context, token string) error
	ResolveSession(ctx context.Context, token string) (*models.User, error)
	GetSessionTTL() int
	GetCookieName() string
	GetCookieDomain() string
	GetCookieSecure() bool
}

// ModuleServiceInterface defines learning module and progress operations
type ModuleServiceInterface interface {
	GetModules(ctx context.Context) ([]*models.Module, error)
	GetModule(ctx context.Context, id string) (*models.Module, error)
	CreateModule(ctx context.Context, input *models.ModuleInput) (*models.Module, error)
	UpdateModule(ctx context.Context, id string, input *models.ModuleInput) (*models.Module, error)
	UpdateProgress(ctx context.Context, userID, moduleID string, progress int) (*models.UserProgress, error)
}

// MentorServiceInterface defines mentor directory and booking operations
type MentorServiceInterface interface {
	GetMentors(ctx context.Context) ([]*models.MentorWithUser, error)
	GetMentor(ctx context.Context, id string) (*models.MentorWithUser, error)
	CreateMentor(ctx context.Context, userID string, input *models.MentorInput) (*models.Mentor, error)
	GetMentorSessions(ctx context.Context, studentID string) ([]*models.MentorSessionWithMentor, error)
	BookSession(ctx context.Context, studentID string, req *models.BookSessionRequest) (*models.MentorSession, error)
}

// ForumServiceInterface defines Q&A forum operations
type ForumServiceInterface interface {
	GetPosts(ctx context.Context, limit int) ([]*models.ForumPostWithAuthor, error)
	GetPost(ctx context.Context, id string) (*models.ForumPostDetail, error)
	CreatePost(ctx context.Context, authorID string, input *models.ForumPostInput) (*models.ForumPost, error)
	CreateAnswer(ctx context.Context, postID, authorID string, input *models.ForumAnswerInput) (*models.ForumAnswer, error)
}

// ChallengeServiceInterface defines interview challenge operations
type ChallengeServiceInterface interface {
	GetChallenges(ctx context.Context) ([]*models.InterviewChallenge, error)
	GetChallenge(ctx context.Context, id string) (*models.InterviewChallenge, error)
	CreateChallenge(ctx context.Context, input *models.ChallengeInput) (*models.InterviewChallenge, error)
	GetUserAttempts(ctx context.Context, userID string) ([]*models.ChallengeAttempt, error)
	SubmitAttempt(ctx context.Context, userID string, input *models.AttemptInput) (*models.ChallengeAttempt, error)
}

// DashboardServiceInterface defines per-user dashboard operations
type DashboardServiceInterface interface {
	GetStats(ctx context.Context, userID string) (*models.UserStats, error)
	GetProgress(ctx context.Context, userID string) ([]*models.UserProgress, error)
	GetBadges(ctx context.Context, userID string) ([]*models.UserBadge, error)
	AwardBadge(ctx context.Context, userID, badgeType string) (*models.UserBadge, bool, error)
}

// ProfileServiceInterface defines user profile operations
type ProfileServiceInterface interface {
	GetUser(ctx context.Context, userID string) (*models.User, error)
	UploadAvatar(ctx context.Context, userID, imageData, contentType string) (string, error)
}
