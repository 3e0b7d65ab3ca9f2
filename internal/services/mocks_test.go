package services_test

import (
	"context"

	"github.com/skillforge/skillforge-api/internal/models"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of UserRepositoryInterface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetUser(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *models.UpsertUser) (*models.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) UpsertUser(ctx context.Context, user *models.UpsertUser) (*models.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateProfileImage(ctx context.Context, userID, imageURL string) error {
	args := m.Called(ctx, userID, imageURL)
	return args.Error(0)
}

// MockSessionRepository is a mock implementation of SessionRepositoryInterface
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Create(ctx context.Context, session *models.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) Get(ctx context.Context, sid string) (*models.Session, error) {
	args := m.Called(ctx, sid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessionRepository) Delete(ctx context.Context, sid string) error {
	args := m.Called(ctx, sid)
	return args.Error(0)
}

func (m *MockSessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockModuleRepository is a mock implementation of ModuleRepositoryInterface
type MockModuleRepository struct {
	mock.Mock
}

func (m *MockModuleRepository) GetModules(ctx context.Context) ([]*models.Module, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Module), args.Error(1)
}

func (m *MockModuleRepository) GetModule(ctx context.Context, id string) (*models.Module, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Module), args.Error(1)
}

func (m *MockModuleRepository) CreateModule(ctx context.Context, input *models.ModuleInput) (*models.Module, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Module), args.Error(1)
}

func (m *MockModuleRepository) UpdateModule(ctx context.Context, id string, input *models.ModuleInput) (*models.Module, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Module), args.Error(1)
}

// MockProgressRepository is a mock implementation of ProgressRepositoryInterface
type MockProgressRepository struct {
	mock.Mock
}

func (m *MockProgressRepository) GetUserProgress(ctx context.Context, userID string) ([]*models.UserProgress, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.UserProgress), args.Error(1)
}

func (m *MockProgressRepository) GetModuleProgress(ctx context.Context, userID, moduleID string) (*models.UserProgress, error) {
	args := m.Called(ctx, userID, moduleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserProgress), args.Error(1)
}

func (m *MockProgressRepository) UpdateProgress(ctx context.Context, userID, moduleID string, progress int) (*models.UserProgress, error) {
	args := m.Called(ctx, userID, moduleID, progress)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserProgress), args.Error(1)
}

// MockMentorRepository is a mock implementation of MentorRepositoryInterface
type MockMentorRepository struct {
	mock.Mock
}

func (m *MockMentorRepository) GetMentors(ctx context.Context) ([]*models.MentorWithUser, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.MentorWithUser), args.Error(1)
}

func (m *MockMentorRepository) GetMentor(ctx context.Context, id string) (*models.MentorWithUser, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MentorWithUser), args.Error(1)
}

func (m *MockMentorRepository) CreateMentor(ctx context.Context, userID string, input *models.MentorInput) (*models.Mentor, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Mentor), args.Error(1)
}

func (m *MockMentorRepository) GetMentorSessions(ctx context.Context, studentID string) ([]*models.MentorSessionWithMentor, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.MentorSessionWithMentor), args.Error(1)
}

func (m *MockMentorRepository) CreateMentorSession(ctx context.Context, session *models.MentorSession) (*models.MentorSession, error) {
	args := m.Called(ctx, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MentorSession), args.Error(1)
}

// MockForumRepository is a mock implementation of ForumRepositoryInterface
type MockForumRepository struct {
	mock.Mock
}

func (m *MockForumRepository) GetForumPosts(ctx context.Context, limit int) ([]*models.ForumPostWithAuthor, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.ForumPostWithAuthor), args.Error(1)
}

func (m *MockForumRepository) GetForumPost(ctx context.Context, id string) (*models.ForumPostDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ForumPostDetail), args.Error(1)
}

func (m *MockForumRepository) CreateForumPost(ctx context.Context, authorID string, input *models.ForumPostInput) (*models.ForumPost, error) {
	args := m.Called(ctx, authorID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ForumPost), args.Error(1)
}

func (m *MockForumRepository) CreateForumAnswer(ctx context.Context, postID, authorID string, input *models.ForumAnswerInput) (*models.ForumAnswer, error) {
	args := m.Called(ctx, postID, authorID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ForumAnswer), args.Error(1)
}

// MockChallengeRepository is a mock implementation of ChallengeRepositoryInterface
type MockChallengeRepository struct {
	mock.Mock
}

func (m *MockChallengeRepository) GetChallenges(ctx context.Context) ([]*models.InterviewChallenge, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.InterviewChallenge), args.Error(1)
}

func (m *MockChallengeRepository) GetChallenge(ctx context.Context, id string) (*models.InterviewChallenge, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.InterviewChallenge), args.Error(1)
}

func (m *MockChallengeRepository) CreateChallenge(ctx context.Context, input *models.ChallengeInput) (*models.InterviewChallenge, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.InterviewChallenge), args.Error(1)
}

func (m *MockChallengeRepository) GetUserChallengeAttempts(ctx context.Context, userID string) ([]*models.ChallengeAttempt, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.ChallengeAttempt), args.Error(1)
}

func (m *MockChallengeRepository) CreateChallengeAttempt(ctx context.Context, userID string, input *models.AttemptInput) (*models.ChallengeAttempt, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ChallengeAttempt), args.Error(1)
}

// MockBadgeRepository is a mock implementation of BadgeRepositoryInterface
type MockBadgeRepository struct {
	mock.Mock
}

func (m *MockBadgeRepository) GetUserBadges(ctx context.Context, userID string) ([]*models.UserBadge, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.UserBadge), args.Error(1)
}

func (m *MockBadgeRepository) AwardBadge(ctx context.Context, userID, badgeType string) (*models.UserBadge, bool, error) {
	args := m.Called(ctx, userID, badgeType)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*models.UserBadge), args.Bool(1), args.Error(2)
}

// MockStatsRepository is a mock implementation of StatsRepositoryInterface
type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) GetUserStats(ctx context.Context, userID string) (*models.UserStats, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserStats), args.Error(1)
}
