package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/skillforge/skillforge-api/internal/middleware"
	"github.com/skillforge/skillforge-api/internal/models"
	"github.com/skillforge/skillforge-api/pkg/logger"
	"github.com/stretchr/testify/mock"
)

func init() {
	gin.SetMode(gin.TestMode)

	if err := logger.Initialize(logger.Config{
		Level:       "debug",
		Environment: "development",
	}); err != nil {
		panic(err)
	}
}

// injectUser simulates a resolved session for handlers that run behind the
// session middleware.
func injectUser(user *models.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserContextKey, user)
	}
}

func performRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, http.NoBody)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	router.ServeHTTP(w, req)
	return w
}

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, string, error) {
	args := m.Called(ctx, req)
	user, _ := args.Get(0).(*models.User)
	return user, args.String(1), args.Error(2)
}

func (m *MockAuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.User, string, error) {
	args := m.Called(ctx, req)
	user, _ := args.Get(0).(*models.User)
	return user, args.String(1), args.Error(2)
}

func (m *MockAuthService) Logout(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockAuthService) ResolveSession(ctx context.Context, token string) (*models.User, error) {
	args := m.Called(ctx, token)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *MockAuthService) GetSessionTTL() int      { return 3600 }
func (m *MockAuthService) GetCookieName() string   { return "skillforge_session" }
func (m *MockAuthService) GetCookieDomain() string { return "" }
func (m *MockAuthService) GetCookieSecure() bool   { return false }

type MockModuleService struct {
	mock.Mock
}

func (m *MockModuleService) GetModules(ctx context.Context) ([]*models.Module, error) {
	args := m.Called(ctx)
	modules, _ := args.Get(0).([]*models.Module)
	return modules, args.Error(1)
}

func (m *MockModuleService) GetModule(ctx context.Context, id string) (*models.Module, error) {
	args := m.Called(ctx, id)
	module, _ := args.Get(0).(*models.Module)
	return module, args.Error(1)
}

func (m *MockModuleService) CreateModule(ctx context.Context, input *models.ModuleInput) (*models.Module, error) {
	args := m.Called(ctx, input)
	module, _ := args.Get(0).(*models.Module)
	return module, args.Error(1)
}

func (m *MockModuleService) UpdateModule(ctx context.Context, id string, input *models.ModuleInput) (*models.Module, error) {
	args := m.Called(ctx, id, input)
	module, _ := args.Get(0).(*models.Module)
	return module, args.Error(1)
}

func (m *MockModuleService) UpdateProgress(ctx context.Context, userID, moduleID string, progress int) (*models.UserProgress, error) {
	args := m.Called(ctx, userID, moduleID, progress)
	record, _ := args.Get(0).(*models.UserProgress)
	return record, args.Error(1)
}

type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) GetStats(ctx context.Context, userID string) (*models.UserStats, error) {
	args := m.Called(ctx, userID)
	stats, _ := args.Get(0).(*models.UserStats)
	return stats, args.Error(1)
}

func (m *MockDashboardService) GetProgress(ctx context.Context, userID string) ([]*models.UserProgress, error) {
	args := m.Called(ctx, userID)
	progress, _ := args.Get(0).([]*models.UserProgress)
	return progress, args.Error(1)
}

func (m *MockDashboardService) GetBadges(ctx context.Context, userID string) ([]*models.UserBadge, error) {
	args := m.Called(ctx, userID)
	badges, _ := args.Get(0).([]*models.UserBadge)
	return badges, args.Error(1)
}

func (m *MockDashboardService) AwardBadge(ctx context.Context, userID, badgeType string) (*models.UserBadge, bool, error) {
	args := m.Called(ctx, userID, badgeType)
	badge, _ := args.Get(0).(*models.UserBadge)
	return badge, args.Bool(1), args.Error(2)
}

type MockForumService struct {
	mock.Mock
}

func (m *MockForumService) GetPosts(ctx context.Context, limit int) ([]*models.ForumPostWithAuthor, error) {
	args := m.Called(ctx, limit)
	posts, _ := args.Get(0).([]*models.ForumPostWithAuthor)
	return posts, args.Error(1)
}

func (m *MockForumService) GetPost(ctx context.Context, id string) (*models.ForumPostDetail, error) {
	args := m.Called(ctx, id)
	post, _ := args.Get(0).(*models.ForumPostDetail)
	return post, args.Error(1)
}

func (m *MockForumService) CreatePost(ctx context.Context, authorID string, input *models.ForumPostInput) (*models.ForumPost, error) {
	args := m.Called(ctx, authorID, input)
	post, _ := args.Get(0).(*models.ForumPost)
	return post, args.Error(1)
}

func (m *MockForumService) CreateAnswer(ctx context.Context, postID, authorID string, input *models.ForumAnswerInput) (*models.ForumAnswer, error) {
	args := m.Called(ctx, postID, authorID, input)
	answer, _ := args.Get(0).(*models.ForumAnswer)
	return answer, args.Error(1)
}
