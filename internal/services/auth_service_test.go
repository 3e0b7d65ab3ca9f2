package services_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/skillforge/skillforge-api/config"
	"github.com/skillforge/skillforge-api/internal/models"
	"github.com/skillforge/skillforge-api/internal/services"
	apperrors "github.com/skillforge/skillforge-api/pkg/errors"
	"github.com/skillforge/skillforge-api/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testAuthConfig() *config.Config {
	return &config.Config{
		Session: config.SessionConfig{
			JWTSecret:      "test-secret-key-that-is-long-enough!",
			JWTIssuer:      "skillforge-api",
			TTLHours:       168,
			CookieName:     "skillforge_session",
			MinPasswordLen: 8,
			BcryptCost:     bcrypt.MinCost,
		},
	}
}

func newTestAuthService(userRepo *MockUserRepository, sessionRepo *MockSessionRepository) *services.AuthService {
	cfg := testAuthConfig()
	tm := jwt.NewTokenManager(cfg.Session.JWTSecret, cfg.Session.JWTIssuer, cfg.Session.TTLHours)
	return services.NewAuthService(userRepo, sessionRepo, tm, cfg)
}

func TestAuthService_Register(t *testing.T) {
	userRepo := new(MockUserRepository)
	sessionRepo := new(MockSessionRepository)
	service := newTestAuthService(userRepo, sessionRepo)
	ctx := context.Background()

	email := "new@example.com"
	created := &models.User{ID: "u1", Email: &email, Role: models.RoleStudent}

	userRepo.On("CreateUser", ctx, mock.MatchedBy(func(u *models.UpsertUser) bool {
		return u.Email != nil && *u.Email == email && u.PasswordHash != nil && u.Role == models.RoleStudent
	})).Return(created, nil).Once()
	sessionRepo.On("Create", ctx, mock.AnythingOfType("*models.Session")).Return(nil).Once()

	user, token, err := service.Register(ctx, &models.RegisterRequest{
		Email:    "New@Example.com ",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.NotEmpty(t, token)

	userRepo.AssertExpectations(t)
	sessionRepo.AssertExpectations(t)
}

func TestAuthService_Register_ShortPassword(t *testing.T) {
	userRepo := new(MockUserRepository)
	sessionRepo := new(MockSessionRepository)
	service := newTestAuthService(userRepo, sessionRepo)

	_, _, err := service.Register(context.Background(), &models.RegisterRequest{
		Email:    "new@example.com",
		Password: "short",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	userRepo.AssertNotCalled(t, "CreateUser")
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	userRepo := new(MockUserRepository)
	sessionRepo := new(MockSessionRepository)
	service := newTestAuthService(userRepo, sessionRepo)
	ctx := context.Background()

	userRepo.On("CreateUser", ctx, mock.AnythingOfType("*models.UpsertUser")).
		Return(nil, apperrors.ConflictError("email already registered")).Once()

	_, _, err := service.Register(ctx, &models.RegisterRequest{
		Email:    "taken@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	sessionRepo.AssertNotCalled(t, "Create")
}

func TestAuthService_Login(t *testing.T) {
	userRepo := new(MockUserRepository)
	sessionRepo := new(MockSessionRepository)
	service := newTestAuthService(userRepo, sessionRepo)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	hashStr := string(hash)
	email := "user@example.com"
	user := &models.User{ID: "u1", Email: &email, PasswordHash: &hashStr, Role: models.RoleStudent}

	userRepo.On("GetUserByEmail", ctx, email).Return(user, nil).Once()
	sessionRepo.On("Create", ctx, mock.AnythingOfType("*models.Session")).Return(nil).Once()

	got, token, err := service.Login(ctx, &models.LoginRequest{Email: email, Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, "u1", got.ID)
	assert.NotEmpty(t, token)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	userRepo := new(MockUserRepository)
	sessionRepo := new(MockSessionRepository)
	service := newTestAuthService(userRepo, sessionRepo)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	hashStr := string(hash)
	email := "user@example.com"
	user := &models.User{ID: "u1", Email: &email, PasswordHash: &hashStr}

	userRepo.On("GetUserByEmail", ctx, email).Return(user, nil).Once()

	_, _, err = service.Login(ctx, &models.LoginRequest{Email: email, Password: "wrong-password"})
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	sessionRepo.AssertNotCalled(t, "Create")
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	userRepo := new(MockUserRepository)
	sessionRepo := new(MockSessionRepository)
	service := newTestAuthService(userRepo, sessionRepo)
	ctx := context.Background()

	userRepo.On("GetUserByEmail", ctx, "ghost@example.com").
		Return(nil, apperrors.NotFoundError("user")).Once()

	// Unknown email maps to the same unauthorized error as a bad password
	_, _, err := service.Login(ctx, &models.LoginRequest{Email: "ghost@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestAuthService_ResolveSession(t *testing.T) {
	userRepo := new(MockUserRepository)
	sessionRepo := new(MockSessionRepository)
	cfg := testAuthConfig()
	tm := jwt.NewTokenManager(cfg.Session.JWTSecret, cfg.Session.JWTIssuer, cfg.Session.TTLHours)
	service := services.NewAuthService(userRepo, sessionRepo, tm, cfg)
	ctx := context.Background()

	token, err := tm.GenerateToken("sid-1", "u1")
	require.NoError(t, err)

	sess, err := json.Marshal(models.SessionPayload{UserID: "u1", IssuedAt: time.Now()})
	require.NoError(t, err)
	user := &models.User{ID: "u1", Role: models.RoleStudent}

	sessionRepo.On("Get", ctx, "sid-1").Return(&models.Session{
		SID:    "sid-1",
		Sess:   sess,
		Expire: time.Now().Add(time.Hour),
	}, nil).Once()
	userRepo.On("GetUser", ctx, "u1").Return(user, nil).Once()

	got, err := service.ResolveSession(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "u1", got.ID)
}

func TestAuthService_ResolveSession_Expired(t *testing.T) {
	userRepo := new(MockUserRepository)
	sessionRepo := new(MockSessionRepository)
	cfg := testAuthConfig()
	tm := jwt.NewTokenManager(cfg.Session.JWTSecret, cfg.Session.JWTIssuer, cfg.Session.TTLHours)
	service := services.NewAuthService(userRepo, sessionRepo, tm, cfg)
	ctx := context.Background()

	token, err := tm.GenerateToken("sid-1", "u1")
	require.NoError(t, err)

	sess, err := json.Marshal(models.SessionPayload{UserID: "u1", IssuedAt: time.Now()})
	require.NoError(t, err)

	sessionRepo.On("Get", ctx, "sid-1").Return(&models.Session{
		SID:    "sid-1",
		Sess:   sess,
		Expire: time.Now().Add(-time.Minute),
	}, nil).Once()
	sessionRepo.On("Delete", ctx, "sid-1").Return(nil).Once()

	_, err = service.ResolveSession(ctx, token)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	userRepo.AssertNotCalled(t, "GetUser")
	sessionRepo.AssertExpectations(t)
}

func TestAuthService_ResolveSession_Revoked(t *testing.T) {
	userRepo := new(MockUserRepository)
	sessionRepo := new(MockSessionRepository)
	cfg := testAuthConfig()
	tm := jwt.NewTokenManager(cfg.Session.JWTSecret, cfg.Session.JWTIssuer, cfg.Session.TTLHours)
	service := services.NewAuthService(userRepo, sessionRepo, tm, cfg)
	ctx := context.Background()

	token, err := tm.GenerateToken("sid-gone", "u1")
	require.NoError(t, err)

	// A valid token whose session row was deleted is no longer authenticated
	sessionRepo.On("Get", ctx, "sid-gone").Return(nil, apperrors.NotFoundError("session")).Once()

	_, err = service.ResolveSession(ctx, token)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestAuthService_ResolveSession_GarbageToken(t *testing.T) {
	userRepo := new(MockUserRepository)
	sessionRepo := new(MockSessionRepository)
	service := newTestAuthService(userRepo, sessionRepo)

	_, err := service.ResolveSession(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	sessionRepo.AssertNotCalled(t, "Get")
}

func TestAuthService_Logout_InvalidTokenIsNoop(t *testing.T) {
	userRepo := new(MockUserRepository)
	sessionRepo := new(MockSessionRepository)
	service := newTestAuthService(userRepo, sessionRepo)

	err := service.Logout(context.Background(), "garbage")
	assert.NoError(t, err)
	sessionRepo.AssertNotCalled(t, "Delete")
}
