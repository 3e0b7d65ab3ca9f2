package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/skillforge/skillforge-api/config"
	"github.com/skillforge/skillforge-api/internal/models"
	"github.com/skillforge/skillforge-api/internal/repository"
	apperrors "github.com/skillforge/skillforge-api/pkg/errors"
	"github.com/skillforge/skillforge-api/pkg/jwt"
	"github.com/skillforge/skillforge-api/pkg/logger"
	"github.com/skillforge/skillforge-api/pkg/metrics"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthService implements email/password authentication over server-side
// sessions. The cookie carries a signed token holding only the session id;
// the sessions table decides whether a request is still authenticated, so
// deleting the row revokes access immediately.
type AuthService struct {
	userRepo     repository.UserRepositoryInterface
	sessionRepo  repository.SessionRepositoryInterface
	tokenManager *jwt.TokenManager
	config       *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo repository.UserRepositoryInterface,
	sessionRepo repository.SessionRepositoryInterface,
	tokenManager *jwt.TokenManager,
	cfg *config.Config,
) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		sessionRepo:  sessionRepo,
		tokenManager: tokenManager,
		config:       cfg,
	}
}

var _ AuthServiceInterface = (*AuthService)(nil)

// Register creates a user account and an initial session. It returns the
// user together with the cookie token for the new session.
func (s *AuthService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if len(req.Password) < s.config.Session.MinPasswordLen {
		metrics.Registrations.WithLabelValues("invalid").Inc()
		return nil, "", apperrors.InvalidInputError("password",
			fmt.Sprintf("must be at least %d characters", s.config.Session.MinPasswordLen))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.config.Session.BcryptCost)
	if err != nil {
		metrics.Registrations.WithLabelValues("error").Inc()
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	hashStr := string(hash)
	var firstName, lastName *string
	if req.FirstName != "" {
		firstName = &req.FirstName
	}
	if req.LastName != "" {
		lastName = &req.LastName
	}

	user, err := s.userRepo.CreateUser(ctx, &models.UpsertUser{
		Email:        &email,
		PasswordHash: &hashStr,
		FirstName:    firstName,
		LastName:     lastName,
		Role:         models.RoleStudent,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			metrics.Registrations.WithLabelValues("conflict").Inc()
			logger.Warn("Registration with existing email", zap.String("email", email))
		} else {
			metrics.Registrations.WithLabelValues("error").Inc()
			logger.Error("Failed to create user", zap.Error(err))
		}
		return nil, "", err
	}

	token, err := s.createSession(ctx, user.ID)
	if err != nil {
		metrics.Registrations.WithLabelValues("error").Inc()
		return nil, "", err
	}

	metrics.Registrations.WithLabelValues("success").Inc()
	logger.Info("User registered", zap.String("user_id", user.ID))
	return user, token, nil
}

// Login verifies credentials and opens a new session. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			metrics.Logins.WithLabelValues("invalid_credentials").Inc()
			return nil, "", apperrors.UnauthorizedError("invalid credentials")
		}
		metrics.Logins.WithLabelValues("error").Inc()
		return nil, "", err
	}

	if user.PasswordHash == nil ||
		bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.Password)) != nil {
		metrics.Logins.WithLabelValues("invalid_credentials").Inc()
		logger.Warn("Failed login attempt", zap.String("user_id", user.ID))
		return nil, "", apperrors.UnauthorizedError("invalid credentials")
	}

	token, err := s.createSession(ctx, user.ID)
	if err != nil {
		metrics.Logins.WithLabelValues("error").Inc()
		return nil, "", err
	}

	metrics.Logins.WithLabelValues("success").Inc()
	logger.Info("User logged in", zap.String("user_id", user.ID))
	return user, token, nil
}

// Logout revokes the session behind a cookie token. An invalid or already
// expired token is treated as a successful logout.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	claims, err := s.tokenManager.ValidateToken(token)
	if err != nil {
		return nil
	}
	if err := s.sessionRepo.Delete(ctx, claims.SessionID); err != nil {
		logger.Error("Failed to delete session", zap.Error(err), zap.String("sid", claims.SessionID))
		return err
	}
	logger.Info("User logged out", zap.String("user_id", claims.UserID))
	return nil
}

// ResolveSession turns a cookie token into the authenticated user. The
// session row must exist and be unexpired regardless of the token's own
// expiry claim.
func (s *AuthService) ResolveSession(ctx context.Context, token string) (*models.User, error) {
	claims, err := s.tokenManager.ValidateToken(token)
	if err != nil {
		return nil, apperrors.UnauthorizedError("invalid session token")
	}

	session, err := s.sessionRepo.Get(ctx, claims.SessionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.UnauthorizedError("session revoked")
		}
		return nil, err
	}
	if session.Expired(time.Now()) {
		// Lazy cleanup; a periodic sweep also prunes expired rows
		_ = s.sessionRepo.Delete(ctx, session.SID)
		return nil, apperrors.UnauthorizedError("session expired")
	}

	payload, err := session.Payload()
	if err != nil || payload.UserID != claims.UserID {
		return nil, apperrors.UnauthorizedError("session mismatch")
	}

	user, err := s.userRepo.GetUser(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.UnauthorizedError("user no longer exists")
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) createSession(ctx context.Context, userID string) (string, error) {
	sid := uuid.NewString()

	sess, err := json.Marshal(models.SessionPayload{UserID: userID, IssuedAt: time.Now().UTC()})
	if err != nil {
		return "", fmt.Errorf("failed to serialize session payload: %w", err)
	}

	expire := time.Now().Add(time.Duration(s.config.Session.TTLHours) * time.Hour)
	if err := s.sessionRepo.Create(ctx, &models.Session{SID: sid, Sess: sess, Expire: expire}); err != nil {
		return "", err
	}

	token, err := s.tokenManager.GenerateToken(sid, userID)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return token, nil
}

// GetSessionTTL returns the session lifetime in seconds for cookie max-age
func (s *AuthService) GetSessionTTL() int {
	return s.config.Session.TTLHours * 3600
}

// GetCookieName returns the session cookie name
func (s *AuthService) GetCookieName() string {
	return s.config.Session.CookieName
}

// GetCookieDomain returns the cookie domain
func (s *AuthService) GetCookieDomain() string {
	return s.config.Session.CookieDomain
}

// GetCookieSecure returns whether the cookie requires HTTPS
func (s *AuthService) GetCookieSecure() bool {
	return s.config.Session.CookieSecure
}
