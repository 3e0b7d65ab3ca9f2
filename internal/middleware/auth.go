package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skillforge/skillforge-api/internal/models"
	"github.com/skillforge/skillforge-api/internal/services"
	apperrors "github.com/skillforge/skillforge-api/pkg/errors"
)

const (
	// UserContextKey is the key used to store the authenticated user in context
	UserContextKey = "auth_user"
)

var (
	ErrUserNotFound = errors.New("user not found in context")
	ErrInvalidUser  = errors.New("invalid user type")
)

// SessionMiddleware authenticates requests via the session cookie. The
// cookie token is validated and the backing session row checked on every
// request, so a revoked session fails immediately even with a valid token.
func SessionMiddleware(authService services.AuthServiceInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(authService.GetCookieName())
		if err != nil {
			_ = c.Error(fmt.Errorf("missing session cookie")) //nolint:errcheck
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			c.Abort()
			return
		}

		user, err := authService.ResolveSession(c.Request.Context(), cookie)
		if err != nil {
			_ = c.Error(fmt.Errorf("session resolution failed: %w", err)) //nolint:errcheck

			if apperrors.Is(err, apperrors.ErrUnauthorized) {
				// Clear the dead cookie so clients stop sending it
				ClearSessionCookie(c, authService.GetCookieName(),
					authService.GetCookieDomain(), authService.GetCookieSecure())
				c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			}
			c.Abort()
			return
		}

		c.Set(UserContextKey, user)
		c.Next()
	}
}

// RequireAdmin rejects requests whose authenticated user is not an admin.
// Must run after SessionMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := GetAuthenticatedUser(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			c.Abort()
			return
		}

		if !user.IsAdmin() {
			c.JSON(http.StatusForbidden, gin.H{"message": "Admin access required"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetAuthenticatedUser extracts the authenticated user from context
func GetAuthenticatedUser(c *gin.Context) (*models.User, error) {
	val, exists := c.Get(UserContextKey)
	if !exists {
		return nil, ErrUserNotFound
	}

	user, ok := val.(*models.User)
	if !ok {
		return nil, ErrInvalidUser
	}

	return user, nil
}

// SetSessionCookie sets the session cookie
func SetSessionCookie(c *gin.Context, name, token string, ttlSeconds int, domain string, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		name,
		token,
		ttlSeconds,
		"/",
		domain,
		secure,
		true, // HttpOnly
	)
}

// ClearSessionCookie clears the session cookie
func ClearSessionCookie(c *gin.Context, name, domain string, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		name,
		"",
		-1,
		"/",
		domain,
		secure,
		true, // HttpOnly
	)
}
