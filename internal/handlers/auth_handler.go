package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skillforge/skillforge-api/internal/middleware"
	"github.com/skillforge/skillforge-api/internal/models"
	"github.com/skillforge/skillforge-api/internal/services"
)

// AuthHandler handles registration, login, and session endpoints
type AuthHandler struct {
	service services.AuthServiceInterface
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(service services.AuthServiceInterface) *AuthHandler {
	return &AuthHandler{service: service}
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErrorWithDetails(c, http.StatusBadRequest, "Invalid request", ParseValidationErrors(err), err)
		return
	}

	user, token, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "Failed to register")
		return
	}

	h.setCookie(c, token)
	c.JSON(http.StatusCreated, user)
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErrorWithDetails(c, http.StatusBadRequest, "Invalid request", ParseValidationErrors(err), err)
		return
	}

	user, token, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "Failed to log in")
		return
	}

	h.setCookie(c, token)
	c.JSON(http.StatusOK, user)
}

// Logout handles POST /api/auth/logout. Succeeds even without a valid session.
func (h *AuthHandler) Logout(c *gin.Context) {
	if cookie, err := c.Cookie(h.service.GetCookieName()); err == nil {
		if err := h.service.Logout(c.Request.Context(), cookie); err != nil {
			respondError(c, http.StatusInternalServerError, "Failed to log out", err)
			return
		}
	}

	middleware.ClearSessionCookie(c, h.service.GetCookieName(),
		h.service.GetCookieDomain(), h.service.GetCookieSecure())
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// GetCurrentUser handles GET /api/auth/user
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	user, err := middleware.GetAuthenticatedUser(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) setCookie(c *gin.Context, token string) {
	middleware.SetSessionCookie(c, h.service.GetCookieName(), token,
		h.service.GetSessionTTL(), h.service.GetCookieDomain(), h.service.GetCookieSecure())
}
