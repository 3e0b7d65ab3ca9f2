package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skillforge/skillforge-api/internal/middleware"
	"github.com/skillforge/skillforge-api/internal/models"
	"github.com/skillforge/skillforge-api/internal/services"
)

// ChallengeHandler handles interview challenge endpoints
type ChallengeHandler struct {
	service services.ChallengeServiceInterface
}

// NewChallengeHandler creates a new ChallengeHandler
func NewChallengeHandler(service services.ChallengeServiceInterface) *ChallengeHandler {
	return &ChallengeHandler{service: service}
}

// GetChallenges handles GET /api/challenges
func (h *ChallengeHandler) GetChallenges(c *gin.Context) {
	challenges, err := h.service.GetChallenges(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to fetch challenges")
		return
	}
	c.JSON(http.StatusOK, challenges)
}

// GetChallenge handles GET /api/challenges/:id
func (h *ChallengeHandler) GetChallenge(c *gin.Context) {
	challenge, err := h.service.GetChallenge(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to fetch challenge")
		return
	}
	c.JSON(http.StatusOK, challenge)
}

// CreateChallenge handles POST /api/challenges (admin only)
func (h *ChallengeHandler) CreateChallenge(c *gin.Context) {
	var input models.ChallengeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondErrorWithDetails(c, http.StatusBadRequest, "Invalid request", ParseValidationErrors(err), err)
		return
	}

	challenge, err := h.service.CreateChallenge(c.Request.Context(), &input)
	if err != nil {
		respondServiceError(c, err, "Failed to create challenge")
		return
	}
	c.JSON(http.StatusCreated, challenge)
}

// GetUserAttempts handles GET /api/challenge-attempts
func (h *ChallengeHandler) GetUserAttempts(c *gin.Context) {
	user, err := middleware.GetAuthenticatedUser(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	attempts, err := h.service.GetUserAttempts(c.Request.Context(), user.ID)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch attempts")
		return
	}
	c.JSON(http.StatusOK, attempts)
}

// SubmitAttempt handles POST /api/challenge-attempts
func (h *ChallengeHandler) SubmitAttempt(c *gin.Context) {
	user, err := middleware.GetAuthenticatedUser(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	var input models.AttemptInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondErrorWithDetails(c, http.StatusBadRequest, "Invalid request", ParseValidationErrors(err), err)
		return
	}

	attempt, err := h.service.SubmitAttempt(c.Request.Context(), user.ID, &input)
	if err != nil {
		respondServiceError(c, err, "Failed to submit attempt")
		return
	}
	c.JSON(http.StatusCreated, attempt)
}
