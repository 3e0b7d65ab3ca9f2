package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skillforge/skillforge-api/internal/middleware"
	"github.com/skillforge/skillforge-api/internal/models"
	"github.com/skillforge/skillforge-api/internal/services"
)

// MentorHandler handles mentor directory and booking endpoints
type MentorHandler struct {
	service services.MentorServiceInterface
}

// NewMentorHandler creates a new MentorHandler
func NewMentorHandler(service services.MentorServiceInterface) *MentorHandler {
	return &MentorHandler{service: service}
}

// GetMentors handles GET /api/mentors
func (h *MentorHandler) GetMentors(c *gin.Context) {
	mentors, err := h.service.GetMentors(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to fetch mentors")
		return
	}
	c.JSON(http.StatusOK, mentors)
}

// GetMentor handles GET /api/mentors/:id
func (h *MentorHandler) GetMentor(c *gin.Context) {
	mentor, err := h.service.GetMentor(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to fetch mentor")
		return
	}
	c.JSON(http.StatusOK, mentor)
}

// CreateMentor handles POST /api/mentors. The mentor profile is created for
// the authenticated user.
func (h *MentorHandler) CreateMentor(c *gin.Context) {
	user, err := middleware.GetAuthenticatedUser(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	var input models.MentorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondErrorWithDetails(c, http.StatusBadRequest, "Invalid request", ParseValidationErrors(err), err)
		return
	}

	mentor, err := h.service.CreateMentor(c.Request.Context(), user.ID, &input)
	if err != nil {
		respondServiceError(c, err, "Failed to create mentor profile")
		return
	}
	c.JSON(http.StatusCreated, mentor)
}

// GetMentorSessions handles GET /api/mentor-sessions
func (h *MentorHandler) GetMentorSessions(c *gin.Context) {
	user, err := middleware.GetAuthenticatedUser(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	sessions, err := h.service.GetMentorSessions(c.Request.Context(), user.ID)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch mentor sessions")
		return
	}
	c.JSON(http.StatusOK, sessions)
}

// BookSession handles POST /api/mentor-sessions
func (h *MentorHandler) BookSession(c *gin.Context) {
	user, err := middleware.GetAuthenticatedUser(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	var req models.BookSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErrorWithDetails(c, http.StatusBadRequest, "Invalid request", ParseValidationErrors(err), err)
		return
	}

	session, err := h.service.BookSession(c.Request.Context(), user.ID, &req)
	if err != nil {
		respondServiceError(c, err, "Failed to book session")
		return
	}
	c.JSON(http.StatusCreated, session)
}
