package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/skillforge/skillforge-api/internal/middleware"
	"github.com/skillforge/skillforge-api/internal/models"
	"github.com/skillforge/skillforge-api/internal/services"
)

// ForumHandler handles Q&A forum endpoints
type ForumHandler struct {
	service services.ForumServiceInterface
}

// NewForumHandler creates a new ForumHandler
func NewForumHandler(service services.ForumServiceInterface) *ForumHandler {
	return &ForumHandler{service: service}
}

// GetPosts handles GET /api/forum/posts?limit=N
func (h *ForumHandler) GetPosts(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			respondError(c, http.StatusBadRequest, "Invalid limit", err)
			return
		}
		limit = parsed
	}

	posts, err := h.service.GetPosts(c.Request.Context(), limit)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch forum posts")
		return
	}
	c.JSON(http.StatusOK, posts)
}

// GetPost handles GET /api/forum/posts/:id
func (h *ForumHandler) GetPost(c *gin.Context) {
	post, err := h.service.GetPost(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to fetch forum post")
		return
	}
	c.JSON(http.StatusOK, post)
}

// CreatePost handles POST /api/forum/posts
func (h *ForumHandler) CreatePost(c *gin.Context) {
	user, err := middleware.GetAuthenticatedUser(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	var input models.ForumPostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondErrorWithDetails(c, http.StatusBadRequest, "Invalid request", ParseValidationErrors(err), err)
		return
	}

	post, err := h.service.CreatePost(c.Request.Context(), user.ID, &input)
	if err != nil {
		respondServiceError(c, err, "Failed to create forum post")
		return
	}
	c.JSON(http.StatusCreated, post)
}

// CreateAnswer handles POST /api/forum/posts/:id/answers
func (h *ForumHandler) CreateAnswer(c *gin.Context) {
	user, err := middleware.GetAuthenticatedUser(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	var input models.ForumAnswerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondErrorWithDetails(c, http.StatusBadRequest, "Invalid request", ParseValidationErrors(err), err)
		return
	}

	answer, err := h.service.CreateAnswer(c.Request.Context(), c.Param("id"), user.ID, &input)
	if err != nil {
		respondServiceError(c, err, "Failed to create forum answer")
		return
	}
	c.JSON(http.StatusCreated, answer)
}
