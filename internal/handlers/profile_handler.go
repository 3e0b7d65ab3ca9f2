package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skillforge/skillforge-api/internal/middleware"
	"github.com/skillforge/skillforge-api/internal/services"
)

// ProfileHandler handles profile endpoints
type ProfileHandler struct {
	service services.ProfileServiceInterface
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(service services.ProfileServiceInterface) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// UploadAvatarRequest is the payload for POST /api/profile/avatar. The image
// arrives base64 encoded, optionally as a data URI.
type UploadAvatarRequest struct {
	Image       string `json:"image" binding:"required"`
	ContentType string `json:"contentType" binding:"required"`
}

// UploadAvatar handles POST /api/profile/avatar
func (h *ProfileHandler) UploadAvatar(c *gin.Context) {
	user, err := middleware.GetAuthenticatedUser(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	var req UploadAvatarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErrorWithDetails(c, http.StatusBadRequest, "Invalid request", ParseValidationErrors(err), err)
		return
	}

	url, err := h.service.UploadAvatar(c.Request.Context(), user.ID, req.Image, req.ContentType)
	if err != nil {
		respondServiceError(c, err, "Failed to upload avatar")
		return
	}
	c.JSON(http.StatusOK, gin.H{"profileImageUrl": url})
}
