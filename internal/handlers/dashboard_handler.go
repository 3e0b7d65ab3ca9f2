package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skillforge/skillforge-api/internal/middleware"
	"github.com/skillforge/skillforge-api/internal/services"
)

// DashboardHandler handles per-user dashboard and badge endpoints
type DashboardHandler struct {
	service services.DashboardServiceInterface
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(service services.DashboardServiceInterface) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// GetStats handles GET /api/dashboard/stats
func (h *DashboardHandler) GetStats(c *gin.Context) {
	user, err := middleware.GetAuthenticatedUser(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	stats, err := h.service.GetStats(c.Request.Context(), user.ID)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetProgress handles GET /api/dashboard/progress
func (h *DashboardHandler) GetProgress(c *gin.Context) {
	user, err := middleware.GetAuthenticatedUser(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	progress, err := h.service.GetProgress(c.Request.Context(), user.ID)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch progress")
		return
	}
	c.JSON(http.StatusOK, progress)
}

// GetBadges handles GET /api/dashboard/badges
func (h *DashboardHandler) GetBadges(c *gin.Context) {
	user, err := middleware.GetAuthenticatedUser(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	badges, err := h.service.GetBadges(c.Request.Context(), user.ID)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch badges")
		return
	}
	c.JSON(http.StatusOK, badges)
}

// AwardBadge handles POST /api/badges/:badgeType. Awarding is idempotent:
// a repeat award returns the existing row with the same 201.
func (h *DashboardHandler) AwardBadge(c *gin.Context) {
	user, err := middleware.GetAuthenticatedUser(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	badgeType := c.Param("badgeType")
	if badgeType == "" {
		respondError(c, http.StatusBadRequest, "Badge type is required", nil)
		return
	}

	badge, _, err := h.service.AwardBadge(c.Request.Context(), user.ID, badgeType)
	if err != nil {
		respondServiceError(c, err, "Failed to award badge")
		return
	}

	c.JSON(http.StatusCreated, badge)
}
