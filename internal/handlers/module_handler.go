package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skillforge/skillforge-api/internal/middleware"
	"github.com/skillforge/skillforge-api/internal/models"
	"github.com/skillforge/skillforge-api/internal/services"
)

// ModuleHandler handles learning module and progress endpoints
type ModuleHandler struct {
	service services.ModuleServiceInterface
}

// NewModuleHandler creates a new ModuleHandler
func NewModuleHandler(service services.ModuleServiceInterface) *ModuleHandler {
	return &ModuleHandler{service: service}
}

// GetModules handles GET /api/modules
func (h *ModuleHandler) GetModules(c *gin.Context) {
	modules, err := h.service.GetModules(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to fetch modules")
		return
	}
	c.JSON(http.StatusOK, modules)
}

// GetModule handles GET /api/modules/:id
func (h *ModuleHandler) GetModule(c *gin.Context) {
	module, err := h.service.GetModule(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to fetch module")
		return
	}
	c.JSON(http.StatusOK, module)
}

// CreateModule handles POST /api/modules (admin only)
func (h *ModuleHandler) CreateModule(c *gin.Context) {
	var input models.ModuleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondErrorWithDetails(c, http.StatusBadRequest, "Invalid request", ParseValidationErrors(err), err)
		return
	}

	module, err := h.service.CreateModule(c.Request.Context(), &input)
	if err != nil {
		respondServiceError(c, err, "Failed to create module")
		return
	}
	c.JSON(http.StatusCreated, module)
}

// UpdateModule handles PUT /api/modules/:id (admin only)
func (h *ModuleHandler) UpdateModule(c *gin.Context) {
	var input models.ModuleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondErrorWithDetails(c, http.StatusBadRequest, "Invalid request", ParseValidationErrors(err), err)
		return
	}

	module, err := h.service.UpdateModule(c.Request.Context(), c.Param("id"), &input)
	if err != nil {
		respondServiceError(c, err, "Failed to update module")
		return
	}
	c.JSON(http.StatusOK, module)
}

// UpdateProgress handles PUT /api/modules/:id/progress
func (h *ModuleHandler) UpdateProgress(c *gin.Context) {
	user, err := middleware.GetAuthenticatedUser(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	var req models.UpdateProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErrorWithDetails(c, http.StatusBadRequest, "Invalid request", ParseValidationErrors(err), err)
		return
	}

	record, err := h.service.UpdateProgress(c.Request.Context(), user.ID, c.Param("id"), *req.Progress)
	if err != nil {
		respondServiceError(c, err, "Failed to update progress")
		return
	}
	c.JSON(http.StatusOK, record)
}
