package handlers

import (
	"net/http"

	"hackathon-portal-backend/internal/auth"
	"hackathon-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PreferencesHandler handles HTTP requests for onboarding preferences
type PreferencesHandler struct {
	preferencesService service.PreferencesServiceInterface
}

// NewPreferencesHandler creates a new preferences handler
func NewPreferencesHandler(preferencesService service.PreferencesServiceInterface) *PreferencesHandler {
	return &PreferencesHandler{
		preferencesService: preferencesService,
	}
}

// GetMyPreferences handles GET /preferences/me
// @Summary Get onboarding preferences
// @Description Get the caller's onboarding preferences. Accepted participants only.
// @Tags preferences
// @Accept json
// @Produce json
// @Success 200 {object} models.Preferences "The caller's preferences"
// @Failure 403 {object} ErrorResponse "Caller is not an accepted participant"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /preferences/me [get]
func (h *PreferencesHandler) GetMyPreferences(c *gin.Context) {
	userID, ok := auth.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	preferences, err := h.preferencesService.GetMyPreferences(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, preferences)
}

// SavePreferences handles PUT /preferences/me
// @Summary Save onboarding preferences
// @Description Patch the caller's meal, t-shirt, and dietary choices. Accepted participants only.
// @Tags preferences
// @Accept json
// @Produce json
// @Param preferences body service.SavePreferencesRequest true "Preference fields"
// @Success 200 {object} models.Preferences "The updated preferences"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Caller is not an accepted participant"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /preferences/me [put]
func (h *PreferencesHandler) SavePreferences(c *gin.Context) {
	userID, ok := auth.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req service.SavePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	preferences, err := h.preferencesService.SavePreferences(userID, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, preferences)
}
