package handlers

import (
	"net/http"
	"strconv"

	"hackathon-portal-backend/internal/auth"
	"hackathon-portal-backend/internal/database/models"
	"hackathon-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ApplicationHandler handles HTTP requests for applications and admin review
type ApplicationHandler struct {
	applicationService service.ApplicationServiceInterface
}

// NewApplicationHandler creates a new application handler
func NewApplicationHandler(applicationService service.ApplicationServiceInterface) *ApplicationHandler {
	return &ApplicationHandler{
		applicationService: applicationService,
	}
}

// GetMyApplication handles GET /applications/me
// @Summary Get the caller's application
// @Description Get the authenticated user's application, creating an empty draft on first access
// @Tags applications
// @Accept json
// @Produce json
// @Success 200 {object} models.Application "The caller's application"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /applications/me [get]
func (h *ApplicationHandler) GetMyApplication(c *gin.Context) {
	userID, ok := auth.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	application, err := h.applicationService.GetMyApplication(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, application)
}

// SaveApplication handles PUT /applications/me
// @Summary Save application draft
// @Description Patch the caller's application draft with any step's fields
// @Tags applications
// @Accept json
// @Produce json
// @Param application body service.SaveApplicationRequest true "Application fields"
// @Success 200 {object} models.Application "The updated application"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Application already submitted"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /applications/me [put]
func (h *ApplicationHandler) SaveApplication(c *gin.Context) {
	userID, ok := auth.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req service.SaveApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	application, err := h.applicationService.SaveApplication(userID, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, application)
}

// SubmitApplication handles POST /applications/me/submit
// @Summary Submit the application
// @Description Validate and submit the caller's application for review
// @Tags applications
// @Accept json
// @Produce json
// @Success 200 {object} models.Application "The submitted application"
// @Failure 400 {object} ErrorResponse "Required fields missing"
// @Failure 409 {object} ErrorResponse "Application already submitted"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /applications/me/submit [post]
func (h *ApplicationHandler) SubmitApplication(c *gin.Context) {
	userID, ok := auth.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	application, err := h.applicationService.SubmitApplication(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, application)
}

// ListApplications handles GET /admin/applications
// @Summary List applications for review
// @Description List applications filtered by status with pagination. Admin only.
// @Tags admin
// @Accept json
// @Produce json
// @Param status query string false "Application status filter" default(submitted)
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.ApplicationListResponse "Applications under review"
// @Failure 403 {object} ErrorResponse "Admin role required"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /admin/applications [get]
func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	userID, ok := auth.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	status := models.ApplicationStatus(c.DefaultQuery("status", string(models.ApplicationStatusSubmitted)))

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	applications, err := h.applicationService.ListApplications(userID, status, page, pageSize)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, applications)
}

// DecideApplication handles PATCH /admin/applications/:userId/status
// @Summary Decide an application
// @Description Accept, reject, or waitlist a user's application. Admin only.
// @Tags admin
// @Accept json
// @Produce json
// @Param userId path string true "User ID (UUID)"
// @Param decision body service.DecideApplicationRequest true "Review decision"
// @Success 200 {object} map[string]bool "Decision recorded"
// @Failure 400 {object} ErrorResponse "Invalid decision"
// @Failure 403 {object} ErrorResponse "Admin role required"
// @Failure 404 {object} ErrorResponse "User not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /admin/applications/{userId}/status [patch]
func (h *ApplicationHandler) DecideApplication(c *gin.Context) {
	userID, ok := auth.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	targetID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user ID"})
		return
	}

	var req service.DecideApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.applicationService.DecideApplication(userID, targetID, &req); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
