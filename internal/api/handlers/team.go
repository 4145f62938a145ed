package handlers

import (
	"net/http"

	"hackathon-portal-backend/internal/auth"
	"hackathon-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TeamHandler handles HTTP requests for team operations
type TeamHandler struct {
	teamService service.TeamServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService service.TeamServiceInterface) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

// GetMyTeam handles GET /teams/me
// @Summary Get the caller's team
// @Description Get the authenticated user's team with members and discoverability settings. Returns null if the user has no team.
// @Tags teams
// @Accept json
// @Produce json
// @Success 200 {object} service.TeamResponse "The caller's team, or null"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams/me [get]
func (h *TeamHandler) GetMyTeam(c *gin.Context) {
	userID, ok := auth.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	team, err := h.teamService.GetUserTeam(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if team == nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, team)
}

// CreateTeam handles POST /teams
// @Summary Create a team
// @Description Create a team with a generated join code, making the caller its creator and first member
// @Tags teams
// @Accept json
// @Produce json
// @Param team body service.CreateTeamRequest true "Team data"
// @Success 201 {object} service.TeamResponse "Successfully created team"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Caller already belongs to a team"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	userID, ok := auth.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req service.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	team, err := h.teamService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, team)
}

// JoinTeam handles POST /teams/join
// @Summary Join a team by code
// @Description Join the team matching the given 5-character join code
// @Tags teams
// @Accept json
// @Produce json
// @Param join body service.JoinTeamRequest true "Join code"
// @Success 200 {object} service.TeamResponse "Successfully joined team"
// @Failure 404 {object} ErrorResponse "No team with that code"
// @Failure 409 {object} ErrorResponse "Team is full or caller already belongs to a team"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams/join [post]
func (h *TeamHandler) JoinTeam(c *gin.Context) {
	userID, ok := auth.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req service.JoinTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	team, err := h.teamService.Join(c.Request.Context(), userID, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

// LeaveTeamRequest represents the request to leave a team
type LeaveTeamRequest struct {
	TeamID uuid.UUID `json:"team_id" binding:"required"`
}

// LeaveTeam handles POST /teams/leave
// @Summary Leave a team
// @Description Detach the caller from their team. Returns the team as it was before removal.
// @Tags teams
// @Accept json
// @Produce json
// @Param leave body LeaveTeamRequest true "Team to leave"
// @Success 200 {object} service.TeamResponse "The team before removal"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 409 {object} ErrorResponse "Caller is not on this team"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams/leave [post]
func (h *TeamHandler) LeaveTeam(c *gin.Context) {
	userID, ok := auth.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req LeaveTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	team, err := h.teamService.Leave(c.Request.Context(), userID, req.TeamID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

// RenameTeam handles PATCH /teams/:id
// @Summary Rename a team
// @Description Change the team's name. Creator only.
// @Tags teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param rename body service.RenameTeamRequest true "New name"
// @Success 200 {object} service.TeamResponse "Successfully renamed team"
// @Failure 403 {object} ErrorResponse "Caller is not the team creator"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams/{id} [patch]
func (h *TeamHandler) RenameTeam(c *gin.Context) {
	userID, ok := auth.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	teamID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team ID"})
		return
	}

	var req service.RenameTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	team, err := h.teamService.Rename(userID, teamID, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

// RemoveMember handles DELETE /teams/:id/members/:userId
// @Summary Remove a team member
// @Description Detach a member from the team. Creator only.
// @Tags teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param userId path string true "User ID (UUID) to remove"
// @Success 200 {object} map[string]bool "Member removed"
// @Failure 403 {object} ErrorResponse "Caller is not the team creator"
// @Failure 404 {object} ErrorResponse "Team or member not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams/{id}/members/{userId} [delete]
func (h *TeamHandler) RemoveMember(c *gin.Context) {
	userID, ok := auth.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	teamID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team ID"})
		return
	}
	targetID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user ID"})
		return
	}

	if err := h.teamService.RemoveMember(c.Request.Context(), userID, teamID, targetID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteTeam handles DELETE /teams/:id
// @Summary Delete a team
// @Description Delete the team and clear every member's affiliation. Creator only.
// @Tags teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Success 200 {object} map[string]bool "Team deleted"
// @Failure 403 {object} ErrorResponse "Caller is not the team creator"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams/{id} [delete]
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	userID, ok := auth.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	teamID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team ID"})
		return
	}

	if err := h.teamService.Delete(c.Request.Context(), userID, teamID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// UpdateTeamSearch handles PUT /teams/:id/search
// @Summary Update team discoverability
// @Description Patch the team's browser listing (about, note, contact, status). Creator only.
// @Tags teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param search body service.UpdateTeamSearchRequest true "Discoverability settings"
// @Success 200 {object} service.TeamSearchResponse "Updated settings"
// @Failure 403 {object} ErrorResponse "Caller is not the team creator"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 409 {object} ErrorResponse "Team is full and cannot be discoverable"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams/{id}/search [put]
func (h *TeamHandler) UpdateTeamSearch(c *gin.Context) {
	userID, ok := auth.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	teamID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team ID"})
		return
	}

	var req service.UpdateTeamSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	search, err := h.teamService.UpdateSearch(userID, teamID, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, search)
}

// GetDiscoverableTeams handles GET /teams/discoverable
// @Summary List discoverable teams
// @Description List teams open to joiners, newest first. Full teams are excluded.
// @Tags teams
// @Accept json
// @Produce json
// @Success 200 {array} service.DiscoverableTeamResponse "Discoverable teams"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams/discoverable [get]
func (h *TeamHandler) GetDiscoverableTeams(c *gin.Context) {
	teams, err := h.teamService.GetDiscoverableTeams()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, teams)
}
