package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kalobot/backend/internal/calorie"
	"github.com/kalobot/backend/internal/service"
)

// ProfileHandler exposes the profile store to the dialog collaborator.
type ProfileHandler struct {
	profiles service.IProfileService
}

// NewProfileHandler creates a new ProfileHandler instance
func NewProfileHandler(profiles service.IProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

func parseUserID(c *gin.Context) (int64, bool) {
	userID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil || userID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id must be a positive integer"})
		return 0, false
	}
	return userID, true
}

// UpsertProfile handles PUT /users/:user_id/profile.
func (h *ProfileHandler) UpsertProfile(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	var req UpsertProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.profiles.UpsertProfile(c.Request.Context(), service.UpsertProfileParams{
		UserID:      userID,
		Handle:      req.Handle,
		DisplayName: req.DisplayName,
		Sex:         calorie.Sex(req.Sex),
		AgeYears:    req.AgeYears,
		HeightCm:    req.HeightCm,
		WeightKg:    req.WeightKg,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// GetProfile handles GET /users/:user_id/profile. 404 means "not yet
// registered" to the dialog collaborator, which then starts registration.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	profile, err := h.profiles.GetProfile(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}
