package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kalobot/backend/internal/models"
	"github.com/kalobot/backend/internal/service"
)

// HistoryHandler exposes the intake log.
type HistoryHandler struct {
	history service.IHistoryService
}

// NewHistoryHandler creates a new HistoryHandler instance
func NewHistoryHandler(history service.IHistoryService) *HistoryHandler {
	return &HistoryHandler{history: history}
}

// AppendEvent handles POST /users/:user_id/intake.
func (h *HistoryHandler) AppendEvent(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	var req AppendEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, err := h.history.AppendEvent(c.Request.Context(), service.AppendEventParams{
		UserID:   userID,
		FoodName: req.FoodName,
		Calories: *req.Calories,
		Source:   models.Source(req.Source),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, event)
}

// ListEvents handles GET /users/:user_id/intake with optional inclusive
// since/until RFC3339 query parameters.
func (h *HistoryHandler) ListEvents(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	since, until, ok := parseRange(c)
	if !ok {
		return
	}

	events, err := h.history.ListEvents(c.Request.Context(), userID, since, until)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, events)
}

// SumCalories handles GET /users/:user_id/intake/total.
func (h *HistoryHandler) SumCalories(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	since, until, ok := parseRange(c)
	if !ok {
		return
	}

	total, err := h.history.SumCalories(c.Request.Context(), userID, since, until)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, SumResponse{UserID: userID, TotalCalories: total})
}

// SumCaloriesToday handles GET /users/:user_id/intake/today: the running
// total the dialog collaborator shows against the daily target.
func (h *HistoryHandler) SumCaloriesToday(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	since := time.Now().UTC().Truncate(24 * time.Hour)
	until := since.Add(24*time.Hour - time.Nanosecond)

	total, err := h.history.SumCalories(c.Request.Context(), userID, &since, &until)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, SumResponse{UserID: userID, TotalCalories: total})
}

func parseRange(c *gin.Context) (since, until *time.Time, ok bool) {
	if raw := c.Query("since"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "since must be an RFC3339 timestamp"})
			return nil, nil, false
		}
		since = &parsed
	}
	if raw := c.Query("until"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "until must be an RFC3339 timestamp"})
			return nil, nil, false
		}
		until = &parsed
	}
	return since, until, true
}
