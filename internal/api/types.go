package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kalobot/backend/internal/service"
)

// UpsertProfileRequest is the complete attribute set the dialog collaborator
// gathers before registering a user. The calorie target is not accepted
// here: the store derives it.
type UpsertProfileRequest struct {
	Handle      string  `json:"handle"`
	DisplayName string  `json:"display_name" binding:"required"`
	Sex         string  `json:"sex" binding:"required"`
	AgeYears    int     `json:"age_years" binding:"required"`
	HeightCm    float64 `json:"height_cm" binding:"required"`
	WeightKg    float64 `json:"weight_kg" binding:"required"`
}

// AppendEventRequest is one classified meal from the classification
// collaborator.
type AppendEventRequest struct {
	FoodName string `json:"food_name" binding:"required"`
	Calories *int   `json:"calories" binding:"required"`
	Source   string `json:"source" binding:"required"`
}

// SumResponse reports a calorie aggregate.
type SumResponse struct {
	UserID        int64 `json:"user_id"`
	TotalCalories int   `json:"total_calories"`
}

// writeError maps the service error taxonomy onto HTTP statuses:
// bad input 400, unknown user 404, backend trouble 503.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidAttribute):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
	case errors.Is(err, service.ErrStoreUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "store unavailable, retry later"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
