package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/kalobot/backend/internal/models"
	"github.com/kalobot/backend/internal/service"
	"github.com/kalobot/backend/internal/testhelpers"
)

// The registration-plus-three-meals scenario must behave identically on both
// backends; callers never observe which engine is active.
func TestScenarioBackendParity(t *testing.T) {
	backends := []struct {
		name  string
		setup func(*testing.T) *gorm.DB
	}{
		{"sqlite", testhelpers.SetupTestDB},
		{"postgres", testhelpers.SetupPostgresTestDB},
	}

	for _, backend := range backends {
		t.Run(backend.name, func(t *testing.T) {
			db := backend.setup(t)
			profiles := service.NewProfileService(db)
			history := service.NewHistoryService(db)
			ctx := context.Background()

			profile, err := profiles.UpsertProfile(ctx, ivanParams())
			require.NoError(t, err)
			assert.Equal(t, 2076, profile.DailyCalorieTarget)

			appendMeal(t, history, 1, "Борщ", 250, models.SourceImage)
			appendMeal(t, history, 1, "Чай", 5, models.SourceText)
			appendMeal(t, history, 1, "Яблоко", 80, models.SourceText)

			events, err := history.ListEvents(ctx, 1, nil, nil)
			require.NoError(t, err)
			require.Len(t, events, 3)
			assert.Equal(t, "Борщ", events[0].FoodName)
			assert.Equal(t, "Чай", events[1].FoodName)
			assert.Equal(t, "Яблоко", events[2].FoodName)

			total, err := history.SumCalories(ctx, 1, nil, nil)
			require.NoError(t, err)
			assert.Equal(t, 335, total)

			// The update branch preserves created_at on this backend too.
			params := ivanParams()
			params.WeightKg = 80.0
			updated, err := profiles.UpsertProfile(ctx, params)
			require.NoError(t, err)
			assert.True(t, updated.CreatedAt.Equal(profile.CreatedAt))
			assert.Equal(t, 2136, updated.DailyCalorieTarget)
		})
	}
}
