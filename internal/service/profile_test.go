package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kalobot/backend/internal/calorie"
	"github.com/kalobot/backend/internal/models"
	"github.com/kalobot/backend/internal/service"
	"github.com/kalobot/backend/internal/testhelpers"
)

func ivanParams() service.UpsertProfileParams {
	return service.UpsertProfileParams{
		UserID:      1,
		Handle:      "ivan",
		DisplayName: "Иван Петров",
		Sex:         calorie.SexMale,
		AgeYears:    30,
		HeightCm:    180.0,
		WeightKg:    75.0,
	}
}

func TestUpsertProfileCreates(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := service.NewProfileService(db)

	profile, err := svc.UpsertProfile(context.Background(), ivanParams())
	require.NoError(t, err)

	assert.Equal(t, int64(1), profile.UserID)
	assert.Equal(t, "Иван Петров", profile.DisplayName)
	assert.Equal(t, 2076, profile.DailyCalorieTarget)
	assert.True(t, profile.CreatedAt.Equal(profile.UpdatedAt))

	var count int64
	require.NoError(t, db.Model(&models.UserProfile{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUpsertProfileUpdatesInPlace(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := service.NewProfileService(db)
	ctx := context.Background()

	first, err := svc.UpsertProfile(ctx, ivanParams())
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	params := ivanParams()
	params.WeightKg = 80.0
	params.DisplayName = "Иван П."
	second, err := svc.UpsertProfile(ctx, params)
	require.NoError(t, err)

	assert.Equal(t, "Иван П.", second.DisplayName)
	assert.Equal(t, 80.0, second.WeightKg)
	assert.True(t, second.CreatedAt.Equal(first.CreatedAt), "created_at must survive updates")
	assert.True(t, second.UpdatedAt.After(first.UpdatedAt), "updated_at must advance")

	// Heavier weight, higher target: 10*80+6.25*180-5*30+5 = 1780, *1.2 = 2136.
	assert.Equal(t, 2136, second.DailyCalorieTarget)

	var count int64
	require.NoError(t, db.Model(&models.UserProfile{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUpsertProfileTargetIsAlwaysDerived(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := service.NewProfileService(db)
	ctx := context.Background()

	profile, err := svc.UpsertProfile(ctx, ivanParams())
	require.NoError(t, err)

	// Tamper with the stored target; the next write must recompute it.
	require.NoError(t, db.Model(&models.UserProfile{}).
		Where("user_id = ?", profile.UserID).
		Update("daily_calorie_target", 9999).Error)

	profile, err = svc.UpsertProfile(ctx, ivanParams())
	require.NoError(t, err)
	assert.Equal(t, 2076, profile.DailyCalorieTarget)
}

func TestUpsertProfileInvalidAttributes(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := service.NewProfileService(db)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*service.UpsertProfileParams)
		field  string
	}{
		{"zero user id", func(p *service.UpsertProfileParams) { p.UserID = 0 }, "user_id"},
		{"empty display name", func(p *service.UpsertProfileParams) { p.DisplayName = "" }, "display_name"},
		{"zero age", func(p *service.UpsertProfileParams) { p.AgeYears = 0 }, "age_years"},
		{"bad sex", func(p *service.UpsertProfileParams) { p.Sex = "robot" }, "sex"},
		{"zero height", func(p *service.UpsertProfileParams) { p.HeightCm = 0 }, "height_cm"},
		{"negative weight", func(p *service.UpsertProfileParams) { p.WeightKg = -2 }, "weight_kg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := ivanParams()
			tt.mutate(&params)

			_, err := svc.UpsertProfile(ctx, params)
			require.ErrorIs(t, err, service.ErrInvalidAttribute)
			var attrErr *service.InvalidAttributeError
			require.ErrorAs(t, err, &attrErr)
			assert.Equal(t, tt.field, attrErr.Field)
		})
	}

	// Invalid writes must leave nothing behind.
	var count int64
	require.NoError(t, db.Model(&models.UserProfile{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestGetProfileNotFound(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := service.NewProfileService(db)

	_, err := svc.GetProfile(context.Background(), 404)
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestGetProfileRoundTrip(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := service.NewProfileService(db)
	ctx := context.Background()

	written, err := svc.UpsertProfile(ctx, ivanParams())
	require.NoError(t, err)

	read, err := svc.GetProfile(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, written.DisplayName, read.DisplayName)
	assert.Equal(t, written.DailyCalorieTarget, read.DailyCalorieTarget)
}

func TestUpsertProfileConcurrentSameKey(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := service.NewProfileService(db)
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make([]error, 8)
	for i := 0; i < len(errs); i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			params := ivanParams()
			params.WeightKg = 70.0 + float64(i)
			_, errs[i] = svc.UpsertProfile(ctx, params)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}

	// First writer wins the insert branch, everyone else updates: one row.
	var count int64
	require.NoError(t, db.Model(&models.UserProfile{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
