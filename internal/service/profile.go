package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/kalobot/backend/internal/calorie"
	"github.com/kalobot/backend/internal/models"
)

// ProfileService handles user profile operations
type ProfileService struct {
	db *gorm.DB
}

// Ensure ProfileService implements IProfileService
var _ IProfileService = (*ProfileService)(nil)

// NewProfileService creates a new ProfileService instance
func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// UpsertProfileParams carries the caller-supplied profile attributes.
// The daily calorie target is deliberately absent: it is always derived.
type UpsertProfileParams struct {
	UserID      int64
	Handle      string
	DisplayName string
	Sex         calorie.Sex
	AgeYears    int
	HeightCm    float64
	WeightKg    float64
}

// UpsertProfile writes the complete profile for a user in one atomic
// conditional write: insert when the user is new, otherwise overwrite every
// supplied field while preserving created_at. The calorie target is
// recomputed from the physical attributes on every call, so it can never go
// stale relative to them.
func (s *ProfileService) UpsertProfile(ctx context.Context, params UpsertProfileParams) (*models.UserProfile, error) {
	if params.UserID <= 0 {
		return nil, invalidAttribute("user_id", "must be positive")
	}
	if params.DisplayName == "" {
		return nil, invalidAttribute("display_name", "must not be empty")
	}

	target, err := calorie.Estimate(params.Sex, params.AgeYears, params.HeightCm, params.WeightKg)
	if err != nil {
		var attrErr *calorie.InvalidAttributeError
		if errors.As(err, &attrErr) {
			return nil, invalidAttribute(attrErr.Field, attrErr.Reason)
		}
		return nil, err
	}

	now := time.Now().UTC()
	profile := models.UserProfile{
		UserID:             params.UserID,
		Handle:             params.Handle,
		DisplayName:        params.DisplayName,
		Sex:                params.Sex,
		AgeYears:           params.AgeYears,
		HeightCm:           params.HeightCm,
		WeightKg:           params.WeightKg,
		DailyCalorieTarget: target,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	// Native ON CONFLICT keeps the insert-vs-update decision atomic per
	// key on both dialects. created_at is excluded from the update set so
	// it survives every rewrite.
	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"handle",
			"display_name",
			"sex",
			"age_years",
			"height_cm",
			"weight_kg",
			"daily_calorie_target",
			"updated_at",
		}),
	}).Create(&profile).Error
	if err != nil {
		return nil, storeError(err)
	}

	// Re-read so the caller sees the stored row, including the original
	// created_at on the update branch.
	var saved models.UserProfile
	if err := s.db.WithContext(ctx).First(&saved, "user_id = ?", params.UserID).Error; err != nil {
		return nil, storeError(err)
	}
	return &saved, nil
}

// GetProfile retrieves a user's profile. ErrNotFound signals an
// unregistered user.
func (s *ProfileService) GetProfile(ctx context.Context, userID int64) (*models.UserProfile, error) {
	if userID <= 0 {
		return nil, invalidAttribute("user_id", "must be positive")
	}

	var profile models.UserProfile
	if err := s.db.WithContext(ctx).First(&profile, "user_id = ?", userID).Error; err != nil {
		return nil, storeError(err)
	}
	return &profile, nil
}
