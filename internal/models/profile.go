package models

import (
	"time"

	"github.com/kalobot/backend/internal/calorie"
)

// UserProfile is the stable per-user record: external identity, physical
// attributes, and the calorie target derived from them. One row per user.
type UserProfile struct {
	UserID             int64       `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	Handle             string      `gorm:"size:255" json:"handle,omitempty"`
	DisplayName        string      `gorm:"size:255;not null" json:"display_name"`
	Sex                calorie.Sex `gorm:"size:10;not null" json:"sex"`
	AgeYears           int         `gorm:"not null" json:"age_years"`
	HeightCm           float64     `gorm:"not null" json:"height_cm"`
	WeightKg           float64     `gorm:"not null" json:"weight_kg"`
	DailyCalorieTarget int         `gorm:"not null" json:"daily_calorie_target"`
	CreatedAt          time.Time   `json:"created_at"`
	UpdatedAt          time.Time   `json:"updated_at"`
}
