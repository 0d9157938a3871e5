package models

import "time"

// Source identifies how a logged food item was detected.
type Source string

const (
	SourceImage Source = "image"
	SourceText  Source = "text"
	SourceVoice Source = "voice"
)

// Valid reports whether s is one of the enumerated detection sources.
func (s Source) Valid() bool {
	switch s {
	case SourceImage, SourceText, SourceVoice:
		return true
	}
	return false
}

// IntakeEvent is one logged food/calorie entry. Rows are append-only:
// never updated or deleted once written.
type IntakeEvent struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64     `gorm:"not null;index:idx_intake_events_user_id" json:"user_id"`
	FoodName  string    `gorm:"size:50;not null" json:"food_name"`
	Calories  int       `gorm:"not null" json:"calories"`
	Source    Source    `gorm:"size:10;not null" json:"source"`
	CreatedAt time.Time `gorm:"index:idx_intake_events_created_at" json:"created_at"`
}
