package service

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/kalobot/backend/internal/models"
)

// Overlong food names are clipped at insert so free-text classifier output
// cannot bloat the log.
const maxFoodNameLen = 50

// HistoryService handles the append-only intake log.
type HistoryService struct {
	db *gorm.DB
}

// Ensure HistoryService implements IHistoryService
var _ IHistoryService = (*HistoryService)(nil)

// NewHistoryService creates a new HistoryService instance
func NewHistoryService(db *gorm.DB) *HistoryService {
	return &HistoryService{db: db}
}

// AppendEventParams carries one logged meal. The event timestamp is not a
// parameter: the store's clock assigns it at insert.
type AppendEventParams struct {
	UserID   int64
	FoodName string
	Calories int
	Source   models.Source
}

// AppendEvent inserts one intake event. Events are never updated,
// deduplicated, or deleted.
func (s *HistoryService) AppendEvent(ctx context.Context, params AppendEventParams) (*models.IntakeEvent, error) {
	if params.UserID <= 0 {
		return nil, invalidAttribute("user_id", "must be positive")
	}
	if params.Calories < 0 {
		return nil, invalidAttribute("calories", "must not be negative")
	}
	if !params.Source.Valid() {
		return nil, invalidAttribute("source", "must be image, text or voice")
	}

	foodName := params.FoodName
	if runes := []rune(foodName); len(runes) > maxFoodNameLen {
		foodName = string(runes[:maxFoodNameLen-1]) + "…"
	}

	event := models.IntakeEvent{
		UserID:    params.UserID,
		FoodName:  foodName,
		Calories:  params.Calories,
		Source:    params.Source,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.db.WithContext(ctx).Create(&event).Error; err != nil {
		return nil, storeError(err)
	}
	return &event, nil
}

// ListEvents returns the user's events ordered by created_at ascending, ties
// broken by id, so the order is total even with coarse timestamps. since and
// until are optional inclusive bounds; no events in range is an empty slice,
// not an error.
func (s *HistoryService) ListEvents(ctx context.Context, userID int64, since, until *time.Time) ([]models.IntakeEvent, error) {
	if userID <= 0 {
		return nil, invalidAttribute("user_id", "must be positive")
	}

	events := []models.IntakeEvent{}
	err := s.rangeQuery(ctx, userID, since, until).
		Order("created_at ASC, id ASC").
		Find(&events).Error
	if err != nil {
		return nil, storeError(err)
	}
	return events, nil
}

// SumCalories returns the calorie total over the same filtered set as
// ListEvents; 0 for an empty set.
func (s *HistoryService) SumCalories(ctx context.Context, userID int64, since, until *time.Time) (int, error) {
	if userID <= 0 {
		return 0, invalidAttribute("user_id", "must be positive")
	}

	var total int64
	err := s.rangeQuery(ctx, userID, since, until).
		Select("COALESCE(SUM(calories), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, storeError(err)
	}
	return int(total), nil
}

func (s *HistoryService) rangeQuery(ctx context.Context, userID int64, since, until *time.Time) *gorm.DB {
	q := s.db.WithContext(ctx).Model(&models.IntakeEvent{}).Where("user_id = ?", userID)
	if since != nil {
		q = q.Where("created_at >= ?", *since)
	}
	if until != nil {
		q = q.Where("created_at <= ?", *until)
	}
	return q
}
