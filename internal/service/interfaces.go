package service

import (
	"context"
	"time"

	"github.com/kalobot/backend/internal/models"
)

// IProfileService is the write/read contract for user profiles.
type IProfileService interface {
	UpsertProfile(ctx context.Context, params UpsertProfileParams) (*models.UserProfile, error)
	GetProfile(ctx context.Context, userID int64) (*models.UserProfile, error)
}

// IHistoryService is the append/query contract for the intake log.
type IHistoryService interface {
	AppendEvent(ctx context.Context, params AppendEventParams) (*models.IntakeEvent, error)
	ListEvents(ctx context.Context, userID int64, since, until *time.Time) ([]models.IntakeEvent, error)
	SumCalories(ctx context.Context, userID int64, since, until *time.Time) (int, error)
}
