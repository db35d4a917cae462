package repository

import (
	"context"
	"time"

	"medops-backend/internal/domain/entity"
)

type MessageRepository interface {
	LogMessage(ctx context.Context, userIDs []uint, message *entity.Message) error
	QueryLatest(ctx context.Context, userIDs []uint, until *time.Time, limit int64) ([]entity.Message, error)
	QueryTimeRange(ctx context.Context, userIDs []uint, since, until *time.Time) ([]entity.Message, error)
}
