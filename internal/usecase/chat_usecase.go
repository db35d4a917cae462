package usecase

import (
	"context"
	"errors"
	"time"

	"medops-backend/internal/domain/entity"
	"medops-backend/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

var (
	ErrEmptyChat    = errors.New("a chat needs at least one participant")
	ErrInvalidLimit = errors.New("limit must be greater than zero")
)

// ChatUsecase is the message log for conversations between users.
type ChatUsecase interface {
	LogMessage(ctx context.Context, userIDs []uint, message *entity.Message) error
	QueryLatest(ctx context.Context, userIDs []uint, until *time.Time, limit int64) ([]entity.Message, error)
	QueryTimeRange(ctx context.Context, userIDs []uint, since, until *time.Time) ([]entity.Message, error)
}

type chatUsecase struct {
	log         *logrus.Logger
	messageRepo repository.MessageRepository
}

func NewChatUsecase(log *logrus.Logger, messageRepo repository.MessageRepository) ChatUsecase {
	return &chatUsecase{
		log:         log,
		messageRepo: messageRepo,
	}
}

func (u *chatUsecase) LogMessage(ctx context.Context, userIDs []uint, message *entity.Message) error {
	if len(userIDs) == 0 && message.FromUser == 0 {
		return ErrEmptyChat
	}
	if err := message.Validate(); err != nil {
		return err
	}
	if message.Timestamp.IsZero() {
		message.Timestamp = time.Now().UTC()
	}

	if err := u.messageRepo.LogMessage(ctx, userIDs, message); err != nil {
		u.log.Warnf("Failed to log message: %+v", err)
		return err
	}
	return nil
}

func (u *chatUsecase) QueryLatest(ctx context.Context, userIDs []uint, until *time.Time, limit int64) ([]entity.Message, error) {
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}

	messages, err := u.messageRepo.QueryLatest(ctx, userIDs, until, limit)
	if err != nil {
		u.log.Warnf("Failed to query latest messages: %+v", err)
		return nil, err
	}
	return messages, nil
}

func (u *chatUsecase) QueryTimeRange(ctx context.Context, userIDs []uint, since, until *time.Time) ([]entity.Message, error) {
	messages, err := u.messageRepo.QueryTimeRange(ctx, userIDs, since, until)
	if err != nil {
		u.log.Warnf("Failed to query messages: %+v", err)
		return nil, err
	}
	return messages, nil
}
