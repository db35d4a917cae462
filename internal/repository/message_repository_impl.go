package repository

import (
	"context"
	"time"

	"medops-backend/internal/domain/entity"
	domainRepo "medops-backend/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type messageRepository struct {
	database *mongo.Database
}

func NewMessageRepository(database *mongo.Database) domainRepo.MessageRepository {
	return &messageRepository{database: database}
}

// LogMessage appends a message to the conversation identified by the
// participant set. The sender is counted as a participant whether or not the
// caller listed them.
func (r *messageRepository) LogMessage(ctx context.Context, userIDs []uint, message *entity.Message) error {
	participants := append([]uint{message.FromUser}, userIDs...)
	collection := r.database.Collection(entity.ChatID(participants))

	_, err := collection.InsertOne(ctx, message)
	return err
}

func (r *messageRepository) QueryLatest(ctx context.Context, userIDs []uint, until *time.Time, limit int64) ([]entity.Message, error) {
	filter := bson.M{}
	if until != nil {
		filter["timestamp"] = bson.M{"$lt": *until}
	}

	// Newest first to apply the limit, then reversed so callers always see
	// oldest to newest.
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}}).SetLimit(limit)
	messages, err := r.find(ctx, userIDs, filter, opts)
	if err != nil {
		return nil, err
	}

	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

func (r *messageRepository) QueryTimeRange(ctx context.Context, userIDs []uint, since, until *time.Time) ([]entity.Message, error) {
	window := bson.M{}
	if since != nil {
		window["$gte"] = *since
	}
	if until != nil {
		window["$lt"] = *until
	}

	filter := bson.M{}
	if len(window) > 0 {
		filter["timestamp"] = window
	}

	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}})
	return r.find(ctx, userIDs, filter, opts)
}

func (r *messageRepository) find(ctx context.Context, userIDs []uint, filter bson.M, opts *options.FindOptions) ([]entity.Message, error) {
	collection := r.database.Collection(entity.ChatID(userIDs))

	cursor, err := collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var messages []entity.Message
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}
