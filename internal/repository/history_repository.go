package repository

import (
	"context"
	"time"

	"github.com/faceglow/reminder-service/internal/domain"
	"github.com/faceglow/reminder-service/internal/shared/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const historyCollection = "reminder_history"

// HistoryRepository handles the append-only reminder history log
type HistoryRepository struct {
	client *mongodb.MongoClient
}

// NewHistoryRepository creates a new history repository
func NewHistoryRepository(client *mongodb.MongoClient) *HistoryRepository {
	return &HistoryRepository{client: client}
}

// EnsureIndexes creates the index backing the deduplication lookup
func (r *HistoryRepository) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "schedule_id", Value: 1},
				{Key: "type", Value: 1},
				{Key: "sent_at", Value: -1},
			},
			Options: options.Index().SetName("schedule_type_sent_idx"),
		},
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "sent_at", Value: -1},
			},
			Options: options.Index().SetName("user_sent_idx"),
		},
	}

	return r.client.CreateIndexes(ctx, historyCollection, indexes)
}

// Create appends a history record. SentAt is set here; records are never
// updated or deleted afterwards.
func (r *HistoryRepository) Create(ctx context.Context, history *domain.ReminderHistory) error {
	history.ID = primitive.NewObjectID()
	history.SentAt = time.Now()

	_, err := r.client.Collection(historyCollection).InsertOne(ctx, history)
	return err
}

// HasRecent reports whether a reminder of the given type was already
// recorded for the schedule since the given instant. This is the
// idempotency guard for overlapping dispatcher runs.
func (r *HistoryRepository) HasRecent(ctx context.Context, scheduleID string, reminderType domain.ReminderType, since time.Time) (bool, error) {
	filter := bson.M{
		"schedule_id": scheduleID,
		"type":        reminderType,
		"sent_at":     bson.M{"$gte": since},
	}

	err := r.client.Collection(historyCollection).FindOne(ctx, filter).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}

// FindByUserID pages through a user's history, newest first
func (r *HistoryRepository) FindByUserID(ctx context.Context, userID string, page, pageSize int) ([]*domain.ReminderHistory, int64, error) {
	filter := bson.M{"user_id": userID}

	total, err := r.client.Collection(historyCollection).CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	skip := (page - 1) * pageSize
	opts := options.Find().
		SetSkip(int64(skip)).
		SetLimit(int64(pageSize)).
		SetSort(bson.M{"sent_at": -1})

	cursor, err := r.client.Collection(historyCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var history []*domain.ReminderHistory
	if err = cursor.All(ctx, &history); err != nil {
		return nil, 0, err
	}

	return history, total, nil
}
