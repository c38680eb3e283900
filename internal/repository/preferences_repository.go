package repository

import (
	"context"
	"time"

	"github.com/faceglow/reminder-service/internal/domain"
	"github.com/faceglow/reminder-service/internal/shared/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const preferencesCollection = "reminder_preferences"

// PreferencesRepository handles reminder preferences data operations
type PreferencesRepository struct {
	client *mongodb.MongoClient
}

// NewPreferencesRepository creates a new preferences repository
func NewPreferencesRepository(client *mongodb.MongoClient) *PreferencesRepository {
	return &PreferencesRepository{client: client}
}

// EnsureIndexes creates the unique per-user index
func (r *PreferencesRepository) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().SetName("user_idx").SetUnique(true),
		},
	}

	return r.client.CreateIndexes(ctx, preferencesCollection, indexes)
}

// GetByUserID retrieves preferences for a specific user. A user with no row
// has reminders off; mongo.ErrNoDocuments is surfaced so callers can treat
// absence as exclusion rather than defaulting.
func (r *PreferencesRepository) GetByUserID(ctx context.Context, userID string) (*domain.ReminderPreferences, error) {
	var prefs domain.ReminderPreferences
	err := r.client.Collection(preferencesCollection).FindOne(ctx, bson.M{"user_id": userID}).Decode(&prefs)
	if err != nil {
		return nil, err
	}

	return &prefs, nil
}

// Upsert creates or replaces a user's preferences
func (r *PreferencesRepository) Upsert(ctx context.Context, prefs *domain.ReminderPreferences) error {
	now := time.Now()
	prefs.UpdatedAt = now

	filter := bson.M{"user_id": prefs.UserID}
	update := bson.M{
		"$set": bson.M{
			"reminder_enabled":        prefs.ReminderEnabled,
			"reminder_before_minutes": prefs.ReminderBeforeMinutes,
			"notification_method":     prefs.NotificationMethod,
			"quiet_hours_start":       prefs.QuietHoursStart,
			"quiet_hours_end":         prefs.QuietHoursEnd,
			"updated_at":              now,
		},
		"$setOnInsert": bson.M{
			"user_id":    prefs.UserID,
			"created_at": now,
		},
	}
	opts := options.Update().SetUpsert(true)

	_, err := r.client.Collection(preferencesCollection).UpdateOne(ctx, filter, update, opts)
	return err
}

// DeleteByUserID removes a user's preferences
func (r *PreferencesRepository) DeleteByUserID(ctx context.Context, userID string) error {
	_, err := r.client.Collection(preferencesCollection).DeleteOne(ctx, bson.M{"user_id": userID})
	return err
}
