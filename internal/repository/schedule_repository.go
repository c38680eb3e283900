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

const schedulesCollection = "practice_schedules"

// ScheduleRepository handles practice schedule data operations
type ScheduleRepository struct {
	client *mongodb.MongoClient
}

// NewScheduleRepository creates a new schedule repository
func NewScheduleRepository(client *mongodb.MongoClient) *ScheduleRepository {
	return &ScheduleRepository{client: client}
}

// EnsureIndexes creates the indexes backing the dispatcher's candidate query
func (r *ScheduleRepository) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "day_of_week", Value: 1},
				{Key: "is_active", Value: 1},
			},
			Options: options.Index().SetName("day_active_idx"),
		},
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().SetName("user_idx"),
		},
	}

	return r.client.CreateIndexes(ctx, schedulesCollection, indexes)
}

// FindActiveByDay finds active schedules for a day of week (0-6, Sunday=0).
// This is the dispatcher's cheap pre-filter; preference and quiet-hours
// logic only runs on the rows returned here.
func (r *ScheduleRepository) FindActiveByDay(ctx context.Context, dayOfWeek int) ([]*domain.PracticeSchedule, error) {
	filter := bson.M{
		"day_of_week": dayOfWeek,
		"is_active":   true,
	}

	cursor, err := r.client.Collection(schedulesCollection).Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var schedules []*domain.PracticeSchedule
	if err = cursor.All(ctx, &schedules); err != nil {
		return nil, err
	}

	return schedules, nil
}

// Create creates a new practice schedule
func (r *ScheduleRepository) Create(ctx context.Context, schedule *domain.PracticeSchedule) error {
	schedule.ID = primitive.NewObjectID()
	schedule.CreatedAt = time.Now()
	schedule.UpdatedAt = time.Now()

	_, err := r.client.Collection(schedulesCollection).InsertOne(ctx, schedule)
	return err
}

// FindByID finds a practice schedule by ID
func (r *ScheduleRepository) FindByID(ctx context.Context, id string) (*domain.PracticeSchedule, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var schedule domain.PracticeSchedule
	err = r.client.Collection(schedulesCollection).FindOne(ctx, bson.M{"_id": objectID}).Decode(&schedule)
	if err != nil {
		return nil, err
	}

	return &schedule, nil
}

// FindByUserID finds all schedules belonging to a user
func (r *ScheduleRepository) FindByUserID(ctx context.Context, userID string) ([]*domain.PracticeSchedule, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "day_of_week", Value: 1},
		{Key: "start_time", Value: 1},
	})

	cursor, err := r.client.Collection(schedulesCollection).Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var schedules []*domain.PracticeSchedule
	if err = cursor.All(ctx, &schedules); err != nil {
		return nil, err
	}

	return schedules, nil
}

// Update updates a practice schedule
func (r *ScheduleRepository) Update(ctx context.Context, schedule *domain.PracticeSchedule) error {
	schedule.UpdatedAt = time.Now()

	filter := bson.M{"_id": schedule.ID}
	update := bson.M{"$set": schedule}

	_, err := r.client.Collection(schedulesCollection).UpdateOne(ctx, filter, update)
	return err
}

// Delete deletes a practice schedule
func (r *ScheduleRepository) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	_, err = r.client.Collection(schedulesCollection).DeleteOne(ctx, bson.M{"_id": objectID})
	return err
}

// DeleteByUserID deletes all schedules belonging to a user
func (r *ScheduleRepository) DeleteByUserID(ctx context.Context, userID string) error {
	_, err := r.client.Collection(schedulesCollection).DeleteMany(ctx, bson.M{"user_id": userID})
	return err
}
