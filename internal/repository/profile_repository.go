package repository

import (
	"context"

	"github.com/faceglow/reminder-service/internal/domain"
	"github.com/faceglow/reminder-service/internal/shared/mongodb"
	"go.mongodb.org/mongo-driver/bson"
)

const profilesCollection = "profiles"

// ProfileRepository reads user profile records. Profiles are owned by the
// main application; this service only resolves email addresses and purges
// rows on account deletion.
type ProfileRepository struct {
	client *mongodb.MongoClient
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(client *mongodb.MongoClient) *ProfileRepository {
	return &ProfileRepository{client: client}
}

// GetByUserID retrieves a user's profile
func (r *ProfileRepository) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	var profile domain.Profile
	err := r.client.Collection(profilesCollection).FindOne(ctx, bson.M{"user_id": userID}).Decode(&profile)
	if err != nil {
		return nil, err
	}

	return &profile, nil
}

// DeleteByUserID removes a user's profile row
func (r *ProfileRepository) DeleteByUserID(ctx context.Context, userID string) error {
	_, err := r.client.Collection(profilesCollection).DeleteOne(ctx, bson.M{"user_id": userID})
	return err
}
