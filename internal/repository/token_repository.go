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

const tokensCollection = "fcm_tokens"

// TokenRepository handles FCM device token data operations
type TokenRepository struct {
	client *mongodb.MongoClient
}

// NewTokenRepository creates a new token repository
func NewTokenRepository(client *mongodb.MongoClient) *TokenRepository {
	return &TokenRepository{client: client}
}

// EnsureIndexes creates the token and per-user lookup indexes
func (r *TokenRepository) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "token", Value: 1}},
			Options: options.Index().SetName("token_idx").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().SetName("user_idx"),
		},
	}

	return r.client.CreateIndexes(ctx, tokensCollection, indexes)
}

// Register stores a device token for a user. Re-registering an existing
// token is a no-op apart from refreshing its owner.
func (r *TokenRepository) Register(ctx context.Context, token *domain.FcmToken) error {
	filter := bson.M{"token": token.Token}
	update := bson.M{
		"$set": bson.M{
			"user_id": token.UserID,
		},
		"$setOnInsert": bson.M{
			"token":      token.Token,
			"created_at": time.Now(),
		},
	}
	opts := options.Update().SetUpsert(true)

	_, err := r.client.Collection(tokensCollection).UpdateOne(ctx, filter, update, opts)
	return err
}

// FindByUserID returns all device tokens registered for a user
func (r *TokenRepository) FindByUserID(ctx context.Context, userID string) ([]*domain.FcmToken, error) {
	cursor, err := r.client.Collection(tokensCollection).Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var tokens []*domain.FcmToken
	if err = cursor.All(ctx, &tokens); err != nil {
		return nil, err
	}

	return tokens, nil
}

// DeleteByToken removes a device token. Used both for explicit
// unregistration and for pruning tokens the push provider reports invalid.
func (r *TokenRepository) DeleteByToken(ctx context.Context, token string) error {
	_, err := r.client.Collection(tokensCollection).DeleteOne(ctx, bson.M{"token": token})
	return err
}

// DeleteByUserID removes all of a user's device tokens
func (r *TokenRepository) DeleteByUserID(ctx context.Context, userID string) error {
	_, err := r.client.Collection(tokensCollection).DeleteMany(ctx, bson.M{"user_id": userID})
	return err
}
