package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/art-nursing/backend/internal/database"
	"github.com/art-nursing/backend/internal/models"
)

// UserRepository handles user collection operations
type UserRepository struct {
	coll *mongo.Collection
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *database.DB) *UserRepository {
	return &UserRepository{coll: db.Collection("users")}
}

// Create inserts a new user
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	if user.Role == "" {
		user.Role = models.RoleUser
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	user.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return &user, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return &user, nil
}

// List returns all users sorted by creation time
func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	return users, nil
}

// UpdateRole changes a user's role
func (r *UserRepository) UpdateRole(ctx context.Context, id primitive.ObjectID, role string) error {
	res, err := r.coll.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"role":      role,
		"updatedAt": time.Now(),
	}})
	if err != nil {
		return fmt.Errorf("failed to update role: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateSubscription sets or clears the subscription expiry date
func (r *UserRepository) UpdateSubscription(ctx context.Context, id primitive.ObjectID, expiry *time.Time) error {
	update := bson.M{"$set": bson.M{"updatedAt": time.Now()}}
	if expiry != nil {
		update["$set"].(bson.M)["subscriptionExpiryDate"] = *expiry
	} else {
		update["$unset"] = bson.M{"subscriptionExpiryDate": ""}
	}

	res, err := r.coll.UpdateByID(ctx, id, update)
	if err != nil {
		return fmt.Errorf("failed to update subscription: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ConsumeFetch atomically increments the user's fetch counter if it is still
// below limit. Returns false without modifying the document once the cap is
// reached, so concurrent requests cannot overspend the quota.
func (r *UserRepository) ConsumeFetch(ctx context.Context, id primitive.ObjectID, limit int) (bool, error) {
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "fetchCount": bson.M{"$lt": limit}},
		bson.M{"$inc": bson.M{"fetchCount": 1}},
	).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, fmt.Errorf("failed to consume fetch: %w", err)
	}
	return true, nil
}

// ResetFetchCount zeroes the fetch counter, used when a subscription is granted
func (r *UserRepository) ResetFetchCount(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"fetchCount": 0,
		"updatedAt":  time.Now(),
	}})
	if err != nil {
		return fmt.Errorf("failed to reset fetch count: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a user
func (r *UserRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
