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

// ResultRepository handles result collection operations
type ResultRepository struct {
	coll *mongo.Collection
}

// NewResultRepository creates a new result repository
func NewResultRepository(db *database.DB) *ResultRepository {
	return &ResultRepository{coll: db.Collection("results")}
}

// Create inserts a new result
func (r *ResultRepository) Create(ctx context.Context, result *models.Result) error {
	now := time.Now()
	result.CreatedAt = now
	result.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, result)
	if err != nil {
		return fmt.Errorf("failed to create result: %w", err)
	}
	result.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// List returns results, optionally filtered by session and semester
func (r *ResultRepository) List(ctx context.Context, session, semester string) ([]models.Result, error) {
	filter := bson.M{}
	if session != "" {
		filter["session"] = session
	}
	if semester != "" {
		filter["semester"] = semester
	}

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}

	var results []models.Result
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("failed to decode results: %w", err)
	}
	return results, nil
}

// GetByID retrieves a result by ID
func (r *ResultRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Result, error) {
	var result models.Result
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get result: %w", err)
	}
	return &result, nil
}

// Update applies a partial update to a result
func (r *ResultRepository) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	fields["updatedAt"] = time.Now()

	res, err := r.coll.UpdateByID(ctx, id, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update result: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a result
func (r *ResultRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete result: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
