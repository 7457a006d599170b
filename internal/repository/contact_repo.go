package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/art-nursing/backend/internal/database"
	"github.com/art-nursing/backend/internal/models"
)

// ContactRepository handles contact form submissions
type ContactRepository struct {
	collection *mongo.Collection
}

// NewContactRepository creates a new contact repository
func NewContactRepository(db *database.DB) *ContactRepository {
	return &ContactRepository{collection: db.Collection("contacts")}
}

// Create stores a new contact submission
func (r *ContactRepository) Create(ctx context.Context, c *models.Contact) error {
	c.CreatedAt = time.Now()

	res, err := r.collection.InsertOne(ctx, c)
	if err != nil {
		return fmt.Errorf("failed to create contact submission: %w", err)
	}
	c.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// List returns contact submissions, newest first
func (r *ContactRepository) List(ctx context.Context, limit, offset int) ([]*models.Contact, int64, error) {
	total, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count contact submissions: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list contact submissions: %w", err)
	}
	defer cursor.Close(ctx)

	var contacts []*models.Contact
	if err := cursor.All(ctx, &contacts); err != nil {
		return nil, 0, fmt.Errorf("failed to decode contact submissions: %w", err)
	}
	return contacts, total, nil
}

// Delete removes a contact submission
func (r *ContactRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete contact submission: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
