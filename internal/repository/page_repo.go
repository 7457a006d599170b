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
	"github.com/art-nursing/backend/internal/slug"
)

// PageRepository handles page collection operations
type PageRepository struct {
	coll *mongo.Collection
}

// NewPageRepository creates a new page repository
func NewPageRepository(db *database.DB) *PageRepository {
	return &PageRepository{coll: db.Collection("pages")}
}

// Create inserts a new page; the slug is derived from the title unless set
func (r *PageRepository) Create(ctx context.Context, page *models.Page) error {
	now := time.Now()
	page.CreatedAt = now
	page.UpdatedAt = now
	if page.Slug == "" {
		page.Slug = slug.Make(page.Title)
	}

	res, err := r.coll.InsertOne(ctx, page)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to create page: %w", err)
	}
	page.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// List returns all pages
func (r *PageRepository) List(ctx context.Context) ([]models.Page, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "title", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list pages: %w", err)
	}

	var pages []models.Page
	if err := cursor.All(ctx, &pages); err != nil {
		return nil, fmt.Errorf("failed to decode pages: %w", err)
	}
	return pages, nil
}

// GetBySlug retrieves a page by slug
func (r *PageRepository) GetBySlug(ctx context.Context, s string) (*models.Page, error) {
	var page models.Page
	err := r.coll.FindOne(ctx, bson.M{"slug": s}).Decode(&page)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get page by slug: %w", err)
	}
	return &page, nil
}

// Update applies a partial update to a page
func (r *PageRepository) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	fields["updatedAt"] = time.Now()

	res, err := r.coll.UpdateByID(ctx, id, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update page: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a page
func (r *PageRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete page: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
