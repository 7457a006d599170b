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

// BannerRepository handles banner collection operations
type BannerRepository struct {
	coll *mongo.Collection
}

// NewBannerRepository creates a new banner repository
func NewBannerRepository(db *database.DB) *BannerRepository {
	return &BannerRepository{coll: db.Collection("banners")}
}

// Create inserts a new banner
func (r *BannerRepository) Create(ctx context.Context, banner *models.Banner) error {
	now := time.Now()
	banner.CreatedAt = now
	banner.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, banner)
	if err != nil {
		return fmt.Errorf("failed to create banner: %w", err)
	}
	banner.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// List returns banners in display order, optionally only active ones
func (r *BannerRepository) List(ctx context.Context, activeOnly bool) ([]models.Banner, error) {
	filter := bson.M{}
	if activeOnly {
		filter["active"] = true
	}

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "order", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list banners: %w", err)
	}

	var banners []models.Banner
	if err := cursor.All(ctx, &banners); err != nil {
		return nil, fmt.Errorf("failed to decode banners: %w", err)
	}
	return banners, nil
}

// GetByID retrieves a banner by ID
func (r *BannerRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Banner, error) {
	var banner models.Banner
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&banner)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get banner: %w", err)
	}
	return &banner, nil
}

// Update applies a partial update to a banner
func (r *BannerRepository) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	fields["updatedAt"] = time.Now()

	res, err := r.coll.UpdateByID(ctx, id, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update banner: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a banner
func (r *BannerRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete banner: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
