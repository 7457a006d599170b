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

// MenuRepository handles menu collection operations
type MenuRepository struct {
	coll *mongo.Collection
}

// NewMenuRepository creates a new menu repository
func NewMenuRepository(db *database.DB) *MenuRepository {
	return &MenuRepository{coll: db.Collection("menus")}
}

// Create inserts a new menu
func (r *MenuRepository) Create(ctx context.Context, menu *models.Menu) error {
	now := time.Now()
	menu.CreatedAt = now
	menu.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, menu)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to create menu: %w", err)
	}
	menu.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// List returns all menus
func (r *MenuRepository) List(ctx context.Context) ([]models.Menu, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list menus: %w", err)
	}

	var menus []models.Menu
	if err := cursor.All(ctx, &menus); err != nil {
		return nil, fmt.Errorf("failed to decode menus: %w", err)
	}
	return menus, nil
}

// GetByName retrieves a menu by name
func (r *MenuRepository) GetByName(ctx context.Context, name string) (*models.Menu, error) {
	var menu models.Menu
	err := r.coll.FindOne(ctx, bson.M{"name": name}).Decode(&menu)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get menu: %w", err)
	}
	return &menu, nil
}

// Update replaces a menu's items and name
func (r *MenuRepository) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	fields["updatedAt"] = time.Now()

	res, err := r.coll.UpdateByID(ctx, id, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update menu: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a menu
func (r *MenuRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete menu: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
