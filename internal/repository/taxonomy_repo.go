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
	"github.com/art-nursing/backend/internal/slug"
)

// TaxonomyRepository handles the category and department lookup collections
type TaxonomyRepository struct {
	categories  *mongo.Collection
	departments *mongo.Collection
}

// NewTaxonomyRepository creates a new taxonomy repository
func NewTaxonomyRepository(db *database.DB) *TaxonomyRepository {
	return &TaxonomyRepository{
		categories:  db.Collection("categories"),
		departments: db.Collection("departments"),
	}
}

// CreateCategory inserts a new category
func (r *TaxonomyRepository) CreateCategory(ctx context.Context, c *models.Category) error {
	c.Slug = slug.Make(c.Name)
	c.CreatedAt = time.Now()

	res, err := r.categories.InsertOne(ctx, c)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to create category: %w", err)
	}
	c.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// ListCategories returns all categories
func (r *TaxonomyRepository) ListCategories(ctx context.Context) ([]models.Category, error) {
	cursor, err := r.categories.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	var cats []models.Category
	if err := cursor.All(ctx, &cats); err != nil {
		return nil, fmt.Errorf("failed to decode categories: %w", err)
	}
	return cats, nil
}

// RenameCategory updates a category name and rebuilds its slug
func (r *TaxonomyRepository) RenameCategory(ctx context.Context, id primitive.ObjectID, name string) error {
	update := bson.M{"$set": bson.M{"name": name, "slug": slug.Make(name)}}
	res, err := r.categories.UpdateByID(ctx, id, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to rename category: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteCategory removes a category
func (r *TaxonomyRepository) DeleteCategory(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.categories.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// CreateDepartment inserts a new department
func (r *TaxonomyRepository) CreateDepartment(ctx context.Context, d *models.Department) error {
	d.Slug = slug.Make(d.Name)
	d.CreatedAt = time.Now()

	res, err := r.departments.InsertOne(ctx, d)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to create department: %w", err)
	}
	d.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// ListDepartments returns all departments
func (r *TaxonomyRepository) ListDepartments(ctx context.Context) ([]models.Department, error) {
	cursor, err := r.departments.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}

	var deps []models.Department
	if err := cursor.All(ctx, &deps); err != nil {
		return nil, fmt.Errorf("failed to decode departments: %w", err)
	}
	return deps, nil
}

// RenameDepartment updates a department name and rebuilds its slug
func (r *TaxonomyRepository) RenameDepartment(ctx context.Context, id primitive.ObjectID, name string) error {
	update := bson.M{"$set": bson.M{"name": name, "slug": slug.Make(name)}}
	res, err := r.departments.UpdateByID(ctx, id, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to rename department: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteDepartment removes a department
func (r *TaxonomyRepository) DeleteDepartment(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.departments.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete department: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
