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

// BlogRepository handles blog collection operations
type BlogRepository struct {
	coll *mongo.Collection
}

// NewBlogRepository creates a new blog repository
func NewBlogRepository(db *database.DB) *BlogRepository {
	return &BlogRepository{coll: db.Collection("blogs")}
}

// BlogListOptions filters and pages a blog listing
type BlogListOptions struct {
	Limit         int
	Offset        int
	Category      string
	PublishedOnly bool
}

// BlogListResult contains a page of blogs and the unpaged total
type BlogListResult struct {
	Blogs []models.Blog
	Total int
}

// Create inserts a new blog. The slug is derived from the title; on collision
// a numeric suffix is appended until the unique index accepts it.
func (r *BlogRepository) Create(ctx context.Context, blog *models.Blog) error {
	now := time.Now()
	blog.CreatedAt = now
	blog.UpdatedAt = now

	base := slug.Make(blog.Title)
	blog.Slug = base

	for attempt := 0; ; attempt++ {
		res, err := r.coll.InsertOne(ctx, blog)
		if err == nil {
			blog.ID = res.InsertedID.(primitive.ObjectID)
			return nil
		}
		if !mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("failed to create blog: %w", err)
		}
		if attempt == 5 {
			return ErrDuplicate
		}
		blog.Slug = fmt.Sprintf("%s-%d", base, attempt+2)
	}
}

// List returns a filtered, paginated blog listing
func (r *BlogRepository) List(ctx context.Context, opts BlogListOptions) (*BlogListResult, error) {
	filter := bson.M{}
	if opts.PublishedOnly {
		filter["published"] = true
	}
	if opts.Category != "" {
		filter["category"] = opts.Category
	}

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to count blogs: %w", err)
	}

	findOpts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64(opts.Offset)).
		SetLimit(int64(opts.Limit))

	cursor, err := r.coll.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to list blogs: %w", err)
	}

	var blogs []models.Blog
	if err := cursor.All(ctx, &blogs); err != nil {
		return nil, fmt.Errorf("failed to decode blogs: %w", err)
	}

	return &BlogListResult{Blogs: blogs, Total: int(total)}, nil
}

// GetBySlug retrieves a blog by slug
func (r *BlogRepository) GetBySlug(ctx context.Context, s string) (*models.Blog, error) {
	var blog models.Blog
	err := r.coll.FindOne(ctx, bson.M{"slug": s}).Decode(&blog)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get blog by slug: %w", err)
	}
	return &blog, nil
}

// GetByID retrieves a blog by ID
func (r *BlogRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Blog, error) {
	var blog models.Blog
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&blog)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get blog by id: %w", err)
	}
	return &blog, nil
}

// Update applies a partial update to a blog
func (r *BlogRepository) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	fields["updatedAt"] = time.Now()

	res, err := r.coll.UpdateByID(ctx, id, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update blog: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a blog
func (r *BlogRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete blog: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
