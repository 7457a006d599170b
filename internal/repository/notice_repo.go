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

// NoticeRepository handles notice collection operations
type NoticeRepository struct {
	coll *mongo.Collection
}

// NewNoticeRepository creates a new notice repository
func NewNoticeRepository(db *database.DB) *NoticeRepository {
	return &NoticeRepository{coll: db.Collection("notices")}
}

// NoticeListResult contains a page of notices and the unpaged total
type NoticeListResult struct {
	Notices []models.Notice
	Total   int
}

// Create inserts a new notice
func (r *NoticeRepository) Create(ctx context.Context, notice *models.Notice) error {
	now := time.Now()
	notice.CreatedAt = now
	notice.UpdatedAt = now
	if notice.PublishedAt.IsZero() {
		notice.PublishedAt = now
	}

	res, err := r.coll.InsertOne(ctx, notice)
	if err != nil {
		return fmt.Errorf("failed to create notice: %w", err)
	}
	notice.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// List returns notices sorted pinned-first, newest-first
func (r *NoticeRepository) List(ctx context.Context, limit, offset int) (*NoticeListResult, error) {
	total, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to count notices: %w", err)
	}

	findOpts := options.Find().
		SetSort(bson.D{{Key: "pinned", Value: -1}, {Key: "publishedAt", Value: -1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to list notices: %w", err)
	}

	var notices []models.Notice
	if err := cursor.All(ctx, &notices); err != nil {
		return nil, fmt.Errorf("failed to decode notices: %w", err)
	}

	return &NoticeListResult{Notices: notices, Total: int(total)}, nil
}

// GetByID retrieves a notice by ID
func (r *NoticeRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Notice, error) {
	var notice models.Notice
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&notice)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get notice: %w", err)
	}
	return &notice, nil
}

// Update applies a partial update to a notice
func (r *NoticeRepository) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	fields["updatedAt"] = time.Now()

	res, err := r.coll.UpdateByID(ctx, id, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update notice: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a notice
func (r *NoticeRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete notice: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
