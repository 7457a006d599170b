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

// CommentRepository handles comment collection operations
type CommentRepository struct {
	coll *mongo.Collection
}

// NewCommentRepository creates a new comment repository
func NewCommentRepository(db *database.DB) *CommentRepository {
	return &CommentRepository{coll: db.Collection("comments")}
}

// Create inserts a new comment; comments start unapproved
func (r *CommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	comment.Approved = false
	comment.CreatedAt = time.Now()

	res, err := r.coll.InsertOne(ctx, comment)
	if err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	comment.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// ListByBlog returns comments for a blog, optionally only approved ones
func (r *CommentRepository) ListByBlog(ctx context.Context, blogID primitive.ObjectID, approvedOnly bool) ([]models.Comment, error) {
	filter := bson.M{"blogId": blogID}
	if approvedOnly {
		filter["approved"] = true
	}

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	var comments []models.Comment
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, fmt.Errorf("failed to decode comments: %w", err)
	}
	return comments, nil
}

// ListPending returns all comments awaiting moderation
func (r *CommentRepository) ListPending(ctx context.Context) ([]models.Comment, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"approved": false}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list pending comments: %w", err)
	}

	var comments []models.Comment
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, fmt.Errorf("failed to decode comments: %w", err)
	}
	return comments, nil
}

// Approve marks a comment as approved
func (r *CommentRepository) Approve(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.UpdateByID(ctx, id, bson.M{"$set": bson.M{"approved": true}})
	if err != nil {
		return fmt.Errorf("failed to approve comment: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a comment
func (r *CommentRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
