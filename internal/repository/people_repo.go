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

// StaffRepository handles the staff directory collection
type StaffRepository struct {
	coll *mongo.Collection
}

// NewStaffRepository creates a new staff repository
func NewStaffRepository(db *database.DB) *StaffRepository {
	return &StaffRepository{coll: db.Collection("staff")}
}

// StaffListOptions filters the staff directory
type StaffListOptions struct {
	Department   string
	TeachersOnly bool
}

// Create inserts a new staff member
func (r *StaffRepository) Create(ctx context.Context, member *models.StaffMember) error {
	now := time.Now()
	member.CreatedAt = now
	member.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, member)
	if err != nil {
		return fmt.Errorf("failed to create staff member: %w", err)
	}
	member.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// List returns staff members in display order
func (r *StaffRepository) List(ctx context.Context, opts StaffListOptions) ([]models.StaffMember, error) {
	filter := bson.M{}
	if opts.Department != "" {
		filter["department"] = opts.Department
	}
	if opts.TeachersOnly {
		filter["teacher"] = true
	}

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "order", Value: 1}, {Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}

	var members []models.StaffMember
	if err := cursor.All(ctx, &members); err != nil {
		return nil, fmt.Errorf("failed to decode staff: %w", err)
	}
	return members, nil
}

// GetByID retrieves a staff member by ID
func (r *StaffRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.StaffMember, error) {
	var member models.StaffMember
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&member)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get staff member: %w", err)
	}
	return &member, nil
}

// Update applies a partial update to a staff member
func (r *StaffRepository) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	fields["updatedAt"] = time.Now()

	res, err := r.coll.UpdateByID(ctx, id, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update staff member: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a staff member
func (r *StaffRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete staff member: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// GoverningRepository handles the governing body collection
type GoverningRepository struct {
	coll *mongo.Collection
}

// NewGoverningRepository creates a new governing body repository
func NewGoverningRepository(db *database.DB) *GoverningRepository {
	return &GoverningRepository{coll: db.Collection("governing_body")}
}

// Create inserts a new governing body member
func (r *GoverningRepository) Create(ctx context.Context, member *models.GoverningMember) error {
	now := time.Now()
	member.CreatedAt = now
	member.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, member)
	if err != nil {
		return fmt.Errorf("failed to create governing member: %w", err)
	}
	member.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// List returns governing body members in display order
func (r *GoverningRepository) List(ctx context.Context) ([]models.GoverningMember, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "order", Value: 1}, {Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list governing body: %w", err)
	}

	var members []models.GoverningMember
	if err := cursor.All(ctx, &members); err != nil {
		return nil, fmt.Errorf("failed to decode governing body: %w", err)
	}
	return members, nil
}

// Update applies a partial update to a governing body member
func (r *GoverningRepository) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	fields["updatedAt"] = time.Now()

	res, err := r.coll.UpdateByID(ctx, id, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update governing member: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a governing body member
func (r *GoverningRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete governing member: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
