package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/art-nursing/backend/internal/database"
	"github.com/art-nursing/backend/internal/models"
)

// SiteRepository handles the singleton settings and footer documents.
// Both collections hold at most one document, written with upsert.
type SiteRepository struct {
	settings *mongo.Collection
	footer   *mongo.Collection
}

// NewSiteRepository creates a new site repository
func NewSiteRepository(db *database.DB) *SiteRepository {
	return &SiteRepository{
		settings: db.Collection("settings"),
		footer:   db.Collection("footer"),
	}
}

// GetSettings returns the site settings, or an empty document if never saved
func (r *SiteRepository) GetSettings(ctx context.Context) (*models.Settings, error) {
	var s models.Settings
	err := r.settings.FindOne(ctx, bson.M{}).Decode(&s)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return &models.Settings{}, nil
		}
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return &s, nil
}

// UpdateSettings upserts the settings document with the given fields
func (r *SiteRepository) UpdateSettings(ctx context.Context, fields bson.M) error {
	fields["updatedAt"] = time.Now()

	_, err := r.settings.UpdateOne(ctx, bson.M{},
		bson.M{"$set": fields},
		options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to update settings: %w", err)
	}
	return nil
}

// GetFooter returns the footer content, or an empty document if never saved
func (r *SiteRepository) GetFooter(ctx context.Context) (*models.Footer, error) {
	var f models.Footer
	err := r.footer.FindOne(ctx, bson.M{}).Decode(&f)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return &models.Footer{}, nil
		}
		return nil, fmt.Errorf("failed to get footer: %w", err)
	}
	return &f, nil
}

// UpdateFooter upserts the footer document with the given fields
func (r *SiteRepository) UpdateFooter(ctx context.Context, fields bson.M) error {
	fields["updatedAt"] = time.Now()

	_, err := r.footer.UpdateOne(ctx, bson.M{},
		bson.M{"$set": fields},
		options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to update footer: %w", err)
	}
	return nil
}
