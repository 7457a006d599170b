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

// GalleryRepository handles the photo and video gallery collections
type GalleryRepository struct {
	photos *mongo.Collection
	videos *mongo.Collection
}

// NewGalleryRepository creates a new gallery repository
func NewGalleryRepository(db *database.DB) *GalleryRepository {
	return &GalleryRepository{
		photos: db.Collection("photo_gallery"),
		videos: db.Collection("video_gallery"),
	}
}

// CreatePhoto inserts a new photo
func (r *GalleryRepository) CreatePhoto(ctx context.Context, photo *models.Photo) error {
	photo.CreatedAt = time.Now()

	res, err := r.photos.InsertOne(ctx, photo)
	if err != nil {
		return fmt.Errorf("failed to create photo: %w", err)
	}
	photo.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// ListPhotos returns photos, newest first, optionally filtered by album
func (r *GalleryRepository) ListPhotos(ctx context.Context, album string) ([]models.Photo, error) {
	filter := bson.M{}
	if album != "" {
		filter["album"] = album
	}

	cursor, err := r.photos.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list photos: %w", err)
	}

	var photos []models.Photo
	if err := cursor.All(ctx, &photos); err != nil {
		return nil, fmt.Errorf("failed to decode photos: %w", err)
	}
	return photos, nil
}

// GetPhoto retrieves a photo by ID
func (r *GalleryRepository) GetPhoto(ctx context.Context, id primitive.ObjectID) (*models.Photo, error) {
	var photo models.Photo
	err := r.photos.FindOne(ctx, bson.M{"_id": id}).Decode(&photo)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get photo: %w", err)
	}
	return &photo, nil
}

// DeletePhoto removes a photo
func (r *GalleryRepository) DeletePhoto(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.photos.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete photo: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// CreateVideo inserts a new video
func (r *GalleryRepository) CreateVideo(ctx context.Context, video *models.Video) error {
	video.CreatedAt = time.Now()

	res, err := r.videos.InsertOne(ctx, video)
	if err != nil {
		return fmt.Errorf("failed to create video: %w", err)
	}
	video.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// ListVideos returns videos, newest first
func (r *GalleryRepository) ListVideos(ctx context.Context) ([]models.Video, error) {
	cursor, err := r.videos.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list videos: %w", err)
	}

	var videos []models.Video
	if err := cursor.All(ctx, &videos); err != nil {
		return nil, fmt.Errorf("failed to decode videos: %w", err)
	}
	return videos, nil
}

// DeleteVideo removes a video
func (r *GalleryRepository) DeleteVideo(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.videos.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete video: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
