package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Photo represents a photo gallery entry
type Photo struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Caption   string             `bson:"caption,omitempty" json:"caption,omitempty"`
	Image     string             `bson:"image" json:"image"`
	Album     string             `bson:"album,omitempty" json:"album,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"created_at"`
}

// Video represents a video gallery entry, stored as an external embed URL
type Video struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title     string             `bson:"title" json:"title"`
	URL       string             `bson:"url" json:"url"`
	CreatedAt time.Time          `bson:"createdAt" json:"created_at"`
}
