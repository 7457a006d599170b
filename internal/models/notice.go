package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notice represents an official announcement, optionally with an attached file
type Notice struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Body        string             `bson:"body,omitempty" json:"body,omitempty"`
	Attachment  string             `bson:"attachment,omitempty" json:"attachment,omitempty"`
	Pinned      bool               `bson:"pinned" json:"pinned"`
	PublishedAt time.Time          `bson:"publishedAt" json:"published_at"`
	CreatedAt   time.Time          `bson:"createdAt" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updated_at"`
}

// Result represents a published exam result sheet
type Result struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title     string             `bson:"title" json:"title"`
	Session   string             `bson:"session" json:"session"`
	Semester  string             `bson:"semester,omitempty" json:"semester,omitempty"`
	File      string             `bson:"file,omitempty" json:"file,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"created_at"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updated_at"`
}
