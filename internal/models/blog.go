package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Blog represents a blog post
type Blog struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title      string             `bson:"title" json:"title"`
	Slug       string             `bson:"slug" json:"slug"`
	Content    string             `bson:"content" json:"content"`
	Excerpt    string             `bson:"excerpt,omitempty" json:"excerpt,omitempty"`
	Category   string             `bson:"category,omitempty" json:"category,omitempty"`
	Author     string             `bson:"author,omitempty" json:"author,omitempty"`
	CoverImage string             `bson:"coverImage,omitempty" json:"cover_image,omitempty"`
	Published  bool               `bson:"published" json:"published"`
	CreatedAt  time.Time          `bson:"createdAt" json:"created_at"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updated_at"`
}

// Comment represents a reader comment on a blog post.
// Comments start unapproved and only show publicly once approved.
type Comment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	BlogID    primitive.ObjectID `bson:"blogId" json:"blog_id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Body      string             `bson:"body" json:"body"`
	Approved  bool               `bson:"approved" json:"approved"`
	CreatedAt time.Time          `bson:"createdAt" json:"created_at"`
}

// Category is a blog taxonomy entry
type Category struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Slug      string             `bson:"slug" json:"slug"`
	CreatedAt time.Time          `bson:"createdAt" json:"created_at"`
}
