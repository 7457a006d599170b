package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StaffMember represents a staff or teaching-faculty entry in the directory
type StaffMember struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Designation string             `bson:"designation" json:"designation"`
	Department  string             `bson:"department,omitempty" json:"department,omitempty"`
	Email       string             `bson:"email,omitempty" json:"email,omitempty"`
	Phone       string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Photo       string             `bson:"photo,omitempty" json:"photo,omitempty"`
	Teacher     bool               `bson:"teacher" json:"teacher"`
	Order       int                `bson:"order" json:"order"`
	CreatedAt   time.Time          `bson:"createdAt" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updated_at"`
}

// GoverningMember represents a governing body member
type GoverningMember struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Designation string             `bson:"designation" json:"designation"`
	Photo       string             `bson:"photo,omitempty" json:"photo,omitempty"`
	Order       int                `bson:"order" json:"order"`
	CreatedAt   time.Time          `bson:"createdAt" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updated_at"`
}

// Department is an academic department
type Department struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Slug      string             `bson:"slug" json:"slug"`
	CreatedAt time.Time          `bson:"createdAt" json:"created_at"`
}
