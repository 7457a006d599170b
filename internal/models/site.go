package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Page represents a static content page addressed by slug
type Page struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title     string             `bson:"title" json:"title"`
	Slug      string             `bson:"slug" json:"slug"`
	Content   string             `bson:"content" json:"content"`
	CreatedAt time.Time          `bson:"createdAt" json:"created_at"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updated_at"`
}

// Banner represents a homepage banner slide
type Banner struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title     string             `bson:"title,omitempty" json:"title,omitempty"`
	Image     string             `bson:"image" json:"image"`
	Link      string             `bson:"link,omitempty" json:"link,omitempty"`
	Order     int                `bson:"order" json:"order"`
	Active    bool               `bson:"active" json:"active"`
	CreatedAt time.Time          `bson:"createdAt" json:"created_at"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updated_at"`
}

// MenuItem is a single entry within a menu; children form one nesting level
type MenuItem struct {
	Label    string     `bson:"label" json:"label"`
	URL      string     `bson:"url" json:"url"`
	Order    int        `bson:"order" json:"order"`
	Children []MenuItem `bson:"children,omitempty" json:"children,omitempty"`
}

// Menu represents a named navigation menu
type Menu struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Items     []MenuItem         `bson:"items" json:"items"`
	CreatedAt time.Time          `bson:"createdAt" json:"created_at"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updated_at"`
}

// Settings is the singleton site settings document
type Settings struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SiteName    string             `bson:"siteName" json:"site_name"`
	Tagline     string             `bson:"tagline,omitempty" json:"tagline,omitempty"`
	Logo        string             `bson:"logo,omitempty" json:"logo,omitempty"`
	Favicon     string             `bson:"favicon,omitempty" json:"favicon,omitempty"`
	Email       string             `bson:"email,omitempty" json:"email,omitempty"`
	Phone       string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Address     string             `bson:"address,omitempty" json:"address,omitempty"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updated_at"`
}

// FooterLink is a single link within a footer column
type FooterLink struct {
	Label string `bson:"label" json:"label"`
	URL   string `bson:"url" json:"url"`
}

// FooterColumn groups footer links under a heading
type FooterColumn struct {
	Heading string       `bson:"heading" json:"heading"`
	Links   []FooterLink `bson:"links" json:"links"`
}

// Footer is the singleton footer content document
type Footer struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	About     string             `bson:"about,omitempty" json:"about,omitempty"`
	Columns   []FooterColumn     `bson:"columns,omitempty" json:"columns,omitempty"`
	Copyright string             `bson:"copyright,omitempty" json:"copyright,omitempty"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updated_at"`
}

// Contact represents a contact form submission
type Contact struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Subject   string             `bson:"subject,omitempty" json:"subject,omitempty"`
	Message   string             `bson:"message" json:"message"`
	CreatedAt time.Time          `bson:"createdAt" json:"created_at"`
}
