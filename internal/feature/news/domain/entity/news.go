// Package entity defines the domain entities for the news feature.
package entity

import (
	"time"

	authentity "github.com/Billie0903/vina-ET-training-center/internal/feature/auth/domain/entity"
)

// Categories is the fixed set of valid news categories.
var Categories = []string{
	"Announcement",
	"Achievement",
	"Partnership",
	"Award",
	"Course Update",
	"Student Success",
	"General",
}

// ValidCategory reports whether c is one of the allowed categories.
func ValidCategory(c string) bool {
	for _, cat := range Categories {
		if c == cat {
			return true
		}
	}
	return false
}

// Image describes an uploaded image attached to an article. The URL is
// stored relative to the server root and qualified with the request host at
// read time.
type Image struct {
	URL          string `json:"url"`
	Filename     string `json:"filename"`
	OriginalName string `json:"originalName"`
}

// NewsArticle represents a news article authored by an admin.
type NewsArticle struct {
	ID       uint   `gorm:"primaryKey"`
	Title    string `gorm:"size:255;not null"`
	Content  string `gorm:"type:text;not null"`
	Excerpt  string `gorm:"size:200;not null"`
	Category string `gorm:"size:64;not null;default:General"`

	AuthorID uint
	Author   *authentity.User `gorm:"foreignKey:AuthorID"`

	Featured  bool
	Published bool

	// PublishedAt is set exactly once, on the first transition of
	// Published to true, and never cleared afterwards.
	PublishedAt *time.Time

	Image *Image   `gorm:"serializer:json"`
	Tags  []string `gorm:"serializer:json"`

	Views int64 `gorm:"not null;default:0"`

	// Slug is derived from the title and unique across all articles.
	Slug string `gorm:"uniqueIndex;size:255;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
