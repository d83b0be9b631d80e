// Package entity defines the domain entities for the about feature.
package entity

import (
	"time"

	authentity "github.com/Billie0903/vina-ET-training-center/internal/feature/auth/domain/entity"
)

// Sections is the fixed set of about-page section keys. Each key has at most
// one record.
var Sections = []string{
	"hero", "history", "mission", "numbers", "achievements",
	"vision", "goals", "values", "team", "stats",
}

// ValidSection reports whether s is one of the allowed section keys.
func ValidSection(s string) bool {
	for _, sec := range Sections {
		if s == sec {
			return true
		}
	}
	return false
}

// AboutSection is a keyed singleton of informational content: one record per
// section key.
type AboutSection struct {
	ID uint `gorm:"primaryKey"`

	// Section is the natural key; unique across all records.
	Section string `gorm:"uniqueIndex;size:64;not null"`

	Title   string `gorm:"size:255;not null"`
	Content string `gorm:"type:text;not null"`

	// Data is a free-form structured payload rendered by the section's
	// frontend component.
	Data map[string]any `gorm:"serializer:json"`

	LastUpdatedByID uint
	LastUpdatedBy   *authentity.User `gorm:"foreignKey:LastUpdatedByID"`

	Published bool `gorm:"not null;default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
