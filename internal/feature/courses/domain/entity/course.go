// Package entity defines the domain entities for the courses feature.
package entity

import "time"

// DefaultImageURL is shown for courses created without a cover image.
const DefaultImageURL = "https://images.unsplash.com/photo-1522202176988-66273c2fd55f?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&auto=format&fit=crop&w=2071&q=80"

// CourseImage describes an uploaded image attached to a course.
type CourseImage struct {
	URL          string `json:"url"`
	Filename     string `json:"filename"`
	OriginalName string `json:"originalName"`
}

// Course represents a training course offered by the center.
type Course struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Title       string  `gorm:"size:255;not null" json:"title"`
	Description string  `gorm:"type:text;not null" json:"description"`
	Instructor  string  `gorm:"size:255;not null" json:"instructor"`
	Duration    string  `gorm:"size:64;not null" json:"duration"`
	Price       float64 `gorm:"not null" json:"price"`
	Category    string  `gorm:"size:64;not null" json:"category"`

	StartDate   time.Time `gorm:"not null" json:"startDate"`
	MaxStudents int       `gorm:"not null" json:"maxStudents"`

	ImageURL     string        `gorm:"size:512" json:"imageUrl"`
	Images       []CourseImage `gorm:"serializer:json" json:"images"`
	PreviewImage *CourseImage  `gorm:"serializer:json" json:"previewImage,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
