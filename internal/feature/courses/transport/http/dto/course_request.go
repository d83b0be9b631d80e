// Package dto defines data transfer objects for the courses feature's HTTP
// transport layer.
package dto

import (
	"time"

	"github.com/Billie0903/vina-ET-training-center/internal/feature/courses/domain/entity"
)

// CourseReq represents the request body for course create and update.
type CourseReq struct {
	Title        string               `json:"title" binding:"required"`
	Description  string               `json:"description" binding:"required"`
	Instructor   string               `json:"instructor" binding:"required"`
	Duration     string               `json:"duration" binding:"required"`
	Price        float64              `json:"price" binding:"min=0"`
	Category     string               `json:"category" binding:"required"`
	StartDate    time.Time            `json:"startDate" binding:"required"`
	MaxStudents  int                  `json:"maxStudents" binding:"required,min=1"`
	ImageURL     string               `json:"imageUrl"`
	Images       []entity.CourseImage `json:"images"`
	PreviewImage *entity.CourseImage  `json:"previewImage"`
}

// ToEntity converts the request body into a course entity.
func (r CourseReq) ToEntity() *entity.Course {
	return &entity.Course{
		Title:        r.Title,
		Description:  r.Description,
		Instructor:   r.Instructor,
		Duration:     r.Duration,
		Price:        r.Price,
		Category:     r.Category,
		StartDate:    r.StartDate,
		MaxStudents:  r.MaxStudents,
		ImageURL:     r.ImageURL,
		Images:       r.Images,
		PreviewImage: r.PreviewImage,
	}
}
