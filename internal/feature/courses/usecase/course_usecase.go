// Package usecase implements the business logic for the courses feature.
package usecase

import (
	"context"

	"github.com/Billie0903/vina-ET-training-center/internal/feature/courses/domain/entity"
)

// CourseRepository abstracts the persistence layer for courses.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type CourseRepository interface {
	// List returns all courses, newest first.
	List(ctx context.Context) ([]entity.Course, error)
	FindByID(ctx context.Context, id uint) (*entity.Course, error)
	Create(ctx context.Context, course *entity.Course) error
	Save(ctx context.Context, course *entity.Course) error
	Delete(ctx context.Context, id uint) error
}

// CourseUsecase provides business logic for course operations.
type CourseUsecase struct {
	repo CourseRepository
}

// NewCourseUsecase creates a new CourseUsecase with the given repository.
func NewCourseUsecase(repo CourseRepository) *CourseUsecase {
	return &CourseUsecase{repo: repo}
}

// List returns all courses, newest first.
func (u *CourseUsecase) List(ctx context.Context) ([]entity.Course, error) {
	return u.repo.List(ctx)
}

// Get returns a course by ID.
func (u *CourseUsecase) Get(ctx context.Context, id uint) (*entity.Course, error) {
	return u.repo.FindByID(ctx, id)
}

// Create persists a new course, applying the stock cover image when none was
// supplied.
func (u *CourseUsecase) Create(ctx context.Context, course *entity.Course) (*entity.Course, error) {
	if course.ImageURL == "" {
		course.ImageURL = entity.DefaultImageURL
	}
	if course.Images == nil {
		course.Images = []entity.CourseImage{}
	}
	if err := u.repo.Create(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

// Update replaces the stored course document with the submitted one.
func (u *CourseUsecase) Update(ctx context.Context, id uint, course *entity.Course) (*entity.Course, error) {
	existing, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	course.ID = existing.ID
	course.CreatedAt = existing.CreatedAt
	if course.ImageURL == "" {
		course.ImageURL = entity.DefaultImageURL
	}
	if course.Images == nil {
		course.Images = []entity.CourseImage{}
	}

	if err := u.repo.Save(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

// Delete removes a course by ID.
func (u *CourseUsecase) Delete(ctx context.Context, id uint) error {
	return u.repo.Delete(ctx, id)
}
