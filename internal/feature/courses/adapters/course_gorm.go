// Package adapters provides the repository implementations for the courses feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Billie0903/vina-ET-training-center/internal/feature/courses/domain"
	"github.com/Billie0903/vina-ET-training-center/internal/feature/courses/domain/entity"
	"github.com/Billie0903/vina-ET-training-center/internal/feature/courses/usecase"
)

// courseGorm is the gorm implementation of the CourseRepository interface.
type courseGorm struct {
	db *gorm.DB
}

// Compile-time check that courseGorm implements CourseRepository.
var _ usecase.CourseRepository = (*courseGorm)(nil)

// NewCourseGorm creates a new course repository backed by the given gorm.DB.
func NewCourseGorm(db *gorm.DB) *courseGorm {
	return &courseGorm{db: db}
}

// List returns all courses ordered by creation time, newest first.
func (r *courseGorm) List(ctx context.Context) ([]entity.Course, error) {
	courses := []entity.Course{}
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

// FindByID returns the course with the given ID, or domain.ErrCourseNotFound.
func (r *courseGorm) FindByID(ctx context.Context, id uint) (*entity.Course, error) {
	var course entity.Course
	if err := r.db.WithContext(ctx).First(&course, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCourseNotFound
		}
		return nil, err
	}
	return &course, nil
}

// Create inserts a new course.
func (r *courseGorm) Create(ctx context.Context, course *entity.Course) error {
	return r.db.WithContext(ctx).Create(course).Error
}

// Save writes every field of the course back to the store.
func (r *courseGorm) Save(ctx context.Context, course *entity.Course) error {
	return r.db.WithContext(ctx).Save(course).Error
}

// Delete removes the course with the given ID, or returns
// domain.ErrCourseNotFound when it does not exist.
func (r *courseGorm) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.Course{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrCourseNotFound
	}
	return nil
}
