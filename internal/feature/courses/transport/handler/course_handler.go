// Package handler provides the HTTP handlers for the courses feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Billie0903/vina-ET-training-center/internal/feature/courses/domain"
	"github.com/Billie0903/vina-ET-training-center/internal/feature/courses/domain/entity"
	"github.com/Billie0903/vina-ET-training-center/internal/feature/courses/transport/http/dto"
)

// CourseUsecase defines the usecase operations for courses.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type CourseUsecase interface {
	List(ctx context.Context) ([]entity.Course, error)
	Get(ctx context.Context, id uint) (*entity.Course, error)
	Create(ctx context.Context, course *entity.Course) (*entity.Course, error)
	Update(ctx context.Context, id uint, course *entity.Course) (*entity.Course, error)
	Delete(ctx context.Context, id uint) error
}

// CourseHandler handles HTTP requests for course operations.
type CourseHandler struct {
	courses CourseUsecase
}

// NewCourseHandler creates a new CourseHandler.
func NewCourseHandler(courses CourseUsecase) *CourseHandler {
	return &CourseHandler{courses: courses}
}

func writeCourseError(c *gin.Context, err error, action string) {
	if errors.Is(err, domain.ErrCourseNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Course not found"})
		return
	}
	slog.Error("course operation failed", "action", action, "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Error " + action, "error": err.Error()})
}

func courseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid course id"})
		return 0, false
	}
	return uint(id), true
}

// List handles GET /api/courses.
func (h *CourseHandler) List(c *gin.Context) {
	courses, err := h.courses.List(c.Request.Context())
	if err != nil {
		writeCourseError(c, err, "fetching courses")
		return
	}
	c.JSON(http.StatusOK, courses)
}

// Get handles GET /api/courses/:id.
func (h *CourseHandler) Get(c *gin.Context) {
	id, ok := courseID(c)
	if !ok {
		return
	}
	course, err := h.courses.Get(c.Request.Context(), id)
	if err != nil {
		writeCourseError(c, err, "fetching course")
		return
	}
	c.JSON(http.StatusOK, course)
}

// Create handles POST /api/courses.
func (h *CourseHandler) Create(c *gin.Context) {
	var req dto.CourseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request", "error": err.Error()})
		return
	}
	course, err := h.courses.Create(c.Request.Context(), req.ToEntity())
	if err != nil {
		writeCourseError(c, err, "creating course")
		return
	}
	c.JSON(http.StatusCreated, course)
}

// Update handles PUT /api/courses/:id, replacing the stored course with the
// submitted document.
func (h *CourseHandler) Update(c *gin.Context) {
	id, ok := courseID(c)
	if !ok {
		return
	}
	var req dto.CourseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request", "error": err.Error()})
		return
	}
	course, err := h.courses.Update(c.Request.Context(), id, req.ToEntity())
	if err != nil {
		writeCourseError(c, err, "updating course")
		return
	}
	c.JSON(http.StatusOK, course)
}

// Delete handles DELETE /api/courses/:id.
func (h *CourseHandler) Delete(c *gin.Context) {
	id, ok := courseID(c)
	if !ok {
		return
	}
	if err := h.courses.Delete(c.Request.Context(), id); err != nil {
		writeCourseError(c, err, "deleting course")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Course deleted successfully"})
}
