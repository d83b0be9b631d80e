// Package handler provides the HTTP handlers for the about feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Billie0903/vina-ET-training-center/internal/feature/about/domain"
	"github.com/Billie0903/vina-ET-training-center/internal/feature/about/domain/entity"
	"github.com/Billie0903/vina-ET-training-center/internal/feature/about/transport/http/dto"
	"github.com/Billie0903/vina-ET-training-center/internal/feature/about/usecase"
	jwtmw "github.com/Billie0903/vina-ET-training-center/internal/platform/jwt"
)

// AboutUsecase defines the usecase operations for about content.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type AboutUsecase interface {
	ListPublic(ctx context.Context) ([]entity.AboutSection, error)
	GetPublicSection(ctx context.Context, section string) (*entity.AboutSection, error)
	ListAdmin(ctx context.Context) ([]entity.AboutSection, error)
	GetAdminByID(ctx context.Context, id uint) (*entity.AboutSection, error)
	UpsertBySection(ctx context.Context, in usecase.UpsertInput, updatedBy uint) (*entity.AboutSection, error)
	UpdateByID(ctx context.Context, id uint, in usecase.UpsertInput, updatedBy uint) (*entity.AboutSection, error)
	DeleteByID(ctx context.Context, id uint) error
	BulkUpsert(ctx context.Context, ins []usecase.UpsertInput, updatedBy uint) ([]entity.AboutSection, error)
}

// AboutHandler handles HTTP requests for public and admin about content.
type AboutHandler struct {
	about AboutUsecase
}

// NewAboutHandler creates a new AboutHandler.
func NewAboutHandler(about AboutUsecase) *AboutHandler {
	return &AboutHandler{about: about}
}

func writeAboutError(c *gin.Context, err error, action string) {
	switch {
	case errors.Is(err, domain.ErrSectionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "About section not found"})
	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	default:
		slog.Error("about operation failed", "action", action, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error " + action, "error": err.Error()})
	}
}

func toInput(req dto.UpsertSectionReq) usecase.UpsertInput {
	return usecase.UpsertInput{
		Section:   req.Section,
		Title:     req.Title,
		Content:   req.Content,
		Data:      req.Data,
		Published: req.Published,
	}
}

// ListPublic handles GET /api/public/about, returning the published sections
// reshaped into a lookup keyed by section name.
func (h *AboutHandler) ListPublic(c *gin.Context) {
	sections, err := h.about.ListPublic(c.Request.Context())
	if err != nil {
		writeAboutError(c, err, "fetching about content")
		return
	}
	c.JSON(http.StatusOK, dto.NewContentMap(sections))
}

// GetSection handles GET /api/public/about/section/:section.
func (h *AboutHandler) GetSection(c *gin.Context) {
	section, err := h.about.GetPublicSection(c.Request.Context(), c.Param("section"))
	if err != nil {
		writeAboutError(c, err, "fetching about section")
		return
	}
	c.JSON(http.StatusOK, dto.NewPublicSection(section))
}

// ListAdmin handles GET /api/admin/about, returning every section including
// unpublished ones, ordered by section name.
func (h *AboutHandler) ListAdmin(c *gin.Context) {
	sections, err := h.about.ListAdmin(c.Request.Context())
	if err != nil {
		writeAboutError(c, err, "fetching about content")
		return
	}
	c.JSON(http.StatusOK, dto.NewAdminSections(sections))
}

// GetAdminByID handles GET /api/admin/about/section/:id for edit forms.
func (h *AboutHandler) GetAdminByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid section id"})
		return
	}
	section, err := h.about.GetAdminByID(c.Request.Context(), uint(id))
	if err != nil {
		writeAboutError(c, err, "fetching about section")
		return
	}
	c.JSON(http.StatusOK, dto.NewAdminSection(section))
}

// Upsert handles POST /api/admin/about/section: create-or-overwrite keyed by
// the section name in the body.
func (h *AboutHandler) Upsert(c *gin.Context) {
	var req dto.UpsertSectionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request", "error": err.Error()})
		return
	}

	updatedBy := c.GetUint(jwtmw.ContextUserID)
	section, err := h.about.UpsertBySection(c.Request.Context(), toInput(req), updatedBy)
	if err != nil {
		writeAboutError(c, err, "saving about section")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "About section saved successfully",
		"section": dto.NewAdminSection(section),
	})
}

// Update handles PUT /api/admin/about/section/:id.
func (h *AboutHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid section id"})
		return
	}

	var req dto.UpsertSectionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request", "error": err.Error()})
		return
	}

	updatedBy := c.GetUint(jwtmw.ContextUserID)
	section, err := h.about.UpdateByID(c.Request.Context(), uint(id), toInput(req), updatedBy)
	if err != nil {
		writeAboutError(c, err, "updating about section")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "About section updated successfully",
		"section": dto.NewAdminSection(section),
	})
}

// Delete handles DELETE /api/admin/about/section/:id.
func (h *AboutHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid section id"})
		return
	}
	if err := h.about.DeleteByID(c.Request.Context(), uint(id)); err != nil {
		writeAboutError(c, err, "deleting about section")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "About section deleted successfully"})
}

// BulkUpdate handles POST /api/admin/about/bulk-update. The body must carry a
// sections array; the batch persists atomically.
func (h *AboutHandler) BulkUpdate(c *gin.Context) {
	var req dto.BulkUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Sections == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Sections must be an array"})
		return
	}

	ins := make([]usecase.UpsertInput, 0, len(req.Sections))
	for _, r := range req.Sections {
		ins = append(ins, toInput(r))
	}

	updatedBy := c.GetUint(jwtmw.ContextUserID)
	sections, err := h.about.BulkUpsert(c.Request.Context(), ins, updatedBy)
	if err != nil {
		writeAboutError(c, err, "updating about sections")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "About sections updated successfully",
		"sections": dto.NewAdminSections(sections),
	})
}
