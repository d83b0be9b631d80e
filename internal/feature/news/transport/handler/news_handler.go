// Package handler provides the HTTP handlers for the news feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Billie0903/vina-ET-training-center/internal/feature/news/domain"
	"github.com/Billie0903/vina-ET-training-center/internal/feature/news/domain/entity"
	"github.com/Billie0903/vina-ET-training-center/internal/feature/news/transport/http/dto"
	"github.com/Billie0903/vina-ET-training-center/internal/feature/news/usecase"
	"github.com/Billie0903/vina-ET-training-center/internal/feature/upload/storage"
	jwtmw "github.com/Billie0903/vina-ET-training-center/internal/platform/jwt"
	"github.com/Billie0903/vina-ET-training-center/internal/shared/httputil"
)

// NewsUsecase defines the usecase operations for news articles.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type NewsUsecase interface {
	ListPublic(ctx context.Context, page, limit int, category string, featuredOnly bool) (*usecase.ListResult, error)
	GetPublicBySlug(ctx context.Context, slug string) (*entity.NewsArticle, error)
	ListAdmin(ctx context.Context, page, limit int, category string, published *bool) (*usecase.ListResult, error)
	GetAdminByID(ctx context.Context, id uint) (*entity.NewsArticle, error)
	Create(ctx context.Context, in usecase.Input, authorID uint, image *entity.Image) (*entity.NewsArticle, error)
	Update(ctx context.Context, id uint, in usecase.Input, image *entity.Image) (*entity.NewsArticle, error)
	Delete(ctx context.Context, id uint) error
}

// ImageStore saves uploaded article images.
type ImageStore interface {
	Save(fh *multipart.FileHeader) (*storage.SavedFile, error)
}

// NewsHandler handles HTTP requests for public and admin news operations.
type NewsHandler struct {
	news   NewsUsecase
	images ImageStore
}

// NewNewsHandler creates a new NewsHandler.
func NewNewsHandler(news NewsUsecase, images ImageStore) *NewsHandler {
	return &NewsHandler{news: news, images: images}
}

func writeNewsError(c *gin.Context, err error, action string) {
	switch {
	case errors.Is(err, domain.ErrNewsNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "News article not found"})
	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case errors.Is(err, storage.ErrNotAnImage), errors.Is(err, storage.ErrFileTooLarge):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	default:
		slog.Error("news operation failed", "action", action, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error " + action, "error": err.Error()})
	}
}

func pageParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	return page, limit
}

func listResponse(c *gin.Context, res *usecase.ListResult) dto.ListResponse {
	base := httputil.BaseURL(c.Request)
	items := make([]dto.NewsItem, 0, len(res.Items))
	for i := range res.Items {
		items = append(items, dto.NewNewsItem(&res.Items[i], base))
	}
	return dto.ListResponse{
		Items:       items,
		TotalPages:  res.TotalPages,
		CurrentPage: res.CurrentPage,
		Total:       res.Total,
	}
}

// ListPublic handles GET /api/public/news.
// Supports page, limit, category and featured=true query parameters.
func (h *NewsHandler) ListPublic(c *gin.Context) {
	page, limit := pageParams(c)
	res, err := h.news.ListPublic(c.Request.Context(), page, limit,
		c.Query("category"), c.Query("featured") == "true")
	if err != nil {
		writeNewsError(c, err, "fetching news")
		return
	}
	c.JSON(http.StatusOK, listResponse(c, res))
}

// GetBySlug handles GET /api/public/news/article/:slug.
// Fetching an article increments its view counter.
func (h *NewsHandler) GetBySlug(c *gin.Context) {
	article, err := h.news.GetPublicBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		writeNewsError(c, err, "fetching news article")
		return
	}
	c.JSON(http.StatusOK, dto.NewNewsItem(article, httputil.BaseURL(c.Request)))
}

// ListAdmin handles GET /api/admin/news.
// Unlike the public listing it includes unpublished articles; published=true
// or published=false narrows by exact publish state.
func (h *NewsHandler) ListAdmin(c *gin.Context) {
	page, limit := pageParams(c)
	var published *bool
	if v, ok := c.GetQuery("published"); ok {
		b := v == "true"
		published = &b
	}
	res, err := h.news.ListAdmin(c.Request.Context(), page, limit, c.Query("category"), published)
	if err != nil {
		writeNewsError(c, err, "fetching news")
		return
	}
	c.JSON(http.StatusOK, listResponse(c, res))
}

// GetAdminByID handles GET /api/admin/news/:id for edit forms.
func (h *NewsHandler) GetAdminByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid article id"})
		return
	}
	article, err := h.news.GetAdminByID(c.Request.Context(), uint(id))
	if err != nil {
		writeNewsError(c, err, "fetching news article")
		return
	}
	c.JSON(http.StatusOK, dto.NewNewsItem(article, httputil.BaseURL(c.Request)))
}

// formInput reads the multipart form fields shared by create and update.
// Booleans and tags arrive as strings in multipart bodies and are normalized
// here.
func formInput(c *gin.Context) usecase.Input {
	return usecase.Input{
		Title:     c.PostForm("title"),
		Content:   c.PostForm("content"),
		Excerpt:   c.PostForm("excerpt"),
		Category:  c.PostForm("category"),
		Featured:  dto.NormalizeBool(c.PostForm("featured")),
		Published: dto.NormalizeBool(c.PostForm("published")),
		Tags:      dto.NormalizeTags(c.PostForm("tags")),
	}
}

// saveImage stores the optional "image" form file and returns its descriptor,
// or nil when no file was supplied.
func (h *NewsHandler) saveImage(c *gin.Context) (*entity.Image, error) {
	fh, err := c.FormFile("image")
	if err != nil {
		return nil, nil // no file supplied
	}
	saved, err := h.images.Save(fh)
	if err != nil {
		return nil, err
	}
	return &entity.Image{
		URL:          saved.URL,
		Filename:     saved.Filename,
		OriginalName: saved.OriginalName,
	}, nil
}

// Create handles POST /api/admin/news (multipart form, optional image field).
func (h *NewsHandler) Create(c *gin.Context) {
	image, err := h.saveImage(c)
	if err != nil {
		writeNewsError(c, err, "creating news article")
		return
	}

	authorID := c.GetUint(jwtmw.ContextUserID)
	article, err := h.news.Create(c.Request.Context(), formInput(c), authorID, image)
	if err != nil {
		writeNewsError(c, err, "creating news article")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "News article created successfully",
		"news":    dto.NewNewsItem(article, httputil.BaseURL(c.Request)),
	})
}

// Update handles PUT /api/admin/news/:id (multipart form, optional image
// field). Every editable field is replaced with the submitted values.
func (h *NewsHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid article id"})
		return
	}

	image, err := h.saveImage(c)
	if err != nil {
		writeNewsError(c, err, "updating news article")
		return
	}

	article, err := h.news.Update(c.Request.Context(), uint(id), formInput(c), image)
	if err != nil {
		writeNewsError(c, err, "updating news article")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "News article updated successfully",
		"news":    dto.NewNewsItem(article, httputil.BaseURL(c.Request)),
	})
}

// Delete handles DELETE /api/admin/news/:id.
func (h *NewsHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid article id"})
		return
	}
	if err := h.news.Delete(c.Request.Context(), uint(id)); err != nil {
		writeNewsError(c, err, "deleting news article")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "News article deleted successfully"})
}
