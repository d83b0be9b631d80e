// Package handler provides the HTTP handlers for standalone image uploads.
package handler

import (
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Billie0903/vina-ET-training-center/internal/feature/upload/storage"
	"github.com/Billie0903/vina-ET-training-center/internal/shared/httputil"
)

// ImageStore abstracts the file storage for uploads.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (storage).
type ImageStore interface {
	Save(fh *multipart.FileHeader) (*storage.SavedFile, error)
	Delete(filename string) error
}

// UploadHandler handles standalone image upload and deletion.
type UploadHandler struct {
	store ImageStore
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(store ImageStore) *UploadHandler {
	return &UploadHandler{store: store}
}

// Upload handles POST /api/upload/image: a single multipart "image" field,
// capped at 5 MB and restricted to image MIME types.
func (h *UploadHandler) Upload(c *gin.Context) {
	fh, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No file uploaded"})
		return
	}

	saved, err := h.store.Save(fh)
	if err != nil {
		if errors.Is(err, storage.ErrNotAnImage) || errors.Is(err, storage.ErrFileTooLarge) {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		slog.Error("upload failed", "error", err, "filename", fh.Filename)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error uploading file"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "File uploaded successfully",
		"filename":     saved.Filename,
		"originalName": saved.OriginalName,
		"url":          httputil.BaseURL(c.Request) + saved.URL,
		"size":         saved.Size,
	})
}

// Delete handles DELETE /api/upload/image/:filename.
func (h *UploadHandler) Delete(c *gin.Context) {
	filename := c.Param("filename")
	if err := h.store.Delete(filename); err != nil {
		switch {
		case errors.Is(err, storage.ErrFileNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "File not found"})
		case errors.Is(err, storage.ErrInvalidFilename):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid filename"})
		default:
			slog.Error("file deletion failed", "error", err, "filename", filename)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting file"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "File deleted successfully"})
}
