// Package storage persists uploaded images on the local filesystem.
package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxUploadSize caps uploaded files at 5 MB.
const MaxUploadSize = 5 << 20

var (
	// ErrFileNotFound indicates the named file does not exist on disk.
	ErrFileNotFound = errors.New("file not found")

	// ErrNotAnImage indicates the uploaded file is not an image MIME type.
	ErrNotAnImage = errors.New("only image files are allowed")

	// ErrFileTooLarge indicates the uploaded file exceeds MaxUploadSize.
	ErrFileTooLarge = errors.New("file exceeds the 5 MB size limit")

	// ErrInvalidFilename indicates a filename that is empty or attempts to
	// escape the uploads directory.
	ErrInvalidFilename = errors.New("invalid filename")
)

// SavedFile describes a stored upload. URL is relative to the server root;
// transport code qualifies it with the request host.
type SavedFile struct {
	Filename     string
	OriginalName string
	URL          string
	Size         int64
}

// DiskStorage writes uploads into a single directory served statically
// under /uploads.
type DiskStorage struct {
	dir string
}

// NewDiskStorage creates the uploads directory if needed and returns a
// DiskStorage rooted there.
func NewDiskStorage(dir string) (*DiskStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create uploads directory: %w", err)
	}
	return &DiskStorage{dir: dir}, nil
}

// Dir returns the uploads directory path.
func (s *DiskStorage) Dir() string {
	return s.dir
}

// Validate checks the size cap and image MIME type of an upload before it is
// written anywhere.
func Validate(fh *multipart.FileHeader) error {
	if fh.Size > MaxUploadSize {
		return ErrFileTooLarge
	}
	if !strings.HasPrefix(fh.Header.Get("Content-Type"), "image/") {
		return ErrNotAnImage
	}
	return nil
}

// Save validates and stores the upload under a unique generated name:
// image-<unix millis>-<uuid fragment><original extension>.
func (s *DiskStorage) Save(fh *multipart.FileHeader) (*SavedFile, error) {
	if err := Validate(fh); err != nil {
		return nil, err
	}

	ext := filepath.Ext(fh.Filename)
	name := fmt.Sprintf("image-%d-%s%s", time.Now().UnixMilli(), uuid.NewString()[:8], ext)

	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	size, err := io.Copy(dst, src)
	if err != nil {
		return nil, fmt.Errorf("failed to write file: %w", err)
	}

	return &SavedFile{
		Filename:     name,
		OriginalName: fh.Filename,
		URL:          "/uploads/" + name,
		Size:         size,
	}, nil
}

// Delete removes a stored file by name. Names containing path separators are
// rejected so callers cannot reach outside the uploads directory.
func (s *DiskStorage) Delete(filename string) error {
	if filename == "" || filename != filepath.Base(filename) {
		return ErrInvalidFilename
	}
	path := filepath.Join(s.dir, filename)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return ErrFileNotFound
	}
	return os.Remove(path)
}
