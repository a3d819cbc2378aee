package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrInvalidImageFile is returned when an upload fails the size, extension,
// or content-type checks
var ErrInvalidImageFile = errors.New("invalid image file")

// MaxImageSize caps uploads at 5MB
const MaxImageSize = 5 * 1024 * 1024

// imagesFolder is the fixed folder, relative to the storage root, where
// product images live; the returned URLs are derived from it.
const imagesFolder = "images/products"

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

var allowedContentTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// ImageStorage persists uploaded product images and serves back URL paths
type ImageStorage interface {
	Save(ctx context.Context, file io.Reader, fileName, contentType string) (string, error)
	Delete(imageURL string) bool
}

type diskImageStorage struct {
	rootDir string
	logger  *zap.Logger
}

// NewDiskImageStorage creates an ImageStorage backed by a local directory.
// rootDir is the public web root; images land under rootDir/images/products.
func NewDiskImageStorage(rootDir string, logger *zap.Logger) ImageStorage {
	return &diskImageStorage{rootDir: rootDir, logger: logger}
}

// Save validates and stores an uploaded image, returning its URL path.
// Files are named by a fresh UUID plus the original extension so uploads
// never collide or overwrite each other.
func (s *diskImageStorage) Save(ctx context.Context, file io.Reader, fileName, contentType string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	extension := strings.ToLower(filepath.Ext(fileName))
	if !allowedExtensions[extension] {
		return "", fmt.Errorf("%w: file type %q not allowed", ErrInvalidImageFile, extension)
	}

	if !allowedContentTypes[strings.ToLower(contentType)] {
		return "", fmt.Errorf("%w: content type %q not allowed", ErrInvalidImageFile, contentType)
	}

	// Read one byte past the cap so oversized uploads are detected without
	// buffering the whole stream.
	data, err := io.ReadAll(io.LimitReader(file, MaxImageSize+1))
	if err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}
	if len(data) > MaxImageSize {
		return "", fmt.Errorf("%w: file size exceeds maximum allowed size of %dMB", ErrInvalidImageFile, MaxImageSize/(1024*1024))
	}

	imagesPath := filepath.Join(s.rootDir, filepath.FromSlash(imagesFolder))
	if err := os.MkdirAll(imagesPath, 0o755); err != nil {
		return "", fmt.Errorf("failed to create images directory: %w", err)
	}

	uniqueFileName := uuid.New().String() + extension
	filePath := filepath.Join(imagesPath, uniqueFileName)

	if err := os.WriteFile(filePath, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write image: %w", err)
	}

	return "/" + imagesFolder + "/" + uniqueFileName, nil
}

// Delete removes a previously stored image by its URL path. Deletion is
// best-effort: failures are logged and reported as false, never raised,
// because the caller's dominant action must still proceed.
func (s *diskImageStorage) Delete(imageURL string) bool {
	if strings.TrimSpace(imageURL) == "" {
		return false
	}

	fileName := path.Base(imageURL)
	filePath := filepath.Join(s.rootDir, filepath.FromSlash(imagesFolder), fileName)

	if err := os.Remove(filePath); err != nil {
		s.logger.Debug("Failed to delete old image",
			zap.String("path", filePath),
			zap.Error(err),
		)
		return false
	}

	return true
}
