package validation

import (
	"mime/multipart"

	"github.com/galleria-app/galleria/internal/apperr"
)

// ImageConstraints defines the accepted upload formats and size limit for
// character images.
type ImageConstraints struct {
	AllowedMimeTypes map[string]bool
	MaxSize          int64
}

// DefaultImageConstraints matches the gallery upload rules: JPG, PNG, WebP
// or GIF, at most 5 MiB.
var DefaultImageConstraints = ImageConstraints{
	AllowedMimeTypes: map[string]bool{
		"image/jpeg": true,
		"image/png":  true,
		"image/webp": true,
		"image/gif":  true,
	},
	MaxSize: 5 << 20, // 5MB
}

// ValidateImage checks a multipart upload against the image constraints
// before any storage call is made. The declared Content-Type is what gets
// validated; the remote store never sees a file that fails these checks.
func ValidateImage(header *multipart.FileHeader) error {
	return ValidateImageWith(header, DefaultImageConstraints)
}

func ValidateImageWith(header *multipart.FileHeader, constraints ImageConstraints) error {
	if header == nil {
		return apperr.Validation("No file provided")
	}

	contentType := header.Header.Get("Content-Type")
	if !constraints.AllowedMimeTypes[contentType] {
		return apperr.Validation("Invalid file type. Please upload a JPG, PNG, WebP, or GIF image.")
	}

	if header.Size > constraints.MaxSize {
		return apperr.Validation("File too large. Maximum size is 5MB.")
	}

	return nil
}
