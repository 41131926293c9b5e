package validation_test

import (
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/galleria-app/galleria/internal/apperr"
	"github.com/galleria-app/galleria/internal/validation"
)

func fileHeader(name, contentType string, size int64) *multipart.FileHeader {
	header := textproto.MIMEHeader{}
	header.Set("Content-Type", contentType)
	return &multipart.FileHeader{
		Filename: name,
		Header:   header,
		Size:     size,
	}
}

func TestValidateImage(t *testing.T) {
	tests := []struct {
		name    string
		header  *multipart.FileHeader
		wantErr string
	}{
		{"jpeg_ok", fileHeader("hero.jpg", "image/jpeg", 2<<20), ""},
		{"png_ok", fileHeader("hero.png", "image/png", 1024), ""},
		{"webp_ok", fileHeader("hero.webp", "image/webp", 1024), ""},
		{"gif_ok", fileHeader("hero.gif", "image/gif", 1024), ""},
		{"exactly_five_mib_ok", fileHeader("big.jpg", "image/jpeg", 5<<20), ""},
		{"no_file", nil, "No file provided"},
		{"pdf_rejected", fileHeader("doc.pdf", "application/pdf", 1024), "Invalid file type. Please upload a JPG, PNG, WebP, or GIF image."},
		{"svg_rejected", fileHeader("icon.svg", "image/svg+xml", 1024), "Invalid file type. Please upload a JPG, PNG, WebP, or GIF image."},
		{"missing_type_rejected", fileHeader("hero.jpg", "", 1024), "Invalid file type. Please upload a JPG, PNG, WebP, or GIF image."},
		{"six_mb_rejected", fileHeader("big.png", "image/png", 6<<20), "File too large. Maximum size is 5MB."},
		{"one_byte_over_rejected", fileHeader("big.jpg", "image/jpeg", (5<<20)+1), "File too large. Maximum size is 5MB."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.ValidateImage(tt.header)

			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, apperr.IsValidation(err))
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}
