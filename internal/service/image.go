package service

import (
	"crypto/rand"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/galleria-app/galleria/internal/apperr"
	"github.com/galleria-app/galleria/internal/storage"
	"github.com/galleria-app/galleria/internal/validation"
)

const keyTokenLength = 9

const keyTokenAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

type ImageService struct {
	storage storage.Storage
}

func NewImageService(storage storage.Storage) *ImageService {
	return &ImageService{storage: storage}
}

// Upload validates the image and stores it under a collision-resistant key,
// returning the blob's public URL. Validation happens entirely before any
// storage call, so a rejected file never reaches the bucket.
func (s *ImageService) Upload(file multipart.File, header *multipart.FileHeader) (string, error) {
	if file == nil || header == nil {
		return "", apperr.Validation("No file provided")
	}

	err := validation.ValidateImage(header)
	if err != nil {
		return "", err
	}

	key := imageKey(header.Filename)

	err = s.storage.Save(key, file, header.Header.Get("Content-Type"))
	if err != nil {
		return "", apperr.Remote("upload image", err)
	}

	return s.storage.URL(key), nil
}

// Delete removes the blob referenced by imageURL. The key is the last path
// segment of the URL; the underlying store treats removing a missing key as
// success, so Delete is idempotent.
func (s *ImageService) Delete(imageURL string) error {
	key := imageURL[strings.LastIndex(imageURL, "/")+1:]
	if key == "" {
		return apperr.Validation("Invalid image URL")
	}

	err := s.storage.Delete(key)
	if err != nil {
		return apperr.Remote("delete image", err)
	}

	return nil
}

// imageKey builds a blob key of the form
// <millisecond-epoch>-<9-char token>.<original extension>.
func imageKey(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), randomToken(keyTokenLength), ext)
}

func randomToken(n int) string {
	b := make([]byte, n)
	// crypto/rand.Read does not fail on supported platforms
	_, _ = rand.Read(b)
	for i := range b {
		b[i] = keyTokenAlphabet[int(b[i])%len(keyTokenAlphabet)]
	}
	return string(b)
}
