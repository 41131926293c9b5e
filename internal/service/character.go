package service

import (
	"log/slog"
	"mime/multipart"
	"time"

	"github.com/google/uuid"

	"github.com/galleria-app/galleria/internal/apperr"
	"github.com/galleria-app/galleria/internal/model"
	"github.com/galleria-app/galleria/internal/repository"
	"github.com/galleria-app/galleria/internal/validation"
)

type CharacterService struct {
	repo   repository.CharacterRepository
	images *ImageService
}

func NewCharacterService(repo repository.CharacterRepository, images *ImageService) *CharacterService {
	return &CharacterService{
		repo:   repo,
		images: images,
	}
}

func (s *CharacterService) Characters() ([]*model.CharacterWithCategory, error) {
	characters, err := s.repo.CharactersWithCategory()
	if err != nil {
		return nil, apperr.Remote("list characters", err)
	}
	return characters, nil
}

// Create uploads the image and then inserts the character row, strictly in
// that order: a row only ever references a blob that existed at insert time.
// If the insert fails the already-uploaded blob is not reclaimed.
func (s *CharacterService) Create(name, categoryID string, file multipart.File, header *multipart.FileHeader) (*model.Character, error) {
	err := validation.ValidateName(name)
	if err != nil {
		return nil, err
	}

	imageURL, err := s.images.Upload(file, header)
	if err != nil {
		return nil, err
	}

	character := &model.Character{
		ID:         uuid.New().String(),
		Name:       name,
		ImageURL:   imageURL,
		CategoryID: nullableID(categoryID),
		CreatedAt:  time.Now(),
	}

	err = s.repo.Create(character)
	if err != nil {
		return nil, apperr.Remote("insert character", err)
	}

	return character, nil
}

// Update overwrites name and category. The image is replaced only when a new
// file is supplied; the previous blob stays in the bucket either way.
func (s *CharacterService) Update(id, name, categoryID string, file multipart.File, header *multipart.FileHeader) error {
	err := validation.ValidateName(name)
	if err != nil {
		return err
	}

	newImageURL := ""
	if header != nil {
		newImageURL, err = s.images.Upload(file, header)
		if err != nil {
			return err
		}
	}

	err = s.repo.Update(id, name, nullableID(categoryID), newImageURL)
	if err != nil {
		return apperr.Remote("update character", err)
	}

	return nil
}

// Delete removes the character row and then makes a best-effort attempt to
// delete its blob. The pre-delete image_url read and the blob cleanup are
// both fire-and-forget: only a failed row deletion surfaces to the caller.
func (s *CharacterService) Delete(id string) error {
	imageURL, err := s.repo.ImageURLByID(id)
	if err != nil {
		slog.Warn("failed to read image url before delete", "error", err, "character_id", id)
		imageURL = ""
	}

	err = s.repo.Delete(id)
	if err != nil {
		return apperr.Remote("delete character", err)
	}

	if imageURL != "" {
		err = s.images.Delete(imageURL)
		if err != nil {
			slog.Warn("failed to delete character image", "error", err, "character_id", id, "image_url", imageURL)
		}
	}

	return nil
}

// nullableID maps an absent category selection to NULL.
func nullableID(id string) *string {
	if id == "" {
		return nil
	}
	return &id
}
