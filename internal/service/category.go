package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/galleria-app/galleria/internal/apperr"
	"github.com/galleria-app/galleria/internal/model"
	"github.com/galleria-app/galleria/internal/repository"
)

type CategoryService struct {
	repo repository.CategoryRepository
}

func NewCategoryService(repo repository.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) Categories() ([]*model.Category, error) {
	categories, err := s.repo.Categories()
	if err != nil {
		return nil, apperr.Remote("list categories", err)
	}
	return categories, nil
}

// Create inserts the category as given. Duplicate and empty names are
// deliberately accepted; whatever the store allows, the gallery allows.
func (s *CategoryService) Create(name string) (*model.Category, error) {
	category := &model.Category{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now(),
	}

	err := s.repo.Create(category)
	if err != nil {
		return nil, apperr.Remote("insert category", err)
	}

	return category, nil
}

// Delete removes the category. Characters referencing it are left alone;
// the schema sets their category_id to NULL.
func (s *CategoryService) Delete(id string) error {
	err := s.repo.Delete(id)
	if err != nil {
		return apperr.Remote("delete category", err)
	}
	return nil
}
