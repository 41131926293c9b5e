package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/galleria-app/galleria/internal/model"
)

type CategoryRepository interface {
	Categories() ([]*model.Category, error)
	Create(category *model.Category) error
	Delete(id string) error
}

type categoryRepository struct {
	db *sqlx.DB
}

func NewCategoryRepository(db *sqlx.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Categories() ([]*model.Category, error) {
	var categories []*model.Category
	query := `SELECT * FROM categories ORDER BY name ASC`

	err := r.db.Select(&categories, query)
	if err != nil {
		return nil, err
	}

	return categories, nil
}

func (r *categoryRepository) Create(category *model.Category) error {
	query := `INSERT INTO categories (id, name, created_at) VALUES ($1, $2, $3)`

	_, err := r.db.Exec(query,
		category.ID,
		category.Name,
		category.CreatedAt,
	)

	return err
}

// Delete removes the category row. Deleting a missing id is a no-op:
// characters keep referencing categories loosely, so there is nothing to
// protect with a not-found error here.
func (r *categoryRepository) Delete(id string) error {
	query := `DELETE FROM categories WHERE id = $1`
	_, err := r.db.Exec(query, id)
	return err
}
