package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/galleria-app/galleria/internal/model"
)

var (
	ErrCharacterNotFound = errors.New("character not found")
)

type CharacterRepository interface {
	CharactersWithCategory() ([]*model.CharacterWithCategory, error)
	Create(character *model.Character) error
	Update(id, name string, categoryID *string, newImageURL string) error
	Delete(id string) error
	ImageURLByID(id string) (string, error)
}

type characterRepository struct {
	db *sqlx.DB
}

func NewCharacterRepository(db *sqlx.DB) CharacterRepository {
	return &characterRepository{db: db}
}

// characterRow is the scan target for the joined list query. The category
// columns are nullable because the join is a LEFT JOIN and category_id may
// be NULL or dangling.
type characterRow struct {
	model.Character
	CategoryName      sql.NullString `db:"category_name"`
	CategoryCreatedAt sql.NullTime   `db:"category_created_at"`
}

func (r *characterRepository) CharactersWithCategory() ([]*model.CharacterWithCategory, error) {
	var rows []*characterRow
	query := `SELECT ch.id, ch.name, ch.image_url, ch.category_id, ch.created_at,
	                 c.name AS category_name, c.created_at AS category_created_at
	          FROM characters ch
	          LEFT JOIN categories c ON c.id = ch.category_id
	          ORDER BY ch.created_at DESC`

	err := r.db.Select(&rows, query)
	if err != nil {
		return nil, err
	}

	characters := make([]*model.CharacterWithCategory, 0, len(rows))
	for _, row := range rows {
		cwc := &model.CharacterWithCategory{Character: row.Character}
		if row.CategoryID != nil && row.CategoryName.Valid {
			cwc.Category = &model.Category{
				ID:        *row.CategoryID,
				Name:      row.CategoryName.String,
				CreatedAt: row.CategoryCreatedAt.Time,
			}
		}
		characters = append(characters, cwc)
	}

	return characters, nil
}

func (r *characterRepository) Create(character *model.Character) error {
	query := `INSERT INTO characters (id, name, image_url, category_id, created_at)
	          VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(query,
		character.ID,
		character.Name,
		character.ImageURL,
		character.CategoryID,
		character.CreatedAt,
	)

	return err
}

// Update overwrites name and category_id unconditionally. image_url is only
// touched when newImageURL is non-empty (a fresh upload happened beforehand).
func (r *characterRepository) Update(id, name string, categoryID *string, newImageURL string) error {
	var result sql.Result
	var err error

	if newImageURL != "" {
		query := `UPDATE characters SET name = $1, category_id = $2, image_url = $3 WHERE id = $4`
		result, err = r.db.Exec(query, name, categoryID, newImageURL, id)
	} else {
		query := `UPDATE characters SET name = $1, category_id = $2 WHERE id = $3`
		result, err = r.db.Exec(query, name, categoryID, id)
	}

	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrCharacterNotFound
	}

	return nil
}

func (r *characterRepository) Delete(id string) error {
	query := `DELETE FROM characters WHERE id = $1`
	result, err := r.db.Exec(query, id)

	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrCharacterNotFound
	}

	return nil
}

func (r *characterRepository) ImageURLByID(id string) (string, error) {
	var imageURL string
	query := `SELECT image_url FROM characters WHERE id = $1`

	err := r.db.Get(&imageURL, query, id)
	if err == sql.ErrNoRows {
		return "", ErrCharacterNotFound
	}

	return imageURL, err
}
