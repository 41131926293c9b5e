package model

import (
	"time"
)

type Character struct {
	ID         string    `db:"id" json:"id"`
	Name       string    `db:"name" json:"name"`
	ImageURL   string    `db:"image_url" json:"image_url"`
	CategoryID *string   `db:"category_id" json:"category_id"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// CharacterWithCategory is the read-only composite produced by the joined
// list query: a character plus its resolved category, or nil when the
// character is uncategorized (or its category was deleted).
type CharacterWithCategory struct {
	Character
	Category *Category `json:"category"`
}
