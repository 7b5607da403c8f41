package repos

import (
	"tillpoint/internal/domain"

	"github.com/jmoiron/sqlx"
)

type CategoryRepo struct{ db *sqlx.DB }

func NewCategoryRepo(db *sqlx.DB) *CategoryRepo { return &CategoryRepo{db: db} }

func (r *CategoryRepo) List() ([]domain.Category, error) {
	var out []domain.Category
	err := r.db.Select(&out, `
	  SELECT
	    id,
	    name,
	    created_at,
	    COALESCE(updated_at,'') AS updated_at
	  FROM categories
	  ORDER BY name
	`)
	return out, err
}

func (r *CategoryRepo) Get(id string) (domain.Category, error) {
	var c domain.Category
	err := r.db.Get(&c, `
	  SELECT id, name, created_at, COALESCE(updated_at,'') AS updated_at
	  FROM categories WHERE id = ?
	`, id)
	return c, err
}

// NameOf returns the category name for a product id, or "" when the join has
// nothing to offer.
func (r *CategoryRepo) NameOf(productID string) (string, error) {
	var name string
	err := r.db.Get(&name, `
	  SELECT c.name FROM categories c
	  JOIN products p ON p.category_id = c.id
	  WHERE p.id = ?
	`, productID)
	return name, err
}
