package repos

import (
	"tillpoint/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

func (r *ProductRepo) Get(id string) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `
	  SELECT
	    id, category_id, sku, name, description, price, active,
	    created_at, COALESCE(updated_at,'') AS updated_at
	  FROM products
	  WHERE id = ?
	`, id)
	return p, err
}

func (r *ProductRepo) ListByCategory(catID string, limit, offset int) ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `
	  SELECT
	    id, category_id, sku, name, description, price, active,
	    created_at, COALESCE(updated_at,'') AS updated_at
	  FROM products
	  WHERE category_id = ? AND active = 1
	  ORDER BY name
	  LIMIT ? OFFSET ?
	`, catID, limit, offset)
	return out, err
}

func (r *ProductRepo) Search(q, catID string, limit, offset int) ([]domain.Product, error) {
	where := `active = 1`
	args := []any{}
	if q != "" {
		where += ` AND (LOWER(name) LIKE ? OR LOWER(sku) LIKE ?)`
		args = append(args, "%"+q+"%", "%"+q+"%")
	}
	if catID != "" {
		where += ` AND category_id = ?`
		args = append(args, catID)
	}

	query := `
	  SELECT
	    id, category_id, sku, name, description, price, active,
	    created_at, COALESCE(updated_at,'') AS updated_at
	  FROM products
	  WHERE ` + where + `
	  ORDER BY name
	  LIMIT ? OFFSET ?`
	args = append(args, limit, offset)

	var out []domain.Product
	err := r.db.Select(&out, query, args...)
	return out, err
}

func (r *ProductRepo) Create(p domain.Product) error {
	_, err := r.db.Exec(`
	  INSERT INTO products(id, category_id, sku, name, description, price, active, created_at)
	  VALUES(?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
	`, p.ID, p.CategoryID, p.SKU, p.Name, p.Description, p.Price, p.Active)
	return err
}

func (r *ProductRepo) Update(p domain.Product) error {
	_, err := r.db.Exec(`
	  UPDATE products
	  SET category_id=?, sku=?, name=?, description=?, price=?, active=?, updated_at=CURRENT_TIMESTAMP
	  WHERE id=?
	`, p.CategoryID, p.SKU, p.Name, p.Description, p.Price, p.Active, p.ID)
	return err
}

// ByIDs fetches products for a set of ids; missing ids are simply absent from
// the result. Used by the promotion ref enrichment join.
func (r *ProductRepo) ByIDs(ids []string) (map[string]domain.Product, error) {
	out := make(map[string]domain.Product, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	query, args, err := sqlx.In(`
	  SELECT p.id, p.category_id, p.sku, p.name, p.description, p.price, p.active,
	         p.created_at, COALESCE(p.updated_at,'') AS updated_at
	  FROM products p
	  WHERE p.id IN (?)
	`, ids)
	if err != nil {
		return nil, err
	}
	var rows []domain.Product
	if err := r.db.Select(&rows, query, args...); err != nil {
		return nil, err
	}
	for _, p := range rows {
		out[p.ID] = p
	}
	return out, nil
}
