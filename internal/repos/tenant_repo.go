package repos

import (
	"tillpoint/internal/domain"

	"github.com/jmoiron/sqlx"
)

type TenantRepo struct{ db *sqlx.DB }

func NewTenantRepo(db *sqlx.DB) *TenantRepo { return &TenantRepo{db: db} }

func (r *TenantRepo) List() ([]domain.Tenant, error) {
	var out []domain.Tenant
	err := r.db.Select(&out, `
	  SELECT id, name, plan, status, created_at, COALESCE(updated_at,'') AS updated_at
	  FROM tenants
	  ORDER BY name
	`)
	return out, err
}

func (r *TenantRepo) Get(id string) (domain.Tenant, error) {
	var t domain.Tenant
	err := r.db.Get(&t, `
	  SELECT id, name, plan, status, created_at, COALESCE(updated_at,'') AS updated_at
	  FROM tenants WHERE id = ?
	`, id)
	return t, err
}

func (r *TenantRepo) Create(t domain.Tenant) error {
	_, err := r.db.Exec(`
	  INSERT INTO tenants(id, name, plan, status, created_at)
	  VALUES(?, ?, ?, ?, CURRENT_TIMESTAMP)
	`, t.ID, t.Name, t.Plan, t.Status)
	return err
}

func (r *TenantRepo) SetStatus(id, status string) error {
	_, err := r.db.Exec(`UPDATE tenants SET status=?, updated_at=CURRENT_TIMESTAMP WHERE id=?`, status, id)
	return err
}
