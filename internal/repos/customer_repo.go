package repos

import (
	"fmt"

	"tillpoint/internal/domain"

	"github.com/jmoiron/sqlx"
)

type CustomerRepo struct{ db *sqlx.DB }

func NewCustomerRepo(db *sqlx.DB) *CustomerRepo { return &CustomerRepo{db: db} }

func (r *CustomerRepo) Get(id string) (domain.Customer, error) {
	var c domain.Customer
	err := r.db.Get(&c, `
	  SELECT id, name, email, COALESCE(phone,'') AS phone, loyalty_points,
	         created_at, COALESCE(updated_at,'') AS updated_at
	  FROM customers WHERE id = ?
	`, id)
	return c, err
}

func (r *CustomerRepo) List(limit, offset int) ([]domain.Customer, error) {
	var out []domain.Customer
	err := r.db.Select(&out, `
	  SELECT id, name, email, COALESCE(phone,'') AS phone, loyalty_points,
	         created_at, COALESCE(updated_at,'') AS updated_at
	  FROM customers
	  ORDER BY name
	  LIMIT ? OFFSET ?
	`, limit, offset)
	return out, err
}

func (r *CustomerRepo) Create(c domain.Customer) error {
	_, err := r.db.Exec(`
	  INSERT INTO customers(id, name, email, phone, loyalty_points, created_at)
	  VALUES(?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
	`, c.ID, c.Name, c.Email, c.Phone, c.LoyaltyPoints)
	return err
}

// AddPoints adjusts the balance by delta; the guard keeps redemptions from
// driving the balance negative.
func (r *CustomerRepo) AddPoints(id string, delta int) error {
	res, err := r.db.Exec(`
	  UPDATE customers
	  SET loyalty_points = loyalty_points + ?, updated_at = CURRENT_TIMESTAMP
	  WHERE id = ? AND loyalty_points + ? >= 0
	`, delta, id, delta)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("insufficient points for customer %s", id)
	}
	return nil
}
