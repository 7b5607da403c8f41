package repos

import (
	"tillpoint/internal/domain"

	"github.com/jmoiron/sqlx"
)

type RegisterRepo struct{ db *sqlx.DB }

func NewRegisterRepo(db *sqlx.DB) *RegisterRepo { return &RegisterRepo{db: db} }

func (r *RegisterRepo) Open(id, registerCode, cashierID string, openingFloat float64) error {
	_, err := r.db.Exec(`
	  INSERT INTO register_sessions(id, register_code, cashier_id, opening_float, status, opened_at)
	  VALUES(?, ?, ?, ?, 'OPEN', CURRENT_TIMESTAMP)
	`, id, registerCode, cashierID, openingFloat)
	return err
}

// OpenSession returns the current OPEN session for a register, if any.
func (r *RegisterRepo) OpenSession(registerCode string) (domain.RegisterSession, error) {
	var s domain.RegisterSession
	err := r.db.Get(&s, `
	  SELECT id, register_code, cashier_id, opening_float, closing_amount, difference,
	         status, opened_at, COALESCE(closed_at,'') AS closed_at
	  FROM register_sessions
	  WHERE register_code = ? AND status = 'OPEN'
	`, registerCode)
	return s, err
}

func (r *RegisterRepo) Get(id string) (domain.RegisterSession, error) {
	var s domain.RegisterSession
	err := r.db.Get(&s, `
	  SELECT id, register_code, cashier_id, opening_float, closing_amount, difference,
	         status, opened_at, COALESCE(closed_at,'') AS closed_at
	  FROM register_sessions WHERE id = ?
	`, id)
	return s, err
}

func (r *RegisterRepo) ListLatest(limit int) ([]domain.RegisterSession, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []domain.RegisterSession
	err := r.db.Select(&out, `
	  SELECT id, register_code, cashier_id, opening_float, closing_amount, difference,
	         status, opened_at, COALESCE(closed_at,'') AS closed_at
	  FROM register_sessions
	  ORDER BY datetime(opened_at) DESC
	  LIMIT ?
	`, limit)
	return out, err
}

func (r *RegisterRepo) Close(id string, closingAmount, difference float64) error {
	_, err := r.db.Exec(`
	  UPDATE register_sessions
	  SET status='CLOSED', closing_amount=?, difference=?, closed_at=CURRENT_TIMESTAMP
	  WHERE id=? AND status='OPEN'
	`, closingAmount, difference, id)
	return err
}

func (r *RegisterRepo) AddMovement(m domain.CashMovement) error {
	_, err := r.db.Exec(`
	  INSERT INTO cash_movements(id, session_id, kind, amount, note, created_at)
	  VALUES(?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
	`, m.ID, m.SessionID, m.Kind, m.Amount, m.Note)
	return err
}

func (r *RegisterRepo) Movements(sessionID string) ([]domain.CashMovement, error) {
	var out []domain.CashMovement
	err := r.db.Select(&out, `
	  SELECT id, session_id, kind, amount, COALESCE(note,'') AS note, created_at
	  FROM cash_movements
	  WHERE session_id = ?
	  ORDER BY datetime(created_at)
	`, sessionID)
	return out, err
}

// CashBalance sums movements into the expected drawer delta: sales and
// deposits add, payouts subtract.
func (r *RegisterRepo) CashBalance(sessionID string) (float64, error) {
	var total float64
	err := r.db.Get(&total, `
	  SELECT COALESCE(SUM(CASE WHEN kind='PAYOUT' THEN -amount ELSE amount END), 0)
	  FROM cash_movements WHERE session_id = ?
	`, sessionID)
	return total, err
}
