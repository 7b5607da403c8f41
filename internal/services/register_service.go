package services

import (
	"database/sql"
	"errors"
	"fmt"

	"tillpoint/internal/domain"
	"tillpoint/internal/repos"

	"github.com/google/uuid"
)

var (
	ErrRegisterBusy   = errors.New("register already has an open session")
	ErrSessionClosed  = errors.New("register session is not open")
	ErrSessionMissing = errors.New("register session not found")
)

type RegisterService struct {
	Registers *repos.RegisterRepo
}

func NewRegisterService(registers *repos.RegisterRepo) *RegisterService {
	return &RegisterService{Registers: registers}
}

// Open starts a shift on a register. One open session per register at a time.
func (s *RegisterService) Open(registerCode, cashierID string, openingFloat float64) (domain.RegisterSession, error) {
	if _, err := s.Registers.OpenSession(registerCode); err == nil {
		return domain.RegisterSession{}, ErrRegisterBusy
	} else if err != sql.ErrNoRows {
		return domain.RegisterSession{}, err
	}

	id := uuid.NewString()
	if err := s.Registers.Open(id, registerCode, cashierID, openingFloat); err != nil {
		return domain.RegisterSession{}, err
	}
	return s.Registers.Get(id)
}

func (s *RegisterService) Record(sessionID, kind string, amount float64, note string) error {
	sess, err := s.Registers.Get(sessionID)
	if err != nil {
		if err == sql.ErrNoRows {
			return ErrSessionMissing
		}
		return err
	}
	if sess.Status != "OPEN" {
		return ErrSessionClosed
	}
	if amount <= 0 {
		return fmt.Errorf("movement amount must be positive, got %.2f", amount)
	}
	return s.Registers.AddMovement(domain.CashMovement{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Kind:      kind,
		Amount:    amount,
		Note:      note,
	})
}

// Close reconciles the drawer: expected = opening float + movement balance,
// difference = counted - expected.
func (s *RegisterService) Close(sessionID string, countedAmount float64) (domain.RegisterSession, error) {
	sess, err := s.Registers.Get(sessionID)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.RegisterSession{}, ErrSessionMissing
		}
		return domain.RegisterSession{}, err
	}
	if sess.Status != "OPEN" {
		return domain.RegisterSession{}, ErrSessionClosed
	}

	balance, err := s.Registers.CashBalance(sessionID)
	if err != nil {
		return domain.RegisterSession{}, err
	}
	expected := sess.OpeningFloat + balance
	diff := countedAmount - expected

	if err := s.Registers.Close(sessionID, countedAmount, diff); err != nil {
		return domain.RegisterSession{}, err
	}
	return s.Registers.Get(sessionID)
}

func (s *RegisterService) ListLatest(limit int) ([]domain.RegisterSession, error) {
	return s.Registers.ListLatest(limit)
}

func (s *RegisterService) Movements(sessionID string) ([]domain.CashMovement, error) {
	return s.Registers.Movements(sessionID)
}
