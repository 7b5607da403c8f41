package services

import (
	"errors"

	"tillpoint/internal/domain"
	"tillpoint/internal/repos"

	"github.com/google/uuid"
)

var ErrInsufficientPoints = errors.New("not enough loyalty points")

type CustomerService struct {
	Customers *repos.CustomerRepo
}

func NewCustomerService(customers *repos.CustomerRepo) *CustomerService {
	return &CustomerService{Customers: customers}
}

func (s *CustomerService) Get(id string) (domain.Customer, error) {
	return s.Customers.Get(id)
}

func (s *CustomerService) List(page, pageSize int) ([]domain.Customer, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 25
	}
	return s.Customers.List(pageSize, (page-1)*pageSize)
}

func (s *CustomerService) Create(name, email, phone string) (domain.Customer, error) {
	c := domain.Customer{
		ID:    uuid.NewString(),
		Name:  name,
		Email: email,
		Phone: phone,
	}
	if err := s.Customers.Create(c); err != nil {
		return domain.Customer{}, err
	}
	return c, nil
}

// Accrue converts a purchase amount into loyalty points: one point per whole
// currency unit spent.
func (s *CustomerService) Accrue(customerID string, purchaseAmount float64) error {
	points := int(purchaseAmount)
	if points <= 0 {
		return nil
	}
	return s.Customers.AddPoints(customerID, points)
}

func (s *CustomerService) Redeem(customerID string, points int) error {
	if points <= 0 {
		return nil
	}
	if err := s.Customers.AddPoints(customerID, -points); err != nil {
		return ErrInsufficientPoints
	}
	return nil
}
