package services

import (
	"tillpoint/internal/domain"
	"tillpoint/internal/repos"

	"github.com/google/uuid"
)

type TenantService struct {
	Tenants *repos.TenantRepo
}

func NewTenantService(tenants *repos.TenantRepo) *TenantService {
	return &TenantService{Tenants: tenants}
}

func (s *TenantService) List() ([]domain.Tenant, error) {
	return s.Tenants.List()
}

func (s *TenantService) Create(name, plan string) (domain.Tenant, error) {
	if plan == "" {
		plan = "STARTER"
	}
	t := domain.Tenant{
		ID:     uuid.NewString(),
		Name:   name,
		Plan:   plan,
		Status: "ACTIVE",
	}
	if err := s.Tenants.Create(t); err != nil {
		return domain.Tenant{}, err
	}
	return t, nil
}

func (s *TenantService) Suspend(id string) error {
	return s.Tenants.SetStatus(id, "SUSPENDED")
}

func (s *TenantService) Activate(id string) error {
	return s.Tenants.SetStatus(id, "ACTIVE")
}
