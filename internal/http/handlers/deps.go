package handlers

import (
	"tillpoint/internal/config"
	"tillpoint/internal/promotions"
	"tillpoint/internal/repos"
	"tillpoint/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	PromotionHandler *PromotionHandler
	ProductHandler   *ProductHandler
	CustomerHandler  *CustomerHandler
	RegisterHandler  *RegisterHandler
	AdminHandler     *AdminHandler
	TenantHandler    *TenantHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config, auth *services.AuthService, store *promotions.Store) *Deps {
	catRepo := repos.NewCategoryRepo(db)
	prodRepo := repos.NewProductRepo(db)
	custRepo := repos.NewCustomerRepo(db)
	regRepo := repos.NewRegisterRepo(db)
	tenantRepo := repos.NewTenantRepo(db)
	userRepo := repos.NewUserRepo(db)

	catalogSvc := services.NewCatalogService(catRepo, prodRepo)
	promoSvc := services.NewPromotionService(store, prodRepo, catRepo)
	custSvc := services.NewCustomerService(custRepo)
	regSvc := services.NewRegisterService(regRepo)
	tenantSvc := services.NewTenantService(tenantRepo)

	return &Deps{
		PromotionHandler: &PromotionHandler{Promos: promoSvc},
		ProductHandler:   &ProductHandler{Catalog: catalogSvc},
		CustomerHandler:  &CustomerHandler{Customers: custSvc},
		RegisterHandler:  &RegisterHandler{Registers: regSvc},
		AdminHandler:     &AdminHandler{Users: userRepo, Registers: regSvc, Promos: promoSvc},
		TenantHandler:    &TenantHandler{Tenants: tenantSvc},
	}
}
