package services

import (
	"tillpoint/internal/promotions"
	"tillpoint/internal/repos"
)

// PromotionService is the collaborator side of the promotions core: it owns
// the store handle and performs the catalog join that turns placeholder
// product refs into display-ready ones. The store itself never touches the
// database.
type PromotionService struct {
	Store *promotions.Store
	Prods *repos.ProductRepo
	Cats  *repos.CategoryRepo
}

func NewPromotionService(store *promotions.Store, prods *repos.ProductRepo, cats *repos.CategoryRepo) *PromotionService {
	return &PromotionService{Store: store, Prods: prods, Cats: cats}
}

func (s *PromotionService) Create(in promotions.Input) (*promotions.Promotion, error) {
	p, err := s.Store.Create(in)
	if err != nil {
		return nil, err
	}
	return s.enrich(p.ID, in.ProductIDs)
}

func (s *PromotionService) Update(id string, in promotions.Input) (*promotions.Promotion, error) {
	p, err := s.Store.Update(id, in)
	if err != nil {
		return nil, err
	}
	return s.enrich(p.ID, in.ProductIDs)
}

// enrich joins the placeholder refs against the catalog. A failed join is not
// fatal: the promotion stays valid with id-only refs.
func (s *PromotionService) enrich(id string, productIDs []string) (*promotions.Promotion, error) {
	catalog, err := s.Prods.ByIDs(productIDs)
	if err != nil {
		return s.Store.Get(id), nil
	}

	categories := make(map[string]string)
	if cats, err := s.Cats.List(); err == nil {
		for _, c := range cats {
			categories[c.ID] = c.Name
		}
	}

	return s.Store.EnrichProducts(id, func(productID string) (promotions.ProductRef, bool) {
		p, ok := catalog[productID]
		if !ok {
			return promotions.ProductRef{}, false
		}
		return promotions.ProductRef{
			Name:     p.Name,
			Price:    p.Price,
			Category: categories[p.CategoryID],
		}, true
	})
}
