package services_test

import (
	"testing"

	"tillpoint/internal/promotions"
	"tillpoint/internal/repos"
	"tillpoint/internal/services"
)

func promoInput(name string, productIDs ...string) promotions.Input {
	return promotions.Input{
		Name:          name,
		Description:   "Seasonal price cut",
		DiscountType:  promotions.DiscountPercentage,
		DiscountValue: 10,
		StartDate:     "2025-06-01",
		EndDate:       "2025-08-31",
		ProductIDs:    productIDs,
	}
}

func newPromoService(t *testing.T) *services.PromotionService {
	t.Helper()
	db := seededDB(t)
	store := promotions.NewStore()
	return services.NewPromotionService(store, repos.NewProductRepo(db), repos.NewCategoryRepo(db))
}

func TestPromotionCreateJoinsCatalog(t *testing.T) {
	svc := newPromoService(t)

	p, err := svc.Create(promoInput("Summer Espresso", "espresso-001"))
	if err != nil {
		t.Fatal(err)
	}
	if len(p.ApplicableProducts) != 1 {
		t.Fatalf("want one ref, got %d", len(p.ApplicableProducts))
	}
	ref := p.ApplicableProducts[0]
	if ref.ID != "espresso-001" || ref.Name == "" || ref.Price <= 0 {
		t.Fatalf("ref not enriched: %+v", ref)
	}
	if ref.Category != "Beverages" {
		t.Fatalf("want Beverages, got %q", ref.Category)
	}
}

func TestPromotionUnknownProductStaysPlaceholder(t *testing.T) {
	svc := newPromoService(t)

	p, err := svc.Create(promoInput("Ghost Product", "no-such-product"))
	if err != nil {
		t.Fatal(err)
	}
	ref := p.ApplicableProducts[0]
	if ref.ID != "no-such-product" {
		t.Fatalf("placeholder id lost: %+v", ref)
	}
	if ref.Name != "" || ref.Category != "" {
		t.Fatalf("unknown product should stay id-only: %+v", ref)
	}
}

func TestPromotionUpdateReplacesRefs(t *testing.T) {
	svc := newPromoService(t)

	p, err := svc.Create(promoInput("Rotating", "espresso-001"))
	if err != nil {
		t.Fatal(err)
	}
	updated, err := svc.Update(p.ID, promoInput("Rotating", "croissant-001"))
	if err != nil {
		t.Fatal(err)
	}
	if len(updated.ApplicableProducts) != 1 || updated.ApplicableProducts[0].ID != "croissant-001" {
		t.Fatalf("refs not replaced: %+v", updated.ApplicableProducts)
	}
	if updated.ApplicableProducts[0].Category != "Bakery" {
		t.Fatalf("want Bakery, got %+v", updated.ApplicableProducts[0])
	}
}
