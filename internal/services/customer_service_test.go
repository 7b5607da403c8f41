package services_test

import (
	"errors"
	"testing"

	"tillpoint/internal/repos"
	"tillpoint/internal/services"
)

func TestLoyaltyAccrueAndRedeem(t *testing.T) {
	svc := services.NewCustomerService(repos.NewCustomerRepo(seededDB(t)))

	c, err := svc.Create("Ana Ruiz", "ana@example.test", "")
	if err != nil {
		t.Fatal(err)
	}

	// One point per whole currency unit; cents are dropped.
	if err := svc.Accrue(c.ID, 34.90); err != nil {
		t.Fatal(err)
	}
	got, err := svc.Get(c.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.LoyaltyPoints != 34 {
		t.Fatalf("points = %d, want 34", got.LoyaltyPoints)
	}

	if err := svc.Redeem(c.ID, 30); err != nil {
		t.Fatal(err)
	}
	got, _ = svc.Get(c.ID)
	if got.LoyaltyPoints != 4 {
		t.Fatalf("points = %d, want 4", got.LoyaltyPoints)
	}

	// The balance never goes negative.
	if err := svc.Redeem(c.ID, 5); !errors.Is(err, services.ErrInsufficientPoints) {
		t.Fatalf("want ErrInsufficientPoints, got %v", err)
	}
	got, _ = svc.Get(c.ID)
	if got.LoyaltyPoints != 4 {
		t.Fatalf("failed redeem must not change balance, points = %d", got.LoyaltyPoints)
	}
}

func TestLoyaltySubUnitPurchaseAccruesNothing(t *testing.T) {
	svc := services.NewCustomerService(repos.NewCustomerRepo(seededDB(t)))

	// Seeded customer with a zero balance.
	if err := svc.Accrue("c-jonas", 0.80); err != nil {
		t.Fatal(err)
	}
	got, err := svc.Get("c-jonas")
	if err != nil {
		t.Fatal(err)
	}
	if got.LoyaltyPoints != 0 {
		t.Fatalf("points = %d, want 0", got.LoyaltyPoints)
	}
}
