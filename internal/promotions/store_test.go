package promotions_test

import (
	"errors"
	"testing"

	"tillpoint/internal/promotions"
)

func validInput(name string) promotions.Input {
	return promotions.Input{
		Name:          name,
		Description:   "Seasonal discount",
		DiscountType:  promotions.DiscountPercentage,
		DiscountValue: 10,
		StartDate:     "2025-06-01",
		EndDate:       "2025-08-31",
		ProductIDs:    []string{"espresso-001"},
	}
}

func TestCreateDefaults(t *testing.T) {
	s := promotions.NewStore()
	p, err := s.Create(validInput("Promo Verano"))
	if err != nil {
		t.Fatal(err)
	}
	if p.ID == "" {
		t.Fatal("expected assigned id")
	}
	if !p.IsActive {
		t.Fatal("new promotion should be active")
	}
	if p.ApprovalStatus != promotions.ApprovalPending {
		t.Fatalf("expected pending approval, got %s", p.ApprovalStatus)
	}
	if p.UsageCount != 0 {
		t.Fatalf("expected zero usage, got %d", p.UsageCount)
	}
	if len(p.ApplicableProducts) != 1 || p.ApplicableProducts[0].ID != "espresso-001" {
		t.Fatalf("expected placeholder product ref, got %+v", p.ApplicableProducts)
	}
	if p.ApplicableProducts[0].Name != "" || p.ApplicableProducts[0].Category != "" {
		t.Fatal("create must not enrich product refs")
	}
}

func TestValidationOrderAndMessages(t *testing.T) {
	s := promotions.NewStore()

	cases := []struct {
		mutate func(*promotions.Input)
		want   string
	}{
		{func(in *promotions.Input) { in.Name = " x " }, "name must be at least 2 characters"},
		{func(in *promotions.Input) { in.Description = "" }, "description must be at least 2 characters"},
		{func(in *promotions.Input) { in.DiscountType = "BOGO" }, "discount type must be PERCENTAGE or FIXED_AMOUNT"},
		{func(in *promotions.Input) { in.DiscountValue = -1 }, "discount value must be zero or greater"},
		{func(in *promotions.Input) { in.StartDate = "not-a-date" }, "start and end dates must be valid dates"},
		{func(in *promotions.Input) { in.StartDate, in.EndDate = "2025-09-01", "2025-06-01" }, "end date must not be before start date"},
	}
	for _, tc := range cases {
		in := validInput("Promo")
		tc.mutate(&in)
		_, err := s.Create(in)
		var verr *promotions.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if verr.Reason != tc.want {
			t.Fatalf("want %q, got %q", tc.want, verr.Reason)
		}
	}
	if len(s.List()) != 0 {
		t.Fatal("rejected inputs must not mutate the store")
	}
}

// Any input accepted by Create must be re-accepted unchanged by Update.
func TestCreateUpdateRoundTrip(t *testing.T) {
	s := promotions.NewStore()
	in := validInput("Promo Estable")
	p, err := s.Create(in)
	if err != nil {
		t.Fatal(err)
	}
	upd, err := s.Update(p.ID, in)
	if err != nil {
		t.Fatalf("round-trip update rejected: %v", err)
	}
	if upd.ID != p.ID || !upd.CreatedAt.Equal(p.CreatedAt) {
		t.Fatal("update must preserve id and createdAt")
	}
	if upd.IsActive != p.IsActive || upd.ApprovalStatus != p.ApprovalStatus || upd.UsageCount != p.UsageCount {
		t.Fatal("update must preserve activation, approval and usage state")
	}
}

func TestUpdateNotFound(t *testing.T) {
	s := promotions.NewStore()
	_, err := s.Update("missing", validInput("Promo"))
	var nf *promotions.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestDeleteSignalsAbsenceWithoutError(t *testing.T) {
	s := promotions.NewStore()
	p, _ := s.Create(validInput("Promo"))

	if !s.Delete(p.ID) {
		t.Fatal("expected delete to report removal")
	}
	if s.Delete(p.ID) {
		t.Fatal("second delete should report nothing removed")
	}
}

func TestToggleActiveIdempotent(t *testing.T) {
	s := promotions.NewStore()
	p, _ := s.Create(validInput("Promo"))

	for i := 0; i < 2; i++ {
		got, err := s.ToggleActive(p.ID, false)
		if err != nil {
			t.Fatal(err)
		}
		if got.IsActive {
			t.Fatal("expected inactive")
		}
	}
	if _, err := s.ToggleActive("missing", true); err == nil {
		t.Fatal("expected NotFoundError for missing id")
	}
}

func TestApprovalStampAndClear(t *testing.T) {
	s := promotions.NewStore()
	p, _ := s.Create(validInput("Promo"))

	actor := &promotions.Actor{ID: "u-1", Email: "manager@tillpoint.test"}
	got, err := s.SetApproval(p.ID, promotions.ApprovalApproved, "looks good", actor)
	if err != nil {
		t.Fatal(err)
	}
	if got.ApprovedBy == nil || *got.ApprovedBy != "manager@tillpoint.test" {
		t.Fatalf("expected actor email, got %v", got.ApprovedBy)
	}
	if got.ApprovedAt == nil {
		t.Fatal("expected approvedAt to be stamped")
	}
	if got.ApprovalComment != "looks good" {
		t.Fatalf("unexpected comment %q", got.ApprovalComment)
	}

	// Email absent falls back to id, no actor falls back to "unknown".
	got, _ = s.SetApproval(p.ID, promotions.ApprovalApproved, "", &promotions.Actor{ID: "u-1"})
	if *got.ApprovedBy != "u-1" {
		t.Fatalf("expected id fallback, got %q", *got.ApprovedBy)
	}
	got, _ = s.SetApproval(p.ID, promotions.ApprovalApproved, "", nil)
	if *got.ApprovedBy != "unknown" {
		t.Fatalf("expected unknown fallback, got %q", *got.ApprovedBy)
	}

	// Any non-approved status clears both fields.
	got, _ = s.SetApproval(p.ID, promotions.ApprovalRejected, "too generous", nil)
	if got.ApprovedBy != nil || got.ApprovedAt != nil {
		t.Fatal("rejection must clear approvedBy/approvedAt")
	}
}

func TestListSortedByName(t *testing.T) {
	s := promotions.NewStore()
	for _, name := range []string{"zeta", "Alpha", "beta"} {
		if _, err := s.Create(validInput(name)); err != nil {
			t.Fatal(err)
		}
	}
	got := s.List()
	if len(got) != 3 {
		t.Fatalf("expected 3, got %d", len(got))
	}
	want := []string{"Alpha", "beta", "zeta"}
	for i, p := range got {
		if p.Name != want[i] {
			t.Fatalf("position %d: want %q, got %q", i, want[i], p.Name)
		}
	}
}

func TestReturnedRecordsAreCopies(t *testing.T) {
	s := promotions.NewStore()
	p, _ := s.Create(validInput("Promo"))

	p.Name = "mutated"
	p.ApplicableProducts[0].Category = "mutated"

	fresh := s.Get(p.ID)
	if fresh.Name != "Promo" || fresh.ApplicableProducts[0].Category != "" {
		t.Fatal("callers must not be able to mutate store internals")
	}
}

func TestEnrichProducts(t *testing.T) {
	s := promotions.NewStore()
	in := validInput("Promo")
	in.ProductIDs = []string{"espresso-001", "ghost-product"}
	p, _ := s.Create(in)

	catalog := map[string]promotions.ProductRef{
		"espresso-001": {Name: "Espresso", Price: 2.5, Category: "beverages"},
	}
	got, err := s.EnrichProducts(p.ID, func(id string) (promotions.ProductRef, bool) {
		ref, ok := catalog[id]
		return ref, ok
	})
	if err != nil {
		t.Fatal(err)
	}
	if got.ApplicableProducts[0].Category != "beverages" || got.ApplicableProducts[0].ID != "espresso-001" {
		t.Fatalf("expected enriched ref, got %+v", got.ApplicableProducts[0])
	}
	if got.ApplicableProducts[1].ID != "ghost-product" || got.ApplicableProducts[1].Name != "" {
		t.Fatal("unknown ids keep their placeholder form")
	}
}
