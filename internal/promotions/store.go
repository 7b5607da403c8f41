package promotions

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Store holds one process-wide promotion collection plus the carousel id list.
// It is a soft, per-process view: multiple instances behind a load balancer do
// not synchronize. Construct with NewStore and inject the handle; handlers run
// concurrently, hence the lock.
type Store struct {
	mu       sync.RWMutex
	items    []*Promotion
	carousel []string
}

func NewStore() *Store {
	return &Store{}
}

// Create validates in, assigns id/createdAt and appends the record.
// ApplicableProducts start as id-only placeholders; the catalog join fills the
// rest through EnrichProducts.
func (s *Store) Create(in Input) (*Promotion, error) {
	start, end, err := validateInput(in)
	if err != nil {
		return nil, err
	}

	refs := make([]ProductRef, 0, len(in.ProductIDs))
	for _, id := range in.ProductIDs {
		refs = append(refs, ProductRef{ID: id})
	}

	p := &Promotion{
		ID:                 uuid.NewString(),
		Name:               in.Name,
		Description:        in.Description,
		DiscountType:       in.DiscountType,
		DiscountValue:      in.DiscountValue,
		StartDate:          start,
		EndDate:            end,
		IsActive:           true,
		ApprovalStatus:     ApprovalPending,
		MinPurchaseAmount:  nonNegative(in.MinPurchaseAmount),
		MaxDiscountAmount:  nonNegative(in.MaxDiscountAmount),
		UsageLimit:         nonNegativeInt(in.UsageLimit),
		UsageCount:         0,
		ApplicableProducts: refs,
		CreatedAt:          time.Now().UTC(),
	}

	s.mu.Lock()
	s.items = append(s.items, p)
	s.mu.Unlock()
	return p.clone(), nil
}

// Update re-validates in and replaces every mutable field in place, keeping
// id, createdAt, isActive, approval state and usageCount.
func (s *Store) Update(id string, in Input) (*Promotion, error) {
	start, end, err := validateInput(in)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.find(id)
	if p == nil {
		return nil, &NotFoundError{ID: id}
	}

	refs := make([]ProductRef, 0, len(in.ProductIDs))
	for _, pid := range in.ProductIDs {
		refs = append(refs, ProductRef{ID: pid})
	}

	p.Name = in.Name
	p.Description = in.Description
	p.DiscountType = in.DiscountType
	p.DiscountValue = in.DiscountValue
	p.StartDate = start
	p.EndDate = end
	p.MinPurchaseAmount = nonNegative(in.MinPurchaseAmount)
	p.MaxDiscountAmount = nonNegative(in.MaxDiscountAmount)
	p.UsageLimit = nonNegativeInt(in.UsageLimit)
	p.ApplicableProducts = refs
	return p.clone(), nil
}

// Delete removes the record. A false return means nothing matched; that is not
// an error.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.items {
		if p.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

// ToggleActive sets isActive. Setting the current value again is a no-op.
func (s *Store) ToggleActive(id string, active bool) (*Promotion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.find(id)
	if p == nil {
		return nil, &NotFoundError{ID: id}
	}
	p.IsActive = active
	return p.clone(), nil
}

// SetApproval transitions approval state. Moving to approved stamps
// approvedBy/approvedAt (actor email preferred, id as fallback, "unknown" when
// no actor is supplied); any other status clears both fields.
func (s *Store) SetApproval(id string, status ApprovalStatus, comment string, actor *Actor) (*Promotion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.find(id)
	if p == nil {
		return nil, &NotFoundError{ID: id}
	}

	p.ApprovalStatus = status
	p.ApprovalComment = comment
	if status == ApprovalApproved {
		by := "unknown"
		if actor != nil {
			switch {
			case actor.Email != "":
				by = actor.Email
			case actor.ID != "":
				by = actor.ID
			}
		}
		at := time.Now().UTC()
		p.ApprovedBy = &by
		p.ApprovedAt = &at
	} else {
		p.ApprovedBy = nil
		p.ApprovedAt = nil
	}
	return p.clone(), nil
}

// List returns all promotions sorted by name, ascending, using locale-aware
// comparison. The only ordered read; everything else treats the collection as
// a set.
func (s *Store) List() []*Promotion {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortedByNameLocked()
}

// Get returns the record by id, or nil.
func (s *Store) Get(id string) *Promotion {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if p := s.find(id); p != nil {
		return p.clone()
	}
	return nil
}

// EnrichProducts replaces placeholder product refs with catalog details via
// lookup; ids the lookup does not recognize keep their placeholder form.
func (s *Store) EnrichProducts(id string, lookup func(productID string) (ProductRef, bool)) (*Promotion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.find(id)
	if p == nil {
		return nil, &NotFoundError{ID: id}
	}
	for i, ref := range p.ApplicableProducts {
		if full, ok := lookup(ref.ID); ok {
			full.ID = ref.ID
			p.ApplicableProducts[i] = full
		}
	}
	return p.clone(), nil
}

// Clear resets store and carousel. Test helper kept for surface parity.
func (s *Store) Clear() {
	s.mu.Lock()
	s.items = nil
	s.carousel = nil
	s.mu.Unlock()
}

func (s *Store) find(id string) *Promotion {
	for _, p := range s.items {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// sortedByNameLocked clones and name-sorts the collection. Callers must hold
// at least the read lock. A fresh collator per call: collators are stateful.
func (s *Store) sortedByNameLocked() []*Promotion {
	out := make([]*Promotion, 0, len(s.items))
	for _, p := range s.items {
		out = append(out, p.clone())
	}
	cl := collate.New(language.English, collate.IgnoreCase)
	sort.SliceStable(out, func(i, j int) bool {
		return cl.CompareString(out[i].Name, out[j].Name) < 0
	})
	return out
}
