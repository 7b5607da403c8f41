package promotions

// SetCarousel replaces the carousel with the normalized form of ids:
// duplicates removed keeping first occurrence, then ids missing from the store
// dropped. Returns the stored id list and the materialized promotions in order.
func (s *Store) SetCarousel(ids []string) ([]string, []*Promotion) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]bool, len(ids))
	normalized := make([]string, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if s.find(id) != nil {
			normalized = append(normalized, id)
		}
	}
	s.carousel = normalized

	return append([]string(nil), normalized...), s.carouselItemsLocked()
}

// CarouselIDs returns a copy of the current carousel id list.
func (s *Store) CarouselIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.carousel...)
}

// CarouselPromotions materializes the carousel against the current store;
// ids whose promotion has since been deleted are skipped silently.
func (s *Store) CarouselPromotions() []*Promotion {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.carouselItemsLocked()
}

func (s *Store) carouselItemsLocked() []*Promotion {
	out := make([]*Promotion, 0, len(s.carousel))
	for _, id := range s.carousel {
		if p := s.find(id); p != nil {
			out = append(out, p.clone())
		}
	}
	return out
}
