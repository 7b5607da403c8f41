package promotions

import (
	"strings"
	"time"
)

type StatusFilter string

const (
	StatusAll      StatusFilter = "all"
	StatusActive   StatusFilter = "active"
	StatusInactive StatusFilter = "inactive"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

// Query is the strongly-typed filter/paginate request. Build it once at the
// boundary; the engine itself does no string coercion beyond trimming the
// search and category terms.
type Query struct {
	Page     int
	Limit    int
	Search   string
	Status   StatusFilter
	Category string
	DateFrom *time.Time
	DateTo   *time.Time
}

type Result struct {
	Items []*Promotion `json:"items"`
	Total int          `json:"total"`
	Page  int          `json:"page"`
	Limit int          `json:"limit"`
	Pages int          `json:"pages"`
}

// normalize applies defaults and bounds once, at the core boundary: limit is
// clamped to [1,100], page floored at 1, status defaulted to all.
func (q Query) normalize() Query {
	if q.Limit == 0 {
		q.Limit = defaultLimit
	}
	if q.Limit < 1 {
		q.Limit = 1
	}
	if q.Limit > maxLimit {
		q.Limit = maxLimit
	}
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Status == "" {
		q.Status = StatusAll
	}
	q.Search = strings.ToLower(strings.TrimSpace(q.Search))
	q.Category = strings.ToLower(strings.TrimSpace(q.Category))
	return q
}

// Query produces a deterministic filtered page over the name-sorted snapshot.
// It never fails: out-of-range pages clamp to the last page, unknown filters
// just match nothing.
func (s *Store) Query(q Query) Result {
	q = q.normalize()

	filtered := s.List()

	if q.Search != "" {
		filtered = keep(filtered, func(p *Promotion) bool {
			return strings.Contains(strings.ToLower(p.Name), q.Search) ||
				strings.Contains(strings.ToLower(p.ID), q.Search)
		})
	}

	if q.Status != StatusAll {
		wantActive := q.Status == StatusActive
		filtered = keep(filtered, func(p *Promotion) bool {
			return p.IsActive == wantActive
		})
	}

	if q.Category != "" {
		filtered = keep(filtered, func(p *Promotion) bool {
			for _, ref := range p.ApplicableProducts {
				if strings.ToLower(ref.Category) == q.Category {
					return true
				}
			}
			return false
		})
	}

	if q.DateFrom != nil || q.DateTo != nil {
		filtered = keep(filtered, func(p *Promotion) bool {
			return intersects(p.StartDate, p.EndDate, q.DateFrom, q.DateTo)
		})
	}

	total := len(filtered)
	pages := (total + q.Limit - 1) / q.Limit
	if pages < 1 {
		pages = 1
	}
	page := q.Page
	if page > pages {
		page = pages
	}

	lo := (page - 1) * q.Limit
	hi := lo + q.Limit
	if lo > total {
		lo = total
	}
	if hi > total {
		hi = total
	}

	return Result{
		Items: filtered[lo:hi],
		Total: total,
		Page:  page,
		Limit: q.Limit,
		Pages: pages,
	}
}

// intersects reports whether [start,end] overlaps the requested window.
// A missing bound leaves that side open.
func intersects(start, end time.Time, from, to *time.Time) bool {
	if from != nil && end.Before(*from) {
		return false
	}
	if to != nil && start.After(*to) {
		return false
	}
	return true
}

func keep(in []*Promotion, pred func(*Promotion) bool) []*Promotion {
	out := in[:0:0]
	for _, p := range in {
		if pred(p) {
			out = append(out, p)
		}
	}
	return out
}
