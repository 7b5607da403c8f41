package promotions

import (
	"strings"
	"time"
)

// Accepted input date layouts; parsed values are normalized to UTC.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// validateInput gates Create and Update identically. Checks run in order and
// stop at the first failure, so the surfaced message is deterministic.
func validateInput(in Input) (start, end time.Time, err error) {
	if len(strings.TrimSpace(in.Name)) < 2 {
		return start, end, validationErr("name must be at least 2 characters")
	}
	if len(strings.TrimSpace(in.Description)) < 2 {
		return start, end, validationErr("description must be at least 2 characters")
	}
	if in.DiscountType != DiscountPercentage && in.DiscountType != DiscountFixed {
		return start, end, validationErr("discount type must be PERCENTAGE or FIXED_AMOUNT")
	}
	if in.DiscountValue < 0 {
		return start, end, validationErr("discount value must be zero or greater")
	}
	start, okStart := parseDate(in.StartDate)
	end, okEnd := parseDate(in.EndDate)
	if !okStart || !okEnd {
		return start, end, validationErr("start and end dates must be valid dates")
	}
	if end.Before(start) {
		return start, end, validationErr("end date must not be before start date")
	}
	return start, end, nil
}

// nonNegative coerces absent/invalid optional amounts to the 0 "no constraint"
// default without failing validation.
func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

func nonNegativeInt(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
