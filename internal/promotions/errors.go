package promotions

import "fmt"

// ValidationError reports a rejected Create/Update input. The store is left
// untouched when one is returned.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// NotFoundError reports a write aimed at an id that is not in the store.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string { return fmt.Sprintf("promotion %s not found", e.ID) }

func validationErr(reason string) error { return &ValidationError{Reason: reason} }
