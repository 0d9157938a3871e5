package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	// ErrInvalidAttribute marks caller-supplied values that violate a
	// constraint. Not retryable; the caller must correct its input.
	ErrInvalidAttribute = errors.New("invalid attribute")

	// ErrNotFound is the expected outcome of looking up an unregistered
	// user, not a failure.
	ErrNotFound = errors.New("not found")

	// ErrStoreUnavailable marks connectivity or backend failures. The core
	// never retries; callers apply their own retry policy.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// InvalidAttributeError names the attribute that violated its constraint.
// errors.Is(err, ErrInvalidAttribute) matches it.
type InvalidAttributeError struct {
	Field  string
	Reason string
}

func (e *InvalidAttributeError) Error() string {
	return fmt.Sprintf("invalid attribute %q: %s", e.Field, e.Reason)
}

func (e *InvalidAttributeError) Is(target error) bool {
	return target == ErrInvalidAttribute
}

func invalidAttribute(field, reason string) error {
	return &InvalidAttributeError{Field: field, Reason: reason}
}

// storeError maps raw database errors onto the service taxonomy.
func storeError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}
