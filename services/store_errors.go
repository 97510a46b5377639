package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a single-record fetch matches nothing.
var ErrNotFound = errors.New("record not found")

// ErrConflict is returned when an insert or update violates a unique constraint.
var ErrConflict = errors.New("record conflicts with an existing record")

// storeError maps a raw store failure onto the error taxonomy. Not-found
// and constraint violations keep their typed identity; everything else
// passes through as a store-unreachable style failure.
func storeError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return ErrConflict
	}
	return err
}

// IsNotFound reports whether err represents a missing record.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsConflict reports whether err represents a unique-constraint violation.
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}
