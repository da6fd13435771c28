package service

import (
	"errors"
	"fmt"
	"strconv"

	"gorm.io/gorm"
)

// NotFoundError indicates an entity is absent or logically deleted. Both
// cases read the same from the outside because every lookup is already
// scoped to non-deleted rows.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s not found", e.Entity)
	}
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

// ConflictError indicates a uniqueness violation such as a duplicate team
// name or juror email.
type ConflictError struct {
	Entity string
	Field  string
	Value  string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s with %s %q already exists", e.Entity, e.Field, e.Value)
}

// InvalidInputError indicates a malformed identifier or payload rejected
// before any store access.
type InvalidInputError struct {
	Field  string
	Value  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// validateExists translates a store-level missing-row error into a
// NotFoundError carrying the human-readable entity label. It must only be
// applied to lookups that already filter out deleted rows.
func validateExists(err error, entity string, id uint) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &NotFoundError{Entity: entity, ID: strconv.FormatUint(uint64(id), 10)}
	}
	return err
}

// parseID coerces an externally-provided identifier into the numeric domain.
// A non-numeric value fails before any query is issued.
func parseID(field, raw string) (uint, error) {
	parsed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, &InvalidInputError{Field: field, Value: raw, Reason: "identifier must be numeric"}
	}
	return uint(parsed), nil
}

func isDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
