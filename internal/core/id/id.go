// Package id provides UUIDv7 generation for internally minted GIDs.
// UUIDv7 is time-ordered, so listing by GID follows creation order.
package id

import (
	"github.com/google/uuid"
)

// ID is a type alias for UUID, used for all minted identifiers.
type ID = uuid.UUID

// New generates a new UUIDv7 (time-ordered UUID).
func New() ID {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to V4 if V7 fails (should never happen)
		return uuid.New()
	}
	return id
}

// NewGID returns a freshly minted GID in string form.
// Externally supplied numeric Longs are also valid GIDs; see core/gid.
func NewGID() string {
	return New().String()
}

// Parse converts string to ID with validation.
func Parse(s string) (ID, error) {
	return uuid.Parse(s)
}

// MustParse converts string to ID, panics on error.
// Use only for constants and tests.
func MustParse(s string) ID {
	return uuid.MustParse(s)
}
