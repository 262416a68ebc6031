package kernel

import (
	"fmt"

	"packing/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed indicates that a UUID was not initialized through one
// of the constructor functions. It is returned when validating a zero-value UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError(
	"UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID is a value object identifying entities and aggregates in the domain.
// It wraps github.com/google/uuid to keep the external type out of domain code.
// The zero value is invalid; use NewUUID, UUIDFromString, or UUIDFromBytes.
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a new random (version 4) identifier.
func NewUUID() UUID {
	return UUID{id: uuid.New()}
}

// UUIDFromString parses a UUID from its canonical string representation.
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return UUID{id: id}, nil
}

// UUIDFromBytes creates a UUID from a 16-byte slice, rejecting the nil UUID.
// Used when reconstructing identifiers from persistence.
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	newID := UUID{id: id}
	if err = newID.Validate(); err != nil {
		return UUID{}, err
	}
	return newID, nil
}

// String returns the canonical "xxxxxxxx-xxxx-..." representation.
func (u UUID) String() string {
	return u.id.String()
}

// Bytes returns the underlying uuid.UUID for persistence adapters.
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// MarshalText renders the UUID in its canonical form for JSON and text
// encodings.
func (u UUID) MarshalText() ([]byte, error) {
	return []byte(u.id.String()), nil
}

// UnmarshalText parses the canonical form. Validation against the nil UUID
// stays with the consuming constructors so decoding never silently drops a
// malformed identifier.
func (u *UUID) UnmarshalText(b []byte) error {
	parsed, err := UUIDFromString(string(b))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// IsEqual reports whether two UUIDs represent the same value.
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate returns ErrUUIDIsNotConstructed for the zero (nil) UUID.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
