package pack

import (
	"fmt"

	"packing/internal/pkg/errs"
)

// Status represents the lifecycle state of a packing session.
//
// State transitions form a bounded cycle rather than a straight line:
//
//	InProgress ──> Complete
//	     ^             │
//	     └─── reopen ──┘
//
// Reopening restores mutability without altering boxes or items.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// InProgress is the working state; all mutations require it.
	InProgress

	// Complete means quantities reconciled and every box was weighed.
	// The only transition out is reopen.
	Complete
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		InProgress: "in_progress",
		Complete:   "complete",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		InProgress: "in_progress",
		Complete:   "complete",
	}
}

// StatusFromString converts a persisted status string back to a Status.
func StatusFromString(value string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == value {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid status", value))
}

// Validate checks that the Status is one of the valid values.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted form of the status ("in_progress", "complete").
// Implements fmt.Stringer and is safe on invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// ValidateMutable reports whether the session accepts mutations.
//
// Returns:
//   - nil when the status is InProgress
//   - ErrPackAlreadyComplete when the status is Complete
//   - a validation error for any other value
func (s Status) ValidateMutable() error {
	switch s {
	case InProgress:
		return nil
	case Complete:
		return ErrPackAlreadyComplete
	default:
		return s.Validate()
	}
}

// Complete transitions the status to Complete.
//
// Valid transitions:
//   - InProgress -> Complete
//
// Returns ErrPackAlreadyComplete when already complete.
func (s Status) Complete() (Status, error) {
	if err := s.ValidateMutable(); err != nil {
		return 0, err
	}
	return Complete, nil
}

// Reopen transitions the status back to InProgress.
//
// Valid transitions:
//   - Complete -> InProgress
//
// Returns ErrPackNotComplete when the session is not complete.
func (s Status) Reopen() (Status, error) {
	if s != Complete {
		return 0, ErrPackNotComplete
	}
	return InProgress, nil
}
