// Package guard provides a defensive construction check for commands and
// other objects that must only be created through their constructor functions.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is supplied for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard distinguishes properly constructed objects from zero values.
// Embed it in a struct and set it via NewConstructorGuard inside the constructor;
// a zero-value struct will then fail Validate.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking the enclosing object as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for constructed objects. For zero-value guards it
// returns validationError, or ErrDefaultConstructorGuard when that is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
