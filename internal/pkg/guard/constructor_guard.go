// Package guard provides a construction marker for domain objects.
// Embedding a ConstructorGuard in a struct makes it possible to tell a value
// built through its designated constructor apart from a zero value, so that
// validation can reject objects that bypassed the factory.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guarded object
// was not built through its constructor and no specific error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. The zero value
// fails validation; only NewConstructorGuard produces a passing guard.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking its holder as constructed.
// Call it inside the factory function of the guarded type.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate reports whether the guarded object went through its constructor.
// Returns validationError (or ErrDefaultConstructorGuard when nil) for a
// zero-value guard, nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
