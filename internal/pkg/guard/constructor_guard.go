// Package guard protects domain objects, commands and queries from being used
// as zero values instead of being created through their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a nil error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a struct as built by its constructor.
//
// Embed it as a private field, set it with NewConstructorGuard inside the
// constructor and check it from the type's Validate method:
//
//	var ErrUpsertOrderSaleCommandIsNotConstructed = errors.New("...")
//
//	func (c UpsertOrderSaleCommand) Validate() error {
//	    return c.guard.Validate(ErrUpsertOrderSaleCommandIsNotConstructed)
//	}
//
// The zero value reports "not constructed". The guard is immutable and safe to copy.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. Otherwise it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
