// Package guard provides ConstructorGuard, a marker embedded in commands,
// queries and entities to reject zero values that bypassed their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether its owner was built by a constructor.
// The zero value reports "not constructed".
//
// Example:
//
//	type SetPriceCommand struct {
//	    orderID kernel.UUID
//	    price   int64
//	    guard   guard.ConstructorGuard
//	}
//
//	func (c SetPriceCommand) Validate() error {
//	    return c.guard.Validate(ErrSetPriceCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when nil)
// if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
