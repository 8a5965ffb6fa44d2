// Package guard provides the constructor guard pattern used by value objects,
// commands, and queries to detect zero-value instances that bypassed their
// designated constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is supplied and the object was not properly constructed.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its constructor.
// Embedding a guard in a struct lets Validate distinguish properly
// constructed instances from zero values.
//
// Example:
//
//	type ApplyDiscountCommand struct {
//	    orderID string
//	    guard   guard.ConstructorGuard
//	}
//
//	func NewApplyDiscountCommand(orderID string) (ApplyDiscountCommand, error) {
//	    // ... validation ...
//	    return ApplyDiscountCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c ApplyDiscountCommand) Validate() error {
//	    return c.guard.Validate(ErrApplyDiscountCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as
// properly constructed. Call it in the object's constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the enclosing object was created through its
// constructor. For zero-value objects it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
