// Package guard marks values that were built through their constructor so
// handlers can reject zero-value commands, queries and entities.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guard is a zero
// value and no specific error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in structs whose invariants are established by
// a constructor. A zero-value guard fails validation.
//
// Example:
//
//	type AssignRocketCommand struct {
//	    rocketName  kernel.Name
//	    missionName kernel.Name
//	    guard       guard.ConstructorGuard
//	}
//
//	func (c AssignRocketCommand) Validate() error {
//	    return c.guard.Validate(ErrAssignRocketCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that reports its owner as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is
// nil) if the owner was not built through its constructor.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
