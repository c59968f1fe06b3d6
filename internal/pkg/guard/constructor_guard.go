// Package guard provides ConstructorGuard, a marker embedded in commands, queries
// and aggregates so that their zero values can be told apart from instances built
// through a constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guarded value was not
// constructed and the caller did not supply a more specific error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether a value went through its constructor.
//
// Example:
//
//	var ErrDroneIsNotConstructed = errors.New("Drone must be created via NewDrone")
//
//	type Drone struct {
//	    serial string
//	    guard  guard.ConstructorGuard
//	}
//
//	func (d *Drone) Validate() error {
//	    return d.guard.Validate(ErrDroneIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that marks its owner as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero-value guard it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
