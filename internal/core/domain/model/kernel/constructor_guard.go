package kernel

import "errors"

// ErrDefaultConstructorGuard is returned by ConstructorGuard.Validate when
// no specific validation error is supplied for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures value objects and entities are only created
// through their designated constructor functions. Embedding a guard in a
// struct distinguishes properly constructed instances from zero values,
// so invariants established in the constructor cannot be bypassed.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks an object as properly constructed.
// Call it from the constructor of the guarded type.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the guarded object was built via its
// constructor. For zero-value instances it returns validationError,
// or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
