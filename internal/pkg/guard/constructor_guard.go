// Package guard provides a defensive construction pattern for value objects
// and commands: a struct embedding a ConstructorGuard can detect whether it
// was created through its designated constructor or left as a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by ConstructorGuard.Validate when a
// nil validation error is passed, so validation always fails with a
// meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures objects are only created through their designated
// constructor functions. The guard keeps an internal flag that is only set
// by NewConstructorGuard; a zero-value struct fails Validate.
//
// Example:
//
//	type Command struct {
//	    value string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewCommand(value string) (Command, error) {
//	    if value == "" {
//	        return Command{}, errors.New("value is required")
//	    }
//	    return Command{value: value, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c Command) Validate() error {
//	    return c.guard.Validate(ErrCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as
// properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the enclosing object was created through its
// constructor, otherwise the provided error (or ErrDefaultConstructorGuard
// when err is nil).
func (g ConstructorGuard) Validate(err error) error {
	if g.isConstructed {
		return nil
	}
	if err == nil {
		return ErrDefaultConstructorGuard
	}
	return err
}
