package typecheck

import (
	"fmt"
	"reflect"
)

// Constraint is the set of types one parameter may have.
//
// The zero value places no constraint on the parameter and is equal to Any.
// Constraints built with Of, OneOf or Is permit the listed types in order.
type Constraint struct {
	types []reflect.Type
	set   bool
}

// Any matches every argument, including nil.
var Any = Constraint{}

// Of builds a constraint permitting any of types. At least one type is
// required; an empty Of() is rejected when the Validator is built.
func Of(types ...reflect.Type) Constraint {
	return Constraint{types: append([]reflect.Type(nil), types...), set: true}
}

// OneOf builds a constraint from sample values, permitting the dynamic type
// of each of them. A nil sample yields a nil type, which Build rejects.
//
//	typecheck.OneOf("", 0) // string or int
func OneOf(samples ...any) Constraint {
	types := make([]reflect.Type, len(samples))
	for i, s := range samples {
		types[i] = reflect.TypeOf(s)
	}
	return Constraint{types: types, set: true}
}

// Is builds a single-type constraint for T. Interface types are kept as
// interfaces, so Is[error]() matches every error implementation.
func Is[T any]() Constraint {
	return Of(TypeOf[T]())
}

// TypeOf returns the reflect.Type of T, including interface types.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}

// IsAny reports whether c places no constraint.
func (c Constraint) IsAny() bool {
	return !c.set
}

// Types returns a copy of the permitted types; nil for Any.
func (c Constraint) Types() []reflect.Type {
	if !c.set {
		return nil
	}
	return append([]reflect.Type(nil), c.types...)
}

func (c Constraint) String() string {
	if !c.set {
		return "any"
	}
	return fmt.Sprint(c.types)
}

func (c Constraint) validate() error {
	if !c.set {
		return nil
	}
	if len(c.types) == 0 {
		return ErrEmptyConstraint
	}
	for _, t := range c.types {
		if t == nil {
			return ErrNilType
		}
	}
	return nil
}

// Allows reports whether value satisfies c. A nil permitted type, which
// Build rejects, matches nothing.
func (c Constraint) Allows(value any) bool {
	if !c.set {
		return true
	}

	actual := reflect.TypeOf(value)
	for _, t := range c.types {
		if matches(actual, t) {
			return true
		}
	}
	return false
}

// matches applies Go's own assignability notion without conversions: the
// dynamic type must be the permitted type, or implement it when the permitted
// type is an interface. Untyped nil matches only nilable kinds.
func matches(actual, permitted reflect.Type) bool {
	if permitted == nil {
		return false
	}
	if actual == nil {
		return nilable(permitted.Kind())
	}
	if permitted.Kind() == reflect.Interface {
		return actual.Implements(permitted)
	}
	return actual == permitted
}

func nilable(k reflect.Kind) bool {
	switch k {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return true
	default:
		return false
	}
}
