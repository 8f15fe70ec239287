package typecheck

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

var (
	// ErrInvalidArgumentType is matched by every *InvalidArgumentTypeError.
	ErrInvalidArgumentType = errors.New("invalid argument type")

	ErrEmptyConstraint = errors.New("constraint must permit at least one type")
	ErrNilType         = errors.New("constraint contains a nil type")
	ErrEmptyName       = errors.New("keyword name cannot be empty")
	ErrNotFunc         = errors.New("wrapped value is not a function")
	ErrKwargsPosition  = errors.New("kwargs parameter must be the last parameter")
	ErrNilPolicy       = errors.New("failure policy cannot be nil")
)

// InvalidArgumentTypeError is returned by the Raise policy for the first
// argument whose dynamic type is not permitted.
type InvalidArgumentTypeError struct {
	// Ref identifies the offending argument.
	Ref ArgRef
	// Value is the argument as it was passed.
	Value any
	// TypeName is the name of the argument's dynamic type ("nil" for untyped nil).
	TypeName string
	// Permitted lists the types the argument could have had.
	Permitted []reflect.Type
}

func newInvalidArgumentTypeError(value any, ref ArgRef, permitted []reflect.Type) *InvalidArgumentTypeError {
	return &InvalidArgumentTypeError{
		Ref:       ref,
		Value:     value,
		TypeName:  typeName(value),
		Permitted: permitted,
	}
}

func (e *InvalidArgumentTypeError) Error() string {
	var requirement string
	if len(e.Permitted) == 1 {
		requirement = "must be of type " + e.Permitted[0].String()
	} else {
		requirement = "must be of one type of " + strings.Join(typeNames(e.Permitted), ", ")
	}

	return fmt.Sprintf("Argument %s (%v: %s) %s.", e.Ref, e.Value, e.TypeName, requirement)
}

// Is reports whether target is ErrInvalidArgumentType.
func (e *InvalidArgumentTypeError) Is(target error) bool {
	return target == ErrInvalidArgumentType
}

func typeName(value any) string {
	if value == nil {
		return "nil"
	}
	return reflect.TypeOf(value).String()
}
