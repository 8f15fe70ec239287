package typecheck

import (
	"fmt"
	"reflect"
)

// Kwargs carries keyword arguments into a function wrapped by WrapFunc. It
// must be the function's last parameter.
type Kwargs map[string]any

var (
	kwargsType = reflect.TypeFor[Kwargs]()
	errorType  = reflect.TypeFor[error]()
)

// WrapFunc decorates an ordinary Go function with the checks of v. The
// returned function has fn's signature.
//
// Each parameter becomes a positional argument, a variadic tail contributes
// one positional argument per element, and a trailing Kwargs parameter
// supplies the keyword arguments. Interface-typed parameters are checked by
// the dynamic type of the value they hold.
//
// When the policy aborts and fn's last result is an error, the wrapper
// returns zero values with the policy's error in that position. Otherwise it
// panics with the error.
func WrapFunc[F any](v *Validator, fn F) (F, error) {
	var zero F

	fv := reflect.ValueOf(fn)
	if fv.Kind() != reflect.Func || fv.IsNil() {
		return zero, fmt.Errorf("%w: %T", ErrNotFunc, fn)
	}

	ft := fv.Type()
	hasKwargs := false
	for i := range ft.NumIn() {
		if ft.In(i) != kwargsType {
			continue
		}
		if i != ft.NumIn()-1 || ft.IsVariadic() {
			return zero, fmt.Errorf("%w: parameter %d of %s", ErrKwargsPosition, i, ft)
		}
		hasKwargs = true
	}

	returnsError := ft.NumOut() > 0 && ft.Out(ft.NumOut()-1) == errorType

	wrapped := reflect.MakeFunc(ft, func(in []reflect.Value) []reflect.Value {
		args, kwargs := unpackArgs(ft, in, hasKwargs)
		if err := v.Check(args, kwargs); err != nil {
			if !returnsError {
				panic(err)
			}
			return errorResults(ft, err)
		}

		if ft.IsVariadic() {
			return fv.CallSlice(in)
		}
		return fv.Call(in)
	})

	return wrapped.Interface().(F), nil
}

// MustWrapFunc is like WrapFunc but panics when fn cannot be wrapped.
func MustWrapFunc[F any](v *Validator, fn F) F {
	wrapped, err := WrapFunc(v, fn)
	if err != nil {
		panic(err)
	}
	return wrapped
}

func unpackArgs(ft reflect.Type, in []reflect.Value, hasKwargs bool) ([]any, map[string]any) {
	var kwargs map[string]any
	if hasKwargs {
		kwargs = in[len(in)-1].Interface().(Kwargs)
		in = in[:len(in)-1]
	}

	args := make([]any, 0, len(in))
	for i, arg := range in {
		if ft.IsVariadic() && i == ft.NumIn()-1 {
			for j := range arg.Len() {
				args = append(args, arg.Index(j).Interface())
			}
			continue
		}
		args = append(args, arg.Interface())
	}

	return args, kwargs
}

func errorResults(ft reflect.Type, err error) []reflect.Value {
	out := make([]reflect.Value, ft.NumOut())
	for i := range out {
		out[i] = reflect.Zero(ft.Out(i))
	}
	out[len(out)-1] = reflect.ValueOf(&err).Elem()
	return out
}
