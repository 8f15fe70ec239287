package typecheck

import (
	"slices"

	"github.com/rs/zerolog"
)

// Func is a callable taking positional and keyword arguments.
type Func func(args []any, kwargs map[string]any) (any, error)

// Validator checks call arguments against a ConstraintSet. It is immutable
// once built and safe for concurrent use.
type Validator struct {
	set    ConstraintSet
	policy FailurePolicy
	logger zerolog.Logger
}

// ConstraintSet returns a copy of the validator's constraints.
func (v *Validator) ConstraintSet() ConstraintSet {
	return v.set.clone()
}

// callBinding pairs the arguments of one call with their declared identities.
type callBinding struct {
	args   []any
	names  []string
	kwargs map[string]any
}

func (v *Validator) bind(args []any, kwargs map[string]any) callBinding {
	b := callBinding{args: args, names: v.set.Params, kwargs: kwargs}
	if v.set.Method && len(b.args) > 0 {
		b.args = b.args[1:]
		if len(b.names) > 0 {
			b.names = b.names[1:]
		}
	}
	return b
}

// Check validates one call's arguments. It returns the first error returned
// by the failure policy, or nil. args and kwargs are not modified.
//
// Positional arguments are paired with positional constraints, and with the
// declared parameter names when Params was given, up to the shortest of
// those sequences; anything past that is not checked. Keyword arguments
// without a constraint are skipped. Keywords are checked in name order.
func (v *Validator) Check(args []any, kwargs map[string]any) error {
	b := v.bind(args, kwargs)

	n := min(len(b.args), len(v.set.Positional))
	if len(v.set.Params) > 0 {
		n = min(n, len(b.names))
	}

	for i := range n {
		ref := ArgRef{Index: i}
		if i < len(b.names) {
			ref.Name = b.names[i]
		}
		if err := v.check(b.args[i], ref, v.set.Positional[i]); err != nil {
			return err
		}
	}

	if len(b.kwargs) == 0 || len(v.set.Keyword) == 0 {
		return nil
	}

	names := make([]string, 0, len(b.kwargs))
	for name := range b.kwargs {
		if _, ok := v.set.Keyword[name]; ok {
			names = append(names, name)
		}
	}
	slices.Sort(names)

	for _, name := range names {
		ref := ArgRef{Name: name, Index: -1, Keyword: true}
		if err := v.check(b.kwargs[name], ref, v.set.Keyword[name]); err != nil {
			return err
		}
	}

	return nil
}

func (v *Validator) check(value any, ref ArgRef, c Constraint) error {
	if c.Allows(value) {
		return nil
	}

	v.logger.Debug().
		Str("argument", ref.String()).
		Str("type", typeName(value)).
		Stringer("permitted", c).
		Msg("argument type mismatch")

	return v.policy.OnInvalid(value, ref, c.Types())
}

// Call checks args and kwargs and, unless the policy aborts, calls fn with
// exactly the arguments it was given. Errors from fn are returned unchanged.
func (v *Validator) Call(fn Func, args []any, kwargs map[string]any) (any, error) {
	if err := v.Check(args, kwargs); err != nil {
		return nil, err
	}
	return fn(args, kwargs)
}

// Wrap returns fn decorated with argument checking.
func (v *Validator) Wrap(fn Func) Func {
	return func(args []any, kwargs map[string]any) (any, error) {
		return v.Call(fn, args, kwargs)
	}
}
