package typecheck

//go:generate mockgen -source=policy.go -destination=internal/mock/policy_mock.go -package=mock

import (
	"reflect"
	"strconv"

	"github.com/rs/zerolog"
)

// ArgRef identifies a checked argument in failure reports.
type ArgRef struct {
	// Name is the declared parameter or keyword name; empty when the
	// positional parameter has no declared name.
	Name string
	// Index is the 0-based position among positional arguments, counted
	// after the receiver is excluded. -1 for keyword arguments.
	Index int
	// Keyword is true when the argument was passed by name.
	Keyword bool
}

// String returns the name when known and the position otherwise.
func (r ArgRef) String() string {
	if r.Name != "" {
		return r.Name
	}
	return strconv.Itoa(r.Index)
}

// FailurePolicy decides what happens when an argument fails its constraint.
//
// OnInvalid is called once per mismatched argument. A non-nil error aborts
// the call: no further arguments are checked and the wrapped callable is not
// invoked. Returning nil lets checking continue.
type FailurePolicy interface {
	OnInvalid(value any, ref ArgRef, permitted []reflect.Type) error
}

// PolicyFunc adapts a function to FailurePolicy.
type PolicyFunc func(value any, ref ArgRef, permitted []reflect.Type) error

func (f PolicyFunc) OnInvalid(value any, ref ArgRef, permitted []reflect.Type) error {
	return f(value, ref, permitted)
}

// OnInvalidFunc receives mismatches under the Report policy.
type OnInvalidFunc func(value any, ref ArgRef, permitted []reflect.Type)

type raisePolicy struct{}

// Raise returns the policy that aborts the call with an
// *InvalidArgumentTypeError on the first mismatch.
func Raise() FailurePolicy {
	return raisePolicy{}
}

func (raisePolicy) OnInvalid(value any, ref ArgRef, permitted []reflect.Type) error {
	return newInvalidArgumentTypeError(value, ref, permitted)
}

type reportPolicy struct {
	onInvalid OnInvalidFunc
}

// Report returns the policy that forwards every mismatch to onInvalid and
// never aborts the call. A nil onInvalid ignores mismatches.
func Report(onInvalid OnInvalidFunc) FailurePolicy {
	return reportPolicy{onInvalid: onInvalid}
}

func (p reportPolicy) OnInvalid(value any, ref ArgRef, permitted []reflect.Type) error {
	if p.onInvalid != nil {
		p.onInvalid(value, ref, permitted)
	}
	return nil
}

// LogInvalid returns a Report callback that writes a warning for each
// mismatch to l.
func LogInvalid(l zerolog.Logger) OnInvalidFunc {
	return func(value any, ref ArgRef, permitted []reflect.Type) {
		l.Warn().
			Str("argument", ref.String()).
			Bool("keyword", ref.Keyword).
			Str("type", typeName(value)).
			Interface("value", value).
			Strs("permitted", typeNames(permitted)).
			Msg("invalid argument type")
	}
}

func typeNames(types []reflect.Type) []string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.String()
	}
	return names
}
