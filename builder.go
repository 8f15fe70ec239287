package typecheck

import (
	"errors"
	"fmt"
	"maps"
	"reflect"

	"github.com/rs/zerolog"
)

// ConstraintSet is the full, immutable description of what a Validator
// checks.
type ConstraintSet struct {
	// Positional holds constraints for positional parameters in declaration
	// order, receiver excluded.
	Positional []Constraint
	// Keyword maps keyword parameter names to their constraints.
	Keyword map[string]Constraint
	// Params lists declared parameter names in declaration order, receiver
	// included for methods. Empty when names are unknown.
	Params []string
	// Method marks the first positional argument as a receiver.
	Method bool
}

func (cs ConstraintSet) clone() ConstraintSet {
	return ConstraintSet{
		Positional: append([]Constraint(nil), cs.Positional...),
		Keyword:    maps.Clone(cs.Keyword),
		Params:     append([]string(nil), cs.Params...),
		Method:     cs.Method,
	}
}

func (cs ConstraintSet) validate() error {
	var err error
	for i, c := range cs.Positional {
		if cErr := c.validate(); cErr != nil {
			err = errors.Join(err, fmt.Errorf("positional constraint %d: %w", i, cErr))
		}
	}
	for name, c := range cs.Keyword {
		if name == "" {
			err = errors.Join(err, ErrEmptyName)
			continue
		}
		if cErr := c.validate(); cErr != nil {
			err = errors.Join(err, fmt.Errorf("keyword constraint %q: %w", name, cErr))
		}
	}
	return err
}

// Builder assembles a Validator. Methods may be chained; problems are
// collected and reported together by Build.
type Builder struct {
	set    ConstraintSet
	policy FailurePolicy
	name   string
	logger zerolog.Logger
	err    error
}

// New starts a Validator that raises *InvalidArgumentTypeError on the first
// mismatch. args are the positional constraints in declaration order.
func New(args ...Constraint) *Builder {
	return newBuilder(Raise(), args)
}

// NewReporting starts a Validator that passes every mismatch to onInvalid
// and then calls through to the wrapped callable.
func NewReporting(onInvalid OnInvalidFunc, args ...Constraint) *Builder {
	return newBuilder(Report(onInvalid), args)
}

func newBuilder(policy FailurePolicy, args []Constraint) *Builder {
	return &Builder{
		set: ConstraintSet{
			Positional: append([]Constraint(nil), args...),
			Keyword:    make(map[string]Constraint),
		},
		policy: policy,
		logger: zerolog.Nop(),
	}
}

// Kwarg constrains the keyword argument name.
func (b *Builder) Kwarg(name string, c Constraint) *Builder {
	if name == "" {
		b.err = errors.Join(b.err, ErrEmptyName)
		return b
	}
	b.set.Keyword[name] = c
	return b
}

// Kwargs constrains several keyword arguments at once.
func (b *Builder) Kwargs(constraints map[string]Constraint) *Builder {
	for name, c := range constraints {
		b.Kwarg(name, c)
	}
	return b
}

// Params declares the callable's parameter names in declaration order. For
// methods the receiver's name comes first. Failures then identify
// positional arguments by name instead of position.
func (b *Builder) Params(names ...string) *Builder {
	b.set.Params = append([]string(nil), names...)
	return b
}

// Method marks the callable as taking a receiver as its first argument; the
// receiver is never checked.
func (b *Builder) Method() *Builder {
	b.set.Method = true
	return b
}

// Name sets the callable's name reported in log events.
func (b *Builder) Name(name string) *Builder {
	b.name = name
	return b
}

// Policy replaces the failure policy chosen by New or NewReporting.
func (b *Builder) Policy(p FailurePolicy) *Builder {
	if p == nil || isNilValue(p) {
		b.err = errors.Join(b.err, ErrNilPolicy)
		return b
	}
	b.policy = p
	return b
}

func isNilValue(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

// Logger sets the logger used for debug events about mismatches.
func (b *Builder) Logger(l zerolog.Logger) *Builder {
	b.logger = l
	return b
}

// Build validates the configuration and returns the Validator.
func (b *Builder) Build() (*Validator, error) {
	err := errors.Join(b.err, b.set.validate())
	if err != nil {
		return nil, fmt.Errorf("error building validator: %w", err)
	}

	logger := b.logger
	if b.name != "" {
		logger = logger.With().Str("callable", b.name).Logger()
	}

	return &Validator{
		set:    b.set.clone(),
		policy: b.policy,
		logger: logger,
	}, nil
}

// MustBuild is like Build but panics on error. It is meant for
// package-level declarations.
func (b *Builder) MustBuild() *Validator {
	v, err := b.Build()
	if err != nil {
		panic(err)
	}
	return v
}
