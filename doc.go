// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package typecheck provides runtime validation of call arguments against
// permitted types.
//
// A Validator is configured once with per-position and per-keyword type
// constraints and a failure policy, then wraps callables. Every invocation of
// a wrapped callable first checks its arguments; mismatches are handed to the
// policy, which either aborts the call with an *InvalidArgumentTypeError
// (Raise) or forwards the mismatch to a callback and lets the call proceed
// (Report).
//
// Usage:
//
//	v := typecheck.New(typecheck.Is[int](), typecheck.Is[int]()).
//		Kwarg("prompt", typecheck.Is[string]()).
//		Params("x", "y", "prompt").
//		MustBuild()
//
//	sum := v.Wrap(func(args []any, kwargs map[string]any) (any, error) {
//		return args[0].(int) + args[1].(int), nil
//	})
//
//	_, err := sum([]any{"hello", "world"}, nil)
//	// err: Argument x (hello: string) must be of type int.
//
// Ordinary Go functions can be wrapped as well with WrapFunc; their
// parameters become positional arguments and a trailing Kwargs parameter
// carries keyword arguments.
//
// Go reflection does not expose parameter names, so names are declared with
// Builder.Params. Methods called through method expressions are declared with
// Builder.Method, which excludes the receiver from checking.
package typecheck
