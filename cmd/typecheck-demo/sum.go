package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/typecheck"
	"github.com/MKhiriev/typecheck/internal/config"
	"github.com/MKhiriev/typecheck/internal/logger"
)

const defaultPrompt = "The sum of %v and %v is %v."

var errBadPrompt = errors.New("prompt must format exactly three values")

// sumString formats the sum of two integers with an optional prompt. The
// prompt receives x, y and the sum, so it must hold three verbs.
func sumString(args []any, kwargs map[string]any) (any, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("sumString takes 2 positional arguments, got %d", len(args))
	}

	x, okX := args[0].(int)
	y, okY := args[1].(int)
	if !okX || !okY {
		return nil, fmt.Errorf("cannot add %v (%T) and %v (%T)", args[0], args[0], args[1], args[1])
	}

	prompt := defaultPrompt
	if p, ok := kwargs["prompt"].(string); ok {
		prompt = p
	}

	out := fmt.Sprintf(prompt, x, y, x+y)
	if strings.Contains(out, "%!") {
		return nil, fmt.Errorf("%w: %q", errBadPrompt, prompt)
	}
	return out, nil
}

// newSumString wraps sumString with (int, int, prompt=string) checks using
// the failure policy named by mode.
func newSumString(ctx context.Context, mode string) (typecheck.Func, error) {
	log := logger.FromContext(ctx)

	var b *typecheck.Builder
	switch mode {
	case config.ModeRaise:
		b = typecheck.New(typecheck.Is[int](), typecheck.Is[int]())
	case config.ModeReport:
		b = typecheck.NewReporting(typecheck.LogInvalid(log.Logger), typecheck.Is[int](), typecheck.Is[int]())
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrInvalidMode, mode)
	}

	v, err := b.
		Kwarg("prompt", typecheck.Is[string]()).
		Params("x", "y", "prompt").
		Name("sumString").
		Logger(log.Logger).
		Build()
	if err != nil {
		return nil, err
	}

	return v.Wrap(sumString), nil
}
