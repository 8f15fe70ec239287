// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] can be used to
// build a validator and a logger.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Check.Mode {
	case ModeRaise, ModeReport:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidMode, cfg.Check.Mode)
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, cfg.Log.Level)
	}

	switch cfg.Log.Format {
	case "auto", "json", "console":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, cfg.Log.Format)
	}

	return nil
}
