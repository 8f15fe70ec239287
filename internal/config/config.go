// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// Failure policy modes accepted in [Check.Mode].
const (
	ModeRaise  = "raise"
	ModeReport = "report"
)

// EnvPrefix is prepended to every environment variable the config reads.
const EnvPrefix = "TYPECHECK_"

// StructuredConfig is the top-level configuration of the typecheck demo
// command. It is populated by merging values from environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Check holds the settings of the argument validator.
	Check Check `envPrefix:"CHECK_"`

	// Log holds the logger settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Env: TYPECHECK_CONFIG; flags: -c / -config.
	JSONFilePath string `env:"CONFIG"`
}

// Check holds validator settings.
type Check struct {
	// Mode selects the failure policy: "raise" aborts the call on the first
	// mismatch, "report" logs every mismatch and calls through.
	// Env: TYPECHECK_CHECK_MODE
	Mode string `env:"MODE"`
}

// Log holds logger settings.
type Log struct {
	// Level is the minimum zerolog level ("debug", "info", "warn", ...).
	// Env: TYPECHECK_LOG_LEVEL
	Level string `env:"LEVEL"`

	// Format is "json", "console" or "auto" (console on a terminal).
	// Env: TYPECHECK_LOG_FORMAT
	Format string `env:"FORMAT"`
}

// defaults fills every field no source has set.
var defaults = StructuredConfig{
	Check: Check{Mode: ModeRaise},
	Log:   Log{Level: "info", Format: "auto"},
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources in the following priority order (last source wins for
// non-zero fields):
//  1. Environment variables
//  2. Command-line flags parsed from args
//  3. JSON file (path resolved from sources 1 and 2)
//
// Fields left empty by every source take their defaults. The arguments that
// remain after flag parsing are returned alongside the config.
func GetStructuredConfig(args []string) (*StructuredConfig, []string, error) {
	b := newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON()

	cfg, err := b.build()
	if err != nil {
		return nil, nil, err
	}

	return cfg, b.rest, nil
}
