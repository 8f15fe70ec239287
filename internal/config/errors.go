package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrInvalidMode indicates a failure policy mode other than "raise" or "report".
	ErrInvalidMode = errors.New("invalid check mode")
	// ErrInvalidLogLevel indicates a level zerolog cannot parse.
	ErrInvalidLogLevel = errors.New("invalid log level")
	// ErrInvalidLogFormat indicates a log format other than "auto", "json" or "console".
	ErrInvalidLogFormat = errors.New("invalid log format")
)
