package config

import (
	"flag"
	"fmt"
	"io"
)

// ParseFlags parses configuration flags from args and returns the config
// they describe together with the remaining positional arguments.
//
// Flags:
//
//	-mode       failure policy, "raise" or "report"
//	-log-level  minimum log level
//	-log-format "auto", "json" or "console"
//	-c/-config  json file path with configs
func ParseFlags(args []string) (*StructuredConfig, []string, error) {
	var mode, logLevel, logFormat, jsonConfigPath string

	fs := flag.NewFlagSet("typecheck-demo", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&mode, "mode", "", "Failure policy: raise or report")
	fs.StringVar(&logLevel, "log-level", "", "Minimum log level")
	fs.StringVar(&logFormat, "log-format", "", "Log format: auto, json or console")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Check: Check{
			Mode: mode,
		},
		Log: Log{
			Level:  logLevel,
			Format: logFormat,
		},
		JSONFilePath: jsonConfigPath,
	}, fs.Args(), nil
}
