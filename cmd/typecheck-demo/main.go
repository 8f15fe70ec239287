// Command typecheck-demo calls a type-checked sumString(x, y, prompt=...)
// with values taken from the command line.
//
// Usage:
//
//	typecheck-demo [-mode raise|report] [-log-level L] [-log-format F] [-c file.json] X Y [prompt=FORMAT]
//
// Every argument is decoded as a YAML value, so 1 is an int, true a bool,
// hello a string and [1,2] a list. Arguments of the form name=value are
// passed as keyword arguments.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/typecheck"
	"github.com/MKhiriev/typecheck/internal/config"
	"github.com/MKhiriev/typecheck/internal/logger"
	"github.com/MKhiriev/typecheck/internal/utils"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const usage = `usage: typecheck-demo [-mode raise|report] [-log-level L] [-log-format auto|json|console] [-c file.json] X Y [prompt=FORMAT]`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, rest, err := config.GetStructuredConfig(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(stdout, usage)
			return 0
		}
		fmt.Fprintf(stderr, "error getting configs: %v\n%s\n", err, usage)
		return 2
	}

	ctx := utils.WithRunID(context.Background(), utils.NewUUIDGenerator().Generate())
	log := withRunID(ctx, logger.NewLogger("typecheck-demo", cfg.Log.Level, cfg.Log.Format, stderr))
	ctx = log.WithContext(ctx)

	logBuildInfo(log)
	log.Debug().Any("config", cfg).Msg("received configs")

	positional, kwargs, err := parseArgs(rest)
	if err != nil {
		log.Error().Err(err).Msg("error parsing arguments")
		fmt.Fprintln(stderr, usage)
		return 2
	}

	sum, err := newSumString(ctx, cfg.Check.Mode)
	if err != nil {
		log.Error().Err(err).Msg("error building validator")
		return 2
	}

	result, err := sum(positional, kwargs)
	if err != nil {
		if errors.Is(err, typecheck.ErrInvalidArgumentType) {
			log.Info().Err(err).Msg("call rejected")
		} else {
			log.Info().Err(err).Msg("call failed")
		}
		fmt.Fprintln(stderr, err)
		return 1
	}

	fmt.Fprintln(stdout, result)
	return 0
}

// withRunID tags every entry of log with the run id carried by ctx.
func withRunID(ctx context.Context, log *logger.Logger) *logger.Logger {
	runID, ok := utils.GetRunIDFromContext(ctx)
	if !ok {
		return log
	}
	return &logger.Logger{Logger: log.With().Str("run_id", runID).Logger()}
}

func logBuildInfo(log *logger.Logger) {
	na := func(s string) string {
		if s == "" {
			return "N/A"
		}
		return s
	}

	log.Debug().
		Str("version", na(buildVersion)).
		Str("date", na(buildDate)).
		Str("commit", na(buildCommit)).
		Msg("build info")
}
