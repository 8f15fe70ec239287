// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DotEnvFile is read from the working directory, when present, before the
// environment is parsed.
const DotEnvFile = ".env"

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types, all under [EnvPrefix].
//
// Returns a wrapped error if env.ParseWithOptions fails.
func parseEnv(cfg any) error {
	return parseEnvWithFile(cfg, DotEnvFile)
}

// parseEnvWithFile is parseEnv with the variables of dotEnvPath added for
// keys the process environment leaves unset or empty. A missing file is
// not an error.
func parseEnvWithFile(cfg any, dotEnvPath string) error {
	environment := environMap()

	if dotEnvPath != "" {
		fileVars, err := godotenv.Read(dotEnvPath)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return fmt.Errorf("error reading env file %s: %w", dotEnvPath, err)
		default:
			for k, v := range fileVars {
				if environment[k] == "" {
					environment[k] = v
				}
			}
		}
	}

	err := env.ParseWithOptions(cfg, env.Options{
		Prefix:      EnvPrefix,
		Environment: environment,
	})
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

func environMap() map[string]string {
	vars := os.Environ()
	m := make(map[string]string, len(vars))
	for _, kv := range vars {
		k, v, _ := strings.Cut(kv, "=")
		m[k] = v
	}
	return m
}
