// Package config provides configuration loading, merging, and validation
// for the typecheck demo command.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables (TYPECHECK_ prefix), with an optional .env file
//     filling the ones left unset
//  2. Command-line flags
//  3. JSON config file
//
// The main entry point is [GetStructuredConfig].
package config
