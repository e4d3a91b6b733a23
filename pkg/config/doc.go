// Package config loads typed configuration from environment variables.
//
// Configuration structs declare their variables with caarlos0/env tags.
// Load parses each struct type once and caches the result, so packages can
// call it independently without re-reading the environment. A .env file in
// the working directory is picked up automatically; LoadEnv loads extra
// files (for example one passed on the command line) before the first Load.
//
// Parsing failures wrap ErrParsingConfig, so callers can match them with
// errors.Is.
package config
