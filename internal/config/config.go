// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Dubrovin

package config

import "time"

// StructuredConfig is the top-level configuration container for the intake
// client. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, and an optional
// JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the client version string.
	App App `envPrefix:"APP_"`

	// Portal holds the portal endpoint address, bearer token, and timeout
	// settings used by the transport adapter.
	Portal Portal `envPrefix:"PORTAL_"`

	// Workers holds configuration for background jobs (profile refresh).
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged as the lowest-priority
	// layer, filling fields the environment and flags left unset.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running client
	// (e.g. "1.2.3").
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Portal holds connection settings for the intake portal backend.
type Portal struct {
	// Address is the base URL of the portal API
	// (e.g. "https://portal.example.com"). A bare host:port is accepted and
	// treated as https.
	// Env: PORTAL_ADDRESS
	Address string `env:"ADDRESS"`

	// Token is the bearer token attached to every portal request. The token
	// is issued by the portal's auth flow, which is outside this client.
	// Env: PORTAL_TOKEN
	Token string `env:"TOKEN"`

	// RequestTimeout is the maximum duration allowed for a single outbound
	// request before the client cancels it (e.g. "30s", "1m").
	// Env: PORTAL_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// RefreshInterval defines how often the background job re-fetches the
	// server profile while the form is clean.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (an earlier source wins for fields it sets):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
