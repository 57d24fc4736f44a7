// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ClinicKit

package config

// StructuredConfig is the top-level configuration container for phicrypt.
// It aggregates all sub-configurations and is populated by merging values
// from environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Crypto holds the field-encryption settings.
	Crypto Crypto `envPrefix:"CRYPTO_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Crypto holds the settings consumed by the field-encryption core.
type Crypto struct {
	// Secret is the external encryption secret. A value of exactly 64
	// hexadecimal characters is decoded directly as the raw 256-bit key;
	// any other non-empty value is treated as a passphrase and run
	// through key derivation. Must be kept confidential.
	// Env: CRYPTO_SECRET
	Secret string `env:"SECRET"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
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
