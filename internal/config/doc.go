// SPDX-License-Identifier: Apache-2.0

// Package config loads and merges the vault-console configuration from
// environment variables, command-line flags, and an optional JSON file.
//
// Sources are merged through a builder ([GetStructuredConfig]) with mergo:
// environment values are read first, flags on top of them, and the JSON file
// (whose path may come from either of the first two) last. Zero-valued fields
// then receive documented defaults, and the result is validated.
//
// The TUI client consumes the narrowed [ClientConfig] view produced by
// [GetClientConfig].
package config
