// SPDX-License-Identifier: MPL-2.0

// Package config loads runtests configuration.
//
// Configuration is resolved from three layers, lowest precedence first:
// built-in defaults, a TOML config file in the platform config directory,
// and RUNTESTS_-prefixed environment variables.
package config
