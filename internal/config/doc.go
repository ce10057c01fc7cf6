// Cinescribe - Conversational Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinescribe

// Package config provides layered configuration loading with Koanf v2.
//
// Settings come from three sources, later sources overriding earlier ones:
//
//  1. Built-in defaults
//  2. An optional YAML config file (config.yaml, or CONFIG_PATH)
//  3. Environment variables (HTTP_PORT, DUCKDB_PATH, LOG_LEVEL, ...)
//
// Load() returns a validated, immutable Config that is safe for concurrent
// reads. Field-level documentation in config.go lists the environment
// variable for each setting.
package config
