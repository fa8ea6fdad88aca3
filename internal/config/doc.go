// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides unified configuration loading and management for
// the PrivateGxT dashboard.
//
// Supports both TOML and JSON configuration formats, with sensible
// defaults, environment variable overrides, and validation.
//
// Configuration file locations (in order of precedence):
//   - ~/.privategxt/config.toml
//   - ~/.privategxt/config.json
//   - Built-in defaults
//
// The file can also be watched for changes, so settings edits take effect
// without restarting the dashboard.
package config
