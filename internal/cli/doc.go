// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements the command-line surface of the PrivateGxT
// dashboard: argument parsing, command dispatch, terminal helpers, and
// the handlers for every subcommand. The interactive dashboard itself
// lives in the ui package; everything reachable without a full-screen
// terminal lives here.
package cli
