// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package auth manages the dashboard's session lifecycle.
//
// A session token obtained from the gateway (by magic link, password
// login, or registration) is persisted to disk so the user stays signed
// in across restarts. At startup Bootstrap loads the stored token and
// validates it against the gateway exactly once; the result settles the
// session into Authenticated or Unauthenticated, and every later part of
// the dashboard reads that settled state instead of re-probing.
package auth
