// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api implements the HTTP client for the PrivateGxT gateway.
//
// The gateway is the single entry point for everything the dashboard does:
// authentication, assistant management, document upload, chat, and admin
// operations. All calls go through one Client which attaches the bearer
// token and the user's locale to every request.
//
// Calls are never retried and never cancelled once issued; callers decide
// what to do with a failure. Server errors arrive as *Error values carrying
// the HTTP status and the server's detail string.
package api
