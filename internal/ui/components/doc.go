// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides reusable UI components for the PrivateGxT
// dashboard: the toast stack and the status bar. Components are pure
// render functions over a Theme so they carry no Bubble Tea state of
// their own.
package components
