// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package dashboard implements the full-screen Bubble Tea dashboard:
// the login screen, the chat transcript with its document side panel,
// the upload prompt, and the admin model overlay.
//
// The package holds no gateway logic of its own. Every operation runs
// through the auth, assistant, chat, documents, and admin services as a
// tea.Cmd, and the results come back as typed messages.
package dashboard
