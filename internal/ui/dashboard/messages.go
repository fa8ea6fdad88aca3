// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package dashboard

import (
	"time"

	"github.com/jeranaias/privategxt-tui/internal/api"
	"github.com/jeranaias/privategxt-tui/internal/auth"
	"github.com/jeranaias/privategxt-tui/internal/model"
)

// =============================================================================
// SESSION MESSAGES
// =============================================================================

// BootstrapDoneMsg reports the settled session state on startup.
type BootstrapDoneMsg struct {
	State auth.State
	User  *model.User
}

// LoginResultMsg reports the outcome of a credential sign-in.
type LoginResultMsg struct {
	Email string
	Err   error
}

// MagicLinkSentMsg reports that a sign-in email was requested.
type MagicLinkSentMsg struct {
	Err error
}

// AssistantResolvedMsg reports the resolved assistant.
type AssistantResolvedMsg struct {
	Assistant *model.Assistant
	Err       error
}

// =============================================================================
// CHAT MESSAGES
// =============================================================================

// MessagesLoadedMsg reports a transcript refetch.
type MessagesLoadedMsg struct {
	Err error
}

// SendDoneMsg reports a completed send attempt. The controller already
// reconciled or rolled back; the model only needs to re-render.
type SendDoneMsg struct {
	Err error
}

// ChatClearedMsg reports a completed history deletion.
type ChatClearedMsg struct {
	Err error
}

// ExportDoneMsg reports a transcript export.
type ExportDoneMsg struct {
	Path string
	Err  error
}

// =============================================================================
// DOCUMENT MESSAGES
// =============================================================================

// DocsRefreshedMsg reports a document list refetch.
type DocsRefreshedMsg struct {
	Err error
}

// UploadDoneMsg reports a completed upload attempt.
type UploadDoneMsg struct {
	Filename string
	Err      error
}

// DeleteDoneMsg reports a completed document deletion.
type DeleteDoneMsg struct {
	DocID int64
	Err   error
}

// =============================================================================
// ADMIN MESSAGES
// =============================================================================

// AdminProbedMsg reports whether the account has admin rights.
type AdminProbedMsg struct {
	IsAdmin bool
	Err     error
}

// ModelsLoadedMsg carries the model list for the admin overlay.
type ModelsLoadedMsg struct {
	Models  []api.ModelInfo
	Current string
	Err     error
}

// ModelSwitchedMsg reports a completed model switch.
type ModelSwitchedMsg struct {
	Name string
	Err  error
}

// =============================================================================
// TICKS
// =============================================================================

// TickMsg drives the spinner and toast expiry.
type TickMsg struct {
	Time time.Time
}
