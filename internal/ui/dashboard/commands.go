// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package dashboard

import (
	"context"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/privategxt-tui/internal/export"
)

// requestTimeout bounds every gateway call issued from the UI.
const requestTimeout = 60 * time.Second

// uploadTimeout bounds document uploads, which can be large.
const uploadTimeout = 5 * time.Minute

// =============================================================================
// SESSION COMMANDS
// =============================================================================

// bootstrapCmd settles the stored session exactly once.
func (m *Model) bootstrapCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		state := m.auth.Bootstrap(ctx)
		return BootstrapDoneMsg{State: state, User: m.auth.User()}
	}
}

// loginCmd signs in with the entered credentials.
func (m *Model) loginCmd(email, password string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		err := m.auth.Login(ctx, email, password)
		return LoginResultMsg{Email: email, Err: err}
	}
}

// magicLinkCmd requests a sign-in email.
func (m *Model) magicLinkCmd(email string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		return MagicLinkSentMsg{Err: m.auth.RequestMagicLink(ctx, email)}
	}
}

// resolveAssistantCmd finds or creates the account's assistant.
func (m *Model) resolveAssistantCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		asst, err := m.resolver.Resolve(ctx)
		return AssistantResolvedMsg{Assistant: asst, Err: err}
	}
}

// =============================================================================
// CHAT COMMANDS
// =============================================================================

// loadMessagesCmd refetches the transcript.
func (m *Model) loadMessagesCmd() tea.Cmd {
	controller := m.chat
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		return MessagesLoadedMsg{Err: controller.Load(ctx)}
	}
}

// sendCmd sends one chat message. The controller shows the pending
// message immediately and reconciles or rolls back before this command
// returns, so the UI only re-renders on completion.
func (m *Model) sendCmd(text string) tea.Cmd {
	controller := m.chat
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		return SendDoneMsg{Err: controller.Send(ctx, text)}
	}
}

// clearChatCmd deletes the entire history.
func (m *Model) clearChatCmd() tea.Cmd {
	controller := m.chat
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		return ChatClearedMsg{Err: controller.ClearAll(ctx)}
	}
}

// exportCmd writes the transcript to the configured export directory.
func (m *Model) exportCmd() tea.Cmd {
	msgs := m.chat.Messages()
	format := m.cfg.Export.Format
	dir := m.cfg.Export.Directory
	return func() tea.Msg {
		exporter, err := export.ForFormat(format)
		if err != nil {
			return ExportDoneMsg{Err: err}
		}
		opts := export.DefaultOptions()
		if dir != "" {
			opts.OutputDir = dir
		}
		path, err := export.ExportToFile(msgs, exporter, opts)
		return ExportDoneMsg{Path: path, Err: err}
	}
}

// =============================================================================
// DOCUMENT COMMANDS
// =============================================================================

// refreshDocsCmd refetches the document list.
func (m *Model) refreshDocsCmd() tea.Cmd {
	mgr := m.docs
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		return DocsRefreshedMsg{Err: mgr.Refresh(ctx)}
	}
}

// uploadCmd uploads a local file by path.
func (m *Model) uploadCmd(path string) tea.Cmd {
	mgr := m.docs
	return func() tea.Msg {
		name := filepath.Base(path)
		f, err := os.Open(path)
		if err != nil {
			return UploadDoneMsg{Filename: name, Err: err}
		}
		defer f.Close()

		ctx, cancel := context.WithTimeout(context.Background(), uploadTimeout)
		defer cancel()
		return UploadDoneMsg{Filename: name, Err: mgr.Upload(ctx, name, f)}
	}
}

// deleteDocCmd deletes one document by id.
func (m *Model) deleteDocCmd(docID int64) tea.Cmd {
	mgr := m.docs
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		return DeleteDoneMsg{DocID: docID, Err: mgr.Delete(ctx, docID)}
	}
}

// =============================================================================
// ADMIN COMMANDS
// =============================================================================

// probeAdminCmd checks admin rights once.
func (m *Model) probeAdminCmd() tea.Cmd {
	svc := m.admin
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		isAdmin, err := svc.IsAdmin(ctx)
		return AdminProbedMsg{IsAdmin: isAdmin, Err: err}
	}
}

// loadModelsCmd fetches the model list and active model for the overlay.
func (m *Model) loadModelsCmd() tea.Cmd {
	svc := m.admin
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		models, err := svc.Models(ctx)
		if err != nil {
			return ModelsLoadedMsg{Err: err}
		}
		current, err := svc.CurrentModel(ctx)
		return ModelsLoadedMsg{Models: models, Current: current, Err: err}
	}
}

// switchModelCmd switches the gateway's active model.
func (m *Model) switchModelCmd(name string) tea.Cmd {
	svc := m.admin
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		return ModelSwitchedMsg{Name: name, Err: svc.SwitchModel(ctx, name)}
	}
}

// =============================================================================
// TICKS
// =============================================================================

// tickCmd drives the spinner and toast expiry at 10 Hz.
func tickCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg{Time: t}
	})
}
