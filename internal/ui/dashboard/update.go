// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package dashboard

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/privategxt-tui/internal/auth"
	"github.com/jeranaias/privategxt-tui/internal/chat"
	"github.com/jeranaias/privategxt-tui/internal/documents"
	"github.com/jeranaias/privategxt-tui/internal/i18n"
)

// Update handles all incoming messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	case TickMsg:
		m.toasts.Sweep()
		// While a send is in flight the pending message lives only in
		// the controller; re-render so it stays visible.
		if m.chat != nil && m.chat.Sending() {
			m.refreshViewport()
		}
		return m, tickCmd()

	case BootstrapDoneMsg:
		return m.handleBootstrap(msg)
	case LoginResultMsg:
		return m.handleLoginResult(msg)
	case MagicLinkSentMsg:
		if msg.Err != nil {
			m.toasts.AddError(msg.Err.Error())
		} else {
			m.toasts.AddStatus(i18n.T("login.magic_sent"))
		}
		return m, nil
	case AssistantResolvedMsg:
		return m.handleAssistantResolved(msg)

	case MessagesLoadedMsg:
		if msg.Err != nil {
			m.toasts.AddError(msg.Err.Error())
		}
		m.refreshViewport()
		return m, nil
	case SendDoneMsg:
		if msg.Err != nil && msg.Err != chat.ErrEmptyMessage {
			m.toasts.AddError(i18n.T("chat.send_failed") + " " + msg.Err.Error())
		}
		m.refreshViewport()
		return m, nil
	case ChatClearedMsg:
		switch {
		case errors.Is(msg.Err, chat.ErrNothingToClear):
			m.toasts.AddStatus(i18n.T("chat.nothing_clear"))
		case msg.Err != nil:
			m.toasts.AddError(msg.Err.Error())
		default:
			m.toasts.AddStatus(i18n.T("chat.cleared"))
		}
		m.refreshViewport()
		return m, nil
	case ExportDoneMsg:
		if msg.Err != nil {
			m.toasts.AddError(msg.Err.Error())
		} else {
			m.toasts.AddSuccess(i18n.T("export.done") + " " + msg.Path)
		}
		return m, nil

	case DocsRefreshedMsg:
		if msg.Err != nil {
			m.toasts.AddError(msg.Err.Error())
		}
		m.clampDocCursor()
		return m, nil
	case UploadDoneMsg:
		if msg.Err != nil {
			m.toasts.AddError(i18n.T("docs.upload_failed") + " " + msg.Err.Error())
		} else {
			m.toasts.AddSuccess(msg.Filename)
		}
		m.clampDocCursor()
		return m, nil
	case DeleteDoneMsg:
		if msg.Err != nil {
			m.toasts.AddError(i18n.T("docs.delete_failed") + " " + msg.Err.Error())
		}
		m.clampDocCursor()
		return m, nil

	case AdminProbedMsg:
		m.isAdmin = msg.IsAdmin
		if msg.IsAdmin {
			m.adminOpen = true
			return m, m.loadModelsCmd()
		}
		if msg.Err != nil {
			m.toasts.AddError(msg.Err.Error())
		}
		return m, nil
	case ModelsLoadedMsg:
		if msg.Err != nil {
			m.adminOpen = false
			m.toasts.AddError(msg.Err.Error())
			return m, nil
		}
		m.adminModels = msg.Models
		m.adminCurrent = msg.Current
		m.adminCursor = 0
		return m, nil
	case ModelSwitchedMsg:
		if msg.Err != nil {
			m.toasts.AddError(msg.Err.Error())
			return m, nil
		}
		m.adminCurrent = msg.Name
		m.toasts.AddSuccess(i18n.T("admin.model_switched") + " " + msg.Name)
		return m, nil
	}

	return m, nil
}

// =============================================================================
// RESIZE
// =============================================================================

func (m *Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	chatWidth := m.chatViewportWidth()
	chatHeight := m.height - 6
	if chatHeight < 3 {
		chatHeight = 3
	}
	if !m.ready {
		m.viewport = newViewport(chatWidth, chatHeight)
		m.ready = true
	} else {
		m.viewport.Width = chatWidth
		m.viewport.Height = chatHeight
	}
	m.chatInput.Width = chatWidth - 4
	m.refreshViewport()
	return m, nil
}

// =============================================================================
// KEYS
// =============================================================================

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global quit.
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.view {
	case ViewLoading:
		return m, nil
	case ViewLogin:
		return m.handleLoginKey(msg)
	default:
		if m.confirm != confirmNone {
			return m.handleConfirmKey(msg)
		}
		if m.adminOpen {
			return m.handleAdminKey(msg)
		}
		if m.uploading {
			return m.handleUploadKey(msg)
		}
		return m.handleDashboardKey(msg)
	}
}

func (m *Model) handleLoginKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyTab, tea.KeyShiftTab:
		if m.activeField == fieldEmail {
			m.activeField = fieldPassword
			m.emailInput.Blur()
			m.passwordInput.Focus()
		} else {
			m.activeField = fieldEmail
			m.passwordInput.Blur()
			m.emailInput.Focus()
		}
		return m, nil

	case tea.KeyEnter:
		email := strings.TrimSpace(m.emailInput.Value())
		password := m.passwordInput.Value()
		if email == "" {
			return m, nil
		}
		// Empty password requests a magic link instead.
		if password == "" {
			return m, m.magicLinkCmd(email)
		}
		return m, m.loginCmd(email, password)
	}

	var cmd tea.Cmd
	if m.activeField == fieldEmail {
		m.emailInput, cmd = m.emailInput.Update(msg)
	} else {
		m.passwordInput, cmd = m.passwordInput.Update(msg)
	}
	return m, cmd
}

func (m *Model) handleDashboardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyTab:
		if m.focus == FocusChat {
			m.focus = FocusDocs
			m.chatInput.Blur()
		} else {
			m.focus = FocusChat
			m.chatInput.Focus()
		}
		return m, nil

	case tea.KeyCtrlU:
		m.uploading = true
		m.pathInput.SetValue("")
		m.pathInput.Focus()
		m.chatInput.Blur()
		return m, nil

	case tea.KeyCtrlE:
		if m.chat == nil {
			return m, nil
		}
		return m, m.exportCmd()

	case tea.KeyCtrlA:
		if m.adminOpen {
			m.adminOpen = false
			return m, nil
		}
		return m, m.probeAdminCmd()

	case tea.KeyCtrlL:
		if m.chat == nil {
			return m, nil
		}
		m.confirm = confirmClearChat
		return m, nil

	case tea.KeyCtrlR:
		if m.chat == nil || m.docs == nil {
			return m, nil
		}
		return m, tea.Batch(m.loadMessagesCmd(), m.refreshDocsCmd())
	}

	if m.focus == FocusDocs {
		return m.handleDocsKey(msg)
	}

	if msg.Type == tea.KeyEnter {
		text := strings.TrimSpace(m.chatInput.Value())
		if text == "" || m.chat == nil {
			return m, nil
		}
		if m.chat.Sending() {
			// One send at a time; keep the draft in the input.
			return m, nil
		}
		m.chatInput.SetValue("")
		return m, m.sendCmd(text)
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.chatInput, cmd = m.chatInput.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m *Model) handleDocsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		m.docCursor--
		m.clampDocCursor()
	case "down", "j":
		m.docCursor++
		m.clampDocCursor()
	case "d", "delete", "backspace":
		if doc, ok := m.selectedDoc(); ok {
			if m.docs.Deleting(doc.ID) {
				return m, nil
			}
			m.confirm = confirmDeleteDoc
			m.confirmDocID = doc.ID
			m.confirmDocName = doc.Filename
		}
	case "r":
		return m, m.refreshDocsCmd()
	}
	return m, nil
}

// handleConfirmKey resolves a pending confirmation prompt. Only an
// explicit yes fires the armed call; every other key cancels.
func (m *Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.confirm
	docID := m.confirmDocID
	m.confirm = confirmNone
	m.confirmDocID = 0
	m.confirmDocName = ""

	switch msg.String() {
	case "y", "Y", "enter":
		switch action {
		case confirmDeleteDoc:
			return m, m.deleteDocCmd(docID)
		case confirmClearChat:
			return m, m.clearChatCmd()
		}
	}
	return m, nil
}

func (m *Model) handleUploadKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.uploading = false
		m.pathInput.Blur()
		if m.focus == FocusChat {
			m.chatInput.Focus()
		}
		return m, nil

	case tea.KeyEnter:
		path := strings.TrimSpace(m.pathInput.Value())
		m.uploading = false
		m.pathInput.Blur()
		if m.focus == FocusChat {
			m.chatInput.Focus()
		}
		if path == "" || m.docs == nil {
			return m, nil
		}
		if m.docs.Uploading() {
			m.toasts.AddWarning(documents.ErrUploadInProgress.Error())
			return m, nil
		}
		m.toasts.AddStatus(i18n.T("docs.uploading"))
		return m, m.uploadCmd(path)
	}

	var cmd tea.Cmd
	m.pathInput, cmd = m.pathInput.Update(msg)
	return m, cmd
}

func (m *Model) handleAdminKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "ctrl+a":
		m.adminOpen = false
		return m, nil
	case "up", "k":
		if m.adminCursor > 0 {
			m.adminCursor--
		}
	case "down", "j":
		if m.adminCursor < len(m.adminModels)-1 {
			m.adminCursor++
		}
	case "enter":
		if m.adminCursor >= 0 && m.adminCursor < len(m.adminModels) {
			return m, m.switchModelCmd(m.adminModels[m.adminCursor].Name)
		}
	}
	return m, nil
}

// =============================================================================
// SESSION TRANSITIONS
// =============================================================================

func (m *Model) handleBootstrap(msg BootstrapDoneMsg) (tea.Model, tea.Cmd) {
	if msg.State != auth.StateAuthenticated {
		m.view = ViewLogin
		return m, nil
	}
	m.user = msg.User
	m.view = ViewDashboard
	m.focus = FocusChat
	m.chatInput.Focus()
	return m, m.resolveAssistantCmd()
}

func (m *Model) handleLoginResult(msg LoginResultMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.toasts.AddError(i18n.T("login.failed") + ": " + msg.Err.Error())
		m.passwordInput.SetValue("")
		return m, nil
	}
	m.user = m.auth.User()
	m.view = ViewDashboard
	m.focus = FocusChat
	m.passwordInput.Blur()
	m.emailInput.Blur()
	m.chatInput.Focus()
	return m, m.resolveAssistantCmd()
}

func (m *Model) handleAssistantResolved(msg AssistantResolvedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.toasts.AddError(msg.Err.Error())
		return m, nil
	}
	m.assistantName = msg.Assistant.Name
	m.chat = chat.NewController(m.client, msg.Assistant.ID)
	m.docs = documents.NewManager(m.client, msg.Assistant.ID)
	return m, tea.Batch(m.loadMessagesCmd(), m.refreshDocsCmd())
}
