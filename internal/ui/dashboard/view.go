// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/privategxt-tui/internal/i18n"
	"github.com/jeranaias/privategxt-tui/internal/model"
	"github.com/jeranaias/privategxt-tui/internal/ui/components"
	"github.com/jeranaias/privategxt-tui/internal/util"
)

// docPanelWidth is the fixed width of the document side panel.
const docPanelWidth = 32

// newViewport creates the transcript viewport.
func newViewport(width, height int) viewport.Model {
	vp := viewport.New(width, height)
	vp.MouseWheelEnabled = true
	return vp
}

// chatViewportWidth returns the transcript width for the current size.
func (m *Model) chatViewportWidth() int {
	w := m.width - docPanelWidth - 4
	if m.width < 80 {
		// Narrow terminal: the doc panel is hidden.
		w = m.width - 2
	}
	if w < 20 {
		w = 20
	}
	return w
}

// View renders the whole screen.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case ViewLoading:
		return m.theme.Container.Render(
			m.spin.View() + " " + i18n.T("app.title"))
	case ViewLogin:
		return m.renderLogin()
	default:
		return m.renderDashboard()
	}
}

// =============================================================================
// LOGIN VIEW
// =============================================================================

func (m *Model) renderLogin() string {
	var b strings.Builder
	b.WriteString(m.theme.HeaderTitle.Render(i18n.T("app.title")))
	b.WriteString("\n\n")
	b.WriteString(m.emailInput.View())
	b.WriteString("\n")
	b.WriteString(m.passwordInput.View())
	b.WriteString("\n\n")
	b.WriteString(m.theme.HeaderSubtitle.Render(
		"Enter to sign in. Leave the password empty for a sign-in email."))

	box := m.theme.OverlayBox.Render(b.String())
	content := box
	if m.width > 0 && m.height > 0 {
		content = lipgloss.Place(m.width, m.height-2, lipgloss.Center, lipgloss.Center, box)
	}
	return content + "\n" + components.RenderToasts(m.toasts, m.width)
}

// =============================================================================
// DASHBOARD VIEW
// =============================================================================

func (m *Model) renderDashboard() string {
	header := m.renderHeader()
	transcript := m.viewport.View()
	input := m.renderInput()

	main := transcript
	if m.width >= 80 {
		main = lipgloss.JoinHorizontal(lipgloss.Top, transcript, m.renderDocPanel())
	}

	email := ""
	if m.user != nil {
		email = m.user.Email
	}
	docCount := 0
	uploading := false
	if m.docs != nil {
		docCount = len(m.docs.Documents())
		uploading = m.docs.Uploading()
	}
	sending := m.chat != nil && m.chat.Sending()

	statusBar := components.RenderStatusBar(m.theme, components.StatusBarData{
		Email:         email,
		AssistantName: m.assistantName,
		DocumentCount: docCount,
		Sending:       sending,
		Uploading:     uploading,
		IsAdmin:       m.isAdmin,
		Width:         m.width,
	})

	sections := []string{header, main, input, statusBar}
	if toasts := components.RenderToasts(m.toasts, m.width); toasts != "" {
		sections = append(sections, toasts)
	}
	screen := strings.Join(sections, "\n")

	if m.confirm != confirmNone {
		return m.renderConfirmOverlay()
	}
	if m.adminOpen {
		return m.renderAdminOverlay()
	}
	if m.uploading {
		return screen + "\n" + m.renderUploadPrompt()
	}
	return screen
}

func (m *Model) renderHeader() string {
	title := i18n.T("app.title")
	if m.assistantName != "" {
		title += " - " + m.assistantName
	}
	return m.theme.Header.Width(m.width).Render(title)
}

func (m *Model) renderInput() string {
	prompt := m.theme.InputPrompt.Render("> ")
	if m.chat != nil && m.chat.Sending() {
		prompt = m.spin.View() + " " + m.theme.InputPlaceholder.Render(i18n.T("chat.thinking"))
		return m.theme.InputContainer.Width(m.width - 2).Render(prompt)
	}
	return m.theme.InputContainer.Width(m.width - 2).Render(prompt + m.chatInput.View())
}

// =============================================================================
// TRANSCRIPT
// =============================================================================

// refreshViewport re-renders the transcript into the viewport and
// follows the newest message.
func (m *Model) refreshViewport() {
	if !m.ready || m.chat == nil {
		return
	}
	m.viewport.SetContent(m.renderMessages())
	m.viewport.GotoBottom()
}

func (m *Model) renderMessages() string {
	msgs := m.chat.Messages()
	if len(msgs) == 0 {
		return m.theme.InputPlaceholder.Render(i18n.T("chat.placeholder"))
	}

	width := m.chatViewportWidth() - 4
	var blocks []string
	for _, msg := range msgs {
		blocks = append(blocks, m.renderMessage(msg, width))
	}
	return strings.Join(blocks, "\n\n")
}

func (m *Model) renderMessage(msg model.Message, width int) string {
	content := msg.Content

	switch {
	case msg.Pending():
		return m.theme.PendingMessage.Width(width).Render(content + " ...")
	case msg.Role == model.RoleUser:
		return m.theme.UserBubble.Width(width).Render(content)
	default:
		header := ""
		if m.cfg.UI.ShowSourceTags {
			if tag := msg.SourceType.Tag(); tag != "" {
				header = m.theme.SourceTag.Render(tag) + "\n"
			}
		}
		return m.theme.AssistantBubble.Width(width).Render(header + content)
	}
}

// =============================================================================
// DOCUMENT PANEL
// =============================================================================

func (m *Model) renderDocPanel() string {
	var b strings.Builder
	title := i18n.T("docs.title")
	if m.focus == FocusDocs {
		title = m.theme.HeaderTitle.Render(title)
	}
	b.WriteString(title + "\n")

	if m.docs == nil || len(m.docs.Documents()) == 0 {
		b.WriteString(m.theme.InputPlaceholder.Render(i18n.T("docs.empty")))
	} else {
		for i, doc := range m.docs.Documents() {
			b.WriteString(m.renderDocRow(i, doc) + "\n")
		}
	}
	if m.docs != nil && m.docs.Uploading() {
		b.WriteString("\n" + m.spin.View() + " " + i18n.T("docs.uploading"))
	}

	height := m.height - 6
	if height < 3 {
		height = 3
	}
	return m.theme.DocPanel.Width(docPanelWidth).Height(height).Render(b.String())
}

func (m *Model) renderDocRow(index int, doc model.Document) string {
	name := util.TruncateWidth(doc.Filename, docPanelWidth-10)
	line := fmt.Sprintf("%s (%d KB)", name, doc.SizeKB())

	switch {
	case m.docs.Deleting(doc.ID):
		return m.theme.DocDeleting.Render(line)
	case !doc.Processed:
		line = m.theme.DocProcessing.Render(line + " " + i18n.T("docs.processing"))
	default:
		line = m.theme.DocItem.Render(line)
	}
	if m.focus == FocusDocs && index == m.docCursor {
		return m.theme.DocItemSelected.Render("> ") + line
	}
	return "  " + line
}

// =============================================================================
// OVERLAYS
// =============================================================================

func (m *Model) renderUploadPrompt() string {
	return m.theme.OverlayBox.Render(
		i18n.T("docs.uploading") + "\n" + m.pathInput.View() + "\n" +
			m.theme.HeaderSubtitle.Render("Enter to upload, Esc to cancel"))
}

func (m *Model) renderConfirmOverlay() string {
	var b strings.Builder
	switch m.confirm {
	case confirmDeleteDoc:
		b.WriteString(i18n.T("confirm.delete_doc") + "\n")
		b.WriteString(m.theme.DocDeleting.Render(m.confirmDocName))
	case confirmClearChat:
		b.WriteString(i18n.T("confirm.clear_chat"))
	}
	b.WriteString("\n\n" + m.theme.HeaderSubtitle.Render("y to confirm, any other key to cancel"))

	box := m.theme.OverlayBox.Render(b.String())
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}
	return box
}

func (m *Model) renderAdminOverlay() string {
	var b strings.Builder
	b.WriteString(m.theme.HeaderTitle.Render(i18n.T("admin.title")) + "\n")
	b.WriteString(m.theme.HeaderSubtitle.Render(
		i18n.T("admin.current_model")+" "+m.adminCurrent) + "\n\n")

	if len(m.adminModels) == 0 {
		b.WriteString(m.spin.View())
	}
	for i, info := range m.adminModels {
		name := info.DisplayName
		if name == "" {
			name = info.Name
		}
		marker := "  "
		if info.Loaded {
			marker = m.theme.Success.Render("* ")
		}
		row := marker + name
		if i == m.adminCursor {
			row = m.theme.OverlayItemSelected.Render(row)
		} else {
			row = m.theme.OverlayItem.Render(row)
		}
		b.WriteString(row + "\n")
	}
	b.WriteString("\n" + m.theme.HeaderSubtitle.Render("Enter to activate, Esc to close"))

	box := m.theme.OverlayBox.Render(b.String())
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}
	return box
}
