// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package dashboard

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/privategxt-tui/internal/admin"
	"github.com/jeranaias/privategxt-tui/internal/api"
	"github.com/jeranaias/privategxt-tui/internal/assistant"
	"github.com/jeranaias/privategxt-tui/internal/auth"
	"github.com/jeranaias/privategxt-tui/internal/chat"
	"github.com/jeranaias/privategxt-tui/internal/config"
	"github.com/jeranaias/privategxt-tui/internal/documents"
	"github.com/jeranaias/privategxt-tui/internal/i18n"
	"github.com/jeranaias/privategxt-tui/internal/model"
	"github.com/jeranaias/privategxt-tui/internal/ui/components"
	"github.com/jeranaias/privategxt-tui/internal/ui/styles"
)

// View identifies the active screen.
type View int

const (
	// ViewLoading is shown while the stored session settles.
	ViewLoading View = iota
	// ViewLogin collects credentials.
	ViewLogin
	// ViewDashboard is the main chat + documents screen.
	ViewDashboard
)

// Focus identifies which dashboard panel receives key input.
type Focus int

const (
	// FocusChat routes keys to the message input.
	FocusChat Focus = iota
	// FocusDocs routes keys to the document list.
	FocusDocs
)

// confirmAction identifies which destructive call awaits confirmation.
// Deletes never fire straight off a keypress; the key arms the prompt and
// only an explicit yes issues the network call.
type confirmAction int

const (
	confirmNone confirmAction = iota
	confirmDeleteDoc
	confirmClearChat
)

// loginField tracks which login input is active.
type loginField int

const (
	fieldEmail loginField = iota
	fieldPassword
)

// Model is the Bubble Tea model for the dashboard.
type Model struct {
	// Services
	cfg      *config.Config
	client   *api.Client
	auth     *auth.Manager
	resolver *assistant.Resolver
	admin    *admin.Service
	chat     *chat.Controller
	docs     *documents.Manager

	// Session
	user          *model.User
	assistantName string
	isAdmin       bool

	// Screen state
	view      View
	focus     Focus
	width     int
	height    int
	theme     *styles.Theme
	toasts    *components.ToastManager
	spin      spinner.Model
	quitting  bool
	statusMsg string

	// Login inputs
	emailInput    textinput.Model
	passwordInput textinput.Model
	activeField   loginField

	// Chat
	chatInput textinput.Model
	viewport  viewport.Model
	ready     bool

	// Upload prompt (modal path input)
	uploading bool
	pathInput textinput.Model

	// Document cursor
	docCursor int

	// Pending confirmation prompt
	confirm        confirmAction
	confirmDocID   int64
	confirmDocName string

	// Admin overlay
	adminOpen    bool
	adminModels  []api.ModelInfo
	adminCurrent string
	adminCursor  int
}

// New creates the dashboard model around already-wired services.
func New(cfg *config.Config, client *api.Client, authMgr *auth.Manager, resolver *assistant.Resolver) *Model {
	theme := styles.NewTheme(cfg.UI.Theme)

	email := textinput.New()
	email.Placeholder = i18n.T("login.email")
	email.Focus()
	email.CharLimit = 254

	password := textinput.New()
	password.Placeholder = i18n.T("login.password")
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	input := textinput.New()
	input.Placeholder = i18n.T("chat.placeholder")
	input.CharLimit = 4000

	path := textinput.New()
	path.Placeholder = "path/to/document.pdf"

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = theme.Spinner

	return &Model{
		cfg:           cfg,
		client:        client,
		auth:          authMgr,
		resolver:      resolver,
		admin:         admin.NewService(client),
		view:          ViewLoading,
		theme:         theme,
		toasts:        components.NewToastManager(),
		spin:          spin,
		emailInput:    email,
		passwordInput: password,
		chatInput:     input,
		pathInput:     path,
	}
}

// Init starts the session bootstrap, the spinner, and the UI tick.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.bootstrapCmd(), m.spin.Tick, tickCmd())
}

// busy reports whether a gateway operation is in flight.
func (m *Model) busy() bool {
	if m.chat != nil && m.chat.Sending() {
		return true
	}
	if m.docs != nil && m.docs.Uploading() {
		return true
	}
	return false
}

// selectedDoc returns the document under the cursor, if any.
func (m *Model) selectedDoc() (model.Document, bool) {
	if m.docs == nil {
		return model.Document{}, false
	}
	docs := m.docs.Documents()
	if m.docCursor < 0 || m.docCursor >= len(docs) {
		return model.Document{}, false
	}
	return docs[m.docCursor], true
}

// clampDocCursor keeps the cursor inside the current document list.
func (m *Model) clampDocCursor() {
	if m.docs == nil {
		m.docCursor = 0
		return
	}
	n := len(m.docs.Documents())
	if m.docCursor >= n {
		m.docCursor = n - 1
	}
	if m.docCursor < 0 {
		m.docCursor = 0
	}
}
