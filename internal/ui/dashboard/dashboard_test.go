// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package dashboard

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/privategxt-tui/internal/api"
	"github.com/jeranaias/privategxt-tui/internal/assistant"
	"github.com/jeranaias/privategxt-tui/internal/auth"
	"github.com/jeranaias/privategxt-tui/internal/chat"
	"github.com/jeranaias/privategxt-tui/internal/config"
	"github.com/jeranaias/privategxt-tui/internal/documents"
	"github.com/jeranaias/privategxt-tui/internal/model"
	"github.com/jeranaias/privategxt-tui/internal/ui/components"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	cfg := config.Default()
	client := api.NewClient("http://127.0.0.1:1")
	store := auth.NewStore(filepath.Join(t.TempDir(), "token"))
	mgr := auth.NewManager(client, store)
	return New(cfg, client, mgr, assistant.NewResolver(client))
}

func TestNew_StartsLoading(t *testing.T) {
	m := newTestModel(t)
	if m.view != ViewLoading {
		t.Errorf("view = %v, want ViewLoading", m.view)
	}
	if m.Init() == nil {
		t.Error("Init() returned nil command")
	}
}

func TestBootstrap_Unauthenticated_ShowsLogin(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(BootstrapDoneMsg{State: auth.StateUnauthenticated})

	got := updated.(*Model)
	if got.view != ViewLogin {
		t.Errorf("view = %v, want ViewLogin", got.view)
	}
}

func TestBootstrap_Authenticated_ShowsDashboard(t *testing.T) {
	m := newTestModel(t)
	user := &model.User{ID: 1, Email: "a@b.example"}
	updated, cmd := m.Update(BootstrapDoneMsg{State: auth.StateAuthenticated, User: user})

	got := updated.(*Model)
	if got.view != ViewDashboard {
		t.Errorf("view = %v, want ViewDashboard", got.view)
	}
	if got.user == nil || got.user.Email != "a@b.example" {
		t.Errorf("user = %+v, want the bootstrapped user", got.user)
	}
	if cmd == nil {
		t.Error("expected an assistant resolve command")
	}
}

func TestAssistantResolved_WiresChatAndDocs(t *testing.T) {
	m := newTestModel(t)
	asst := &model.Assistant{ID: 7, Name: "Mein Assistent"}
	updated, cmd := m.Update(AssistantResolvedMsg{Assistant: asst})

	got := updated.(*Model)
	if got.chat == nil {
		t.Error("chat controller not created")
	}
	if got.docs == nil {
		t.Error("documents manager not created")
	}
	if got.assistantName != "Mein Assistent" {
		t.Errorf("assistantName = %q", got.assistantName)
	}
	if cmd == nil {
		t.Error("expected load commands after resolve")
	}
}

func TestLoginKey_TabSwitchesFields(t *testing.T) {
	m := newTestModel(t)
	m.view = ViewLogin

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	got := updated.(*Model)
	if got.activeField != fieldPassword {
		t.Errorf("activeField = %v, want fieldPassword", got.activeField)
	}

	updated, _ = got.Update(tea.KeyMsg{Type: tea.KeyTab})
	got = updated.(*Model)
	if got.activeField != fieldEmail {
		t.Errorf("activeField = %v, want fieldEmail", got.activeField)
	}
}

func TestLoginKey_EmptyPasswordRequestsMagicLink(t *testing.T) {
	m := newTestModel(t)
	m.view = ViewLogin
	m.emailInput.SetValue("a@b.example")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a magic link command")
	}
	msg := cmd()
	if _, ok := msg.(MagicLinkSentMsg); !ok {
		t.Errorf("cmd produced %T, want MagicLinkSentMsg", msg)
	}
}

func TestLoginKey_EmptyEmailDoesNothing(t *testing.T) {
	m := newTestModel(t)
	m.view = ViewLogin

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("expected no command for empty email")
	}
}

func TestCtrlC_Quits(t *testing.T) {
	m := newTestModel(t)
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	if !updated.(*Model).quitting {
		t.Error("quitting = false, want true")
	}
	if cmd == nil {
		t.Fatal("expected tea.Quit command")
	}
}

func TestDashboardKey_TabTogglesFocus(t *testing.T) {
	m := newTestModel(t)
	m.view = ViewDashboard
	m.focus = FocusChat

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	got := updated.(*Model)
	if got.focus != FocusDocs {
		t.Errorf("focus = %v, want FocusDocs", got.focus)
	}

	updated, _ = got.Update(tea.KeyMsg{Type: tea.KeyTab})
	if updated.(*Model).focus != FocusChat {
		t.Error("second Tab should return focus to the chat input")
	}
}

func TestClampDocCursor(t *testing.T) {
	m := newTestModel(t)
	m.docCursor = 5
	m.clampDocCursor()
	if m.docCursor != 0 {
		t.Errorf("docCursor = %d, want 0 with no documents", m.docCursor)
	}
}

func TestLoginResult_FailureKeepsLoginView(t *testing.T) {
	m := newTestModel(t)
	m.view = ViewLogin
	m.passwordInput.SetValue("secret")

	updated, _ := m.Update(LoginResultMsg{Email: "a@b.example", Err: api.ErrUnauthorized})
	got := updated.(*Model)
	if got.view != ViewLogin {
		t.Errorf("view = %v, want ViewLogin after failed login", got.view)
	}
	if got.passwordInput.Value() != "" {
		t.Error("password input should be cleared after a failed login")
	}
	if len(got.toasts.Toasts()) == 0 {
		t.Error("expected an error toast after failed login")
	}
}

func TestUploadPrompt_EscCancels(t *testing.T) {
	m := newTestModel(t)
	m.view = ViewDashboard
	m.uploading = true

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if updated.(*Model).uploading {
		t.Error("uploading prompt should close on Esc")
	}
}

func TestAdminProbed_NonAdminStaysClosed(t *testing.T) {
	m := newTestModel(t)
	m.view = ViewDashboard

	updated, cmd := m.Update(AdminProbedMsg{IsAdmin: false})
	got := updated.(*Model)
	if got.adminOpen {
		t.Error("admin overlay should stay closed for non-admins")
	}
	if cmd != nil {
		t.Error("expected no follow-up command for non-admins")
	}
}

func TestAdminProbed_AdminOpensOverlay(t *testing.T) {
	m := newTestModel(t)
	m.view = ViewDashboard

	updated, cmd := m.Update(AdminProbedMsg{IsAdmin: true})
	got := updated.(*Model)
	if !got.adminOpen {
		t.Error("admin overlay should open for admins")
	}
	if cmd == nil {
		t.Error("expected a model list command for admins")
	}
}

// newDocsModel wires the model to a gateway serving one document, with
// the cursor on it and the document panel focused.
func newDocsModel(t *testing.T) *Model {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id": 9, "filename": "notes.pdf", "processed": true}]`))
	}))
	t.Cleanup(srv.Close)
	client := api.NewClient(srv.URL).WithHTTPClient(srv.Client())
	client.SetToken("tok")

	m := newTestModel(t)
	m.view = ViewDashboard
	m.focus = FocusDocs
	m.docs = documents.NewManager(client, 1)
	if err := m.docs.Refresh(context.Background()); err != nil {
		t.Fatalf("seeding documents failed: %v", err)
	}
	return m
}

func TestDocsKey_DeleteArmsConfirmation(t *testing.T) {
	m := newDocsModel(t)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
	got := updated.(*Model)
	if cmd != nil {
		t.Error("the delete key alone must not issue the delete call")
	}
	if got.confirm != confirmDeleteDoc {
		t.Errorf("confirm = %v, want confirmDeleteDoc", got.confirm)
	}
	if got.confirmDocID != 9 {
		t.Errorf("confirmDocID = %d, want 9", got.confirmDocID)
	}
}

func TestConfirmKey_YesFiresDocDelete(t *testing.T) {
	m := newDocsModel(t)
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
	got := updated.(*Model)
	if cmd == nil {
		t.Fatal("confirming should issue the delete command")
	}
	if got.confirm != confirmNone {
		t.Error("confirmation prompt should be closed after confirming")
	}
}

func TestConfirmKey_AnyOtherKeyCancels(t *testing.T) {
	m := newDocsModel(t)
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	got := updated.(*Model)
	if cmd != nil {
		t.Error("cancelling must not issue any command")
	}
	if got.confirm != confirmNone {
		t.Error("confirmation prompt should be closed after cancelling")
	}
	if len(m.docs.Documents()) != 1 {
		t.Error("the document must survive a cancelled delete")
	}
}

func TestCtrlL_ArmsClearConfirmation(t *testing.T) {
	m := newTestModel(t)
	m.view = ViewDashboard
	m.chat = chat.NewController(m.client, 1)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlL})
	got := updated.(*Model)
	if cmd != nil {
		t.Error("Ctrl+L alone must not issue the clear call")
	}
	if got.confirm != confirmClearChat {
		t.Errorf("confirm = %v, want confirmClearChat", got.confirm)
	}

	updated, cmd = got.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
	if cmd == nil {
		t.Fatal("confirming should issue the clear command")
	}
	if updated.(*Model).confirm != confirmNone {
		t.Error("confirmation prompt should be closed after confirming")
	}
}

func TestChatCleared_EmptyTranscriptShowsNotice(t *testing.T) {
	m := newTestModel(t)
	m.view = ViewDashboard

	updated, _ := m.Update(ChatClearedMsg{Err: chat.ErrNothingToClear})
	toasts := updated.(*Model).toasts.Toasts()
	if len(toasts) == 0 {
		t.Fatal("expected an informational toast")
	}
	if toasts[0].Kind == components.ToastKindError {
		t.Error("an empty transcript is not an error")
	}
}

func TestResize_CreatesViewport(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	got := updated.(*Model)
	if !got.ready {
		t.Error("ready = false after resize")
	}
	if got.width != 120 || got.height != 40 {
		t.Errorf("size = %dx%d, want 120x40", got.width, got.height)
	}
}
