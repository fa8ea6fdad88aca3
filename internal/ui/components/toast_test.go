// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"
	"time"

	"github.com/jeranaias/privategxt-tui/internal/ui/styles"
)

func TestToastManager_NewestFirst(t *testing.T) {
	m := NewToastManager()
	m.AddStatus("first")
	m.AddError("second")

	toasts := m.Toasts()
	if len(toasts) != 2 {
		t.Fatalf("len(Toasts()) = %d, want 2", len(toasts))
	}
	if toasts[0].Message != "second" {
		t.Errorf("toasts[0].Message = %q, want %q", toasts[0].Message, "second")
	}
	if toasts[0].Kind != ToastKindError {
		t.Errorf("toasts[0].Kind = %v, want ToastKindError", toasts[0].Kind)
	}
}

func TestToastManager_MaxToasts(t *testing.T) {
	m := NewToastManager()
	for i := 0; i < 10; i++ {
		m.AddStatus("toast")
	}
	if got := len(m.Toasts()); got != 5 {
		t.Errorf("len(Toasts()) = %d, want 5", got)
	}
}

func TestToastManager_Dismiss(t *testing.T) {
	m := NewToastManager()
	id := m.AddStatus("bye")
	m.AddStatus("stay")

	m.Dismiss(id)

	toasts := m.Toasts()
	if len(toasts) != 1 || toasts[0].Message != "stay" {
		t.Errorf("after Dismiss: %+v, want only %q", toasts, "stay")
	}
}

func TestToastManager_SweepDropsExpired(t *testing.T) {
	m := NewToastManager()
	m.AddStatus("old")
	// Backdate past its duration.
	m.toasts[0].CreatedAt = time.Now().Add(-time.Minute)
	m.AddStatus("fresh")

	if !m.Sweep() {
		t.Error("Sweep() = false, want true while a toast remains")
	}
	toasts := m.Toasts()
	if len(toasts) != 1 || toasts[0].Message != "fresh" {
		t.Errorf("after Sweep: %+v, want only %q", toasts, "fresh")
	}
}

func TestRenderToasts(t *testing.T) {
	m := NewToastManager()

	if out := RenderToasts(m, 80); out != "" {
		t.Errorf("RenderToasts on empty manager = %q, want empty", out)
	}

	m.AddError("upload failed")
	out := RenderToasts(m, 80)
	if !strings.Contains(out, "upload failed") {
		t.Errorf("RenderToasts output missing message: %q", out)
	}
	if !strings.Contains(out, styles.StatusIndicators.Error) {
		t.Errorf("RenderToasts output missing error indicator: %q", out)
	}
}

func TestRenderStatusBar(t *testing.T) {
	theme := styles.NewTheme("dark")
	out := RenderStatusBar(theme, StatusBarData{
		Email:         "a@b.example",
		AssistantName: "Mein Assistent",
		DocumentCount: 3,
		Width:         120,
	})

	for _, want := range []string{"a@b.example", "Mein Assistent", "3 docs"} {
		if !strings.Contains(out, want) {
			t.Errorf("status bar missing %q: %q", want, out)
		}
	}
}

func TestRenderStatusBar_Narrow(t *testing.T) {
	theme := styles.NewTheme("dark")
	// Should not panic on tiny widths.
	_ = RenderStatusBar(theme, StatusBarData{Email: "someone@example.com", Width: 10})
}
