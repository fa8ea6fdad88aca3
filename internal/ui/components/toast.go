// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides reusable UI components for the PrivateGxT
// dashboard.
//
// This file implements non-blocking toasts. Unlike modal error dialogs,
// toasts stack in the corner and auto-dismiss, so a failed send or
// upload never traps the user in a dialog.
package components

import (
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/privategxt-tui/internal/ui/styles"
)

// =============================================================================
// TOAST TYPES
// =============================================================================

// ToastKind represents the type of toast notification.
type ToastKind int

const (
	// ToastKindStatus is an informational toast (cyan)
	ToastKindStatus ToastKind = iota
	// ToastKindError is an error toast (rose)
	ToastKindError
	// ToastKindWarning is a warning toast (amber)
	ToastKindWarning
	// ToastKindSuccess is a success toast (emerald)
	ToastKindSuccess
)

// DefaultToastDuration is the auto-dismiss duration for status toasts.
const DefaultToastDuration = 4 * time.Second

// ErrorToastDuration is the auto-dismiss duration for error toasts
// (longer to read).
const ErrorToastDuration = 8 * time.Second

// Toast represents one non-blocking notification.
type Toast struct {
	ID        int
	Message   string
	Kind      ToastKind
	CreatedAt time.Time
	Duration  time.Duration
}

// IsExpired returns true if the toast should be dismissed.
func (t *Toast) IsExpired() bool {
	return time.Since(t.CreatedAt) >= t.Duration
}

// =============================================================================
// TOAST MANAGER
// =============================================================================

// ToastManager manages the visible toast stack, newest first.
type ToastManager struct {
	mu        sync.Mutex
	toasts    []Toast
	nextID    int
	maxToasts int
}

// NewToastManager creates a toast manager showing at most five toasts.
func NewToastManager() *ToastManager {
	return &ToastManager{nextID: 1, maxToasts: 5}
}

// add appends a toast with the given kind and duration.
func (m *ToastManager) add(message string, kind ToastKind, duration time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	toast := Toast{
		ID:        m.nextID,
		Message:   message,
		Kind:      kind,
		CreatedAt: time.Now(),
		Duration:  duration,
	}
	m.nextID++

	m.toasts = append([]Toast{toast}, m.toasts...)
	if len(m.toasts) > m.maxToasts {
		m.toasts = m.toasts[:m.maxToasts]
	}
	return toast.ID
}

// AddError adds an error toast.
func (m *ToastManager) AddError(message string) int {
	return m.add(message, ToastKindError, ErrorToastDuration)
}

// AddWarning adds a warning toast.
func (m *ToastManager) AddWarning(message string) int {
	return m.add(message, ToastKindWarning, DefaultToastDuration)
}

// AddStatus adds an informational toast.
func (m *ToastManager) AddStatus(message string) int {
	return m.add(message, ToastKindStatus, DefaultToastDuration)
}

// AddSuccess adds a success toast.
func (m *ToastManager) AddSuccess(message string) int {
	return m.add(message, ToastKindSuccess, DefaultToastDuration)
}

// Dismiss removes a toast by id.
func (m *ToastManager) Dismiss(id int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, t := range m.toasts {
		if t.ID == id {
			m.toasts = append(m.toasts[:i], m.toasts[i+1:]...)
			return
		}
	}
}

// Sweep drops expired toasts and reports whether any remain.
func (m *ToastManager) Sweep() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	kept := m.toasts[:0]
	for _, t := range m.toasts {
		if !t.IsExpired() {
			kept = append(kept, t)
		}
	}
	m.toasts = kept
	return len(m.toasts) > 0
}

// Toasts returns a copy of the visible toasts, newest first.
func (m *ToastManager) Toasts() []Toast {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Toast, len(m.toasts))
	copy(out, m.toasts)
	return out
}

// =============================================================================
// RENDERING
// =============================================================================

// toastStyle returns the frame style for a toast kind.
func toastStyle(kind ToastKind) lipgloss.Style {
	base := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		Padding(0, 1)
	switch kind {
	case ToastKindError:
		return base.BorderForeground(styles.Rose)
	case ToastKindWarning:
		return base.BorderForeground(styles.Amber)
	case ToastKindSuccess:
		return base.BorderForeground(styles.Emerald)
	default:
		return base.BorderForeground(styles.Cyan)
	}
}

// toastIndicator returns the shape indicator for a toast kind.
func toastIndicator(kind ToastKind) string {
	switch kind {
	case ToastKindError:
		return styles.StatusIndicators.Error
	case ToastKindWarning:
		return styles.StatusIndicators.Warning
	case ToastKindSuccess:
		return styles.StatusIndicators.Success
	default:
		return styles.StatusIndicators.Info
	}
}

// RenderToasts renders the toast stack for the given width.
func RenderToasts(m *ToastManager, width int) string {
	toasts := m.Toasts()
	if len(toasts) == 0 {
		return ""
	}

	maxWidth := width - 4
	if maxWidth < 20 {
		maxWidth = 20
	}

	var rendered []string
	for _, t := range toasts {
		msg := t.Message
		if lipgloss.Width(msg) > maxWidth {
			msg = msg[:maxWidth-3] + "..."
		}
		rendered = append(rendered,
			toastStyle(t.Kind).Render(toastIndicator(t.Kind)+" "+msg))
	}
	return strings.Join(rendered, "\n")
}
