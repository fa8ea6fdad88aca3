// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/jeranaias/privategxt-tui/internal/ui/styles"
)

// StatusBarData holds everything the status bar displays.
type StatusBarData struct {
	Email         string
	AssistantName string
	DocumentCount int
	Sending       bool
	Uploading     bool
	IsAdmin       bool
	Width         int
}

// statusShortcut is one key hint in the right half of the bar.
type statusShortcut struct {
	key  string
	desc string
}

// statusShortcuts lists the always-visible key hints.
var statusShortcuts = []statusShortcut{
	{"Tab", "switch panel"},
	{"Ctrl+U", "upload"},
	{"Ctrl+E", "export"},
	{"Ctrl+C", "quit"},
}

// RenderStatusBar renders the single-line status bar.
func RenderStatusBar(theme *styles.Theme, data StatusBarData) string {
	var left strings.Builder

	if data.Email != "" {
		left.WriteString(data.Email)
	} else {
		left.WriteString("not signed in")
	}
	if data.AssistantName != "" {
		left.WriteString(" | " + data.AssistantName)
	}
	left.WriteString(fmt.Sprintf(" | %d docs", data.DocumentCount))
	if data.Sending {
		left.WriteString(" | " + theme.Warning.Render("sending"))
	}
	if data.Uploading {
		left.WriteString(" | " + theme.Warning.Render("uploading"))
	}
	if data.IsAdmin {
		left.WriteString(" | " + theme.Info.Render("admin"))
	}

	var hints []string
	for _, s := range statusShortcuts {
		hints = append(hints,
			theme.ShortcutKey.Render(s.key)+" "+theme.ShortcutDesc.Render(s.desc))
	}
	right := strings.Join(hints, "  ")

	leftStr := left.String()
	gap := data.Width - lipgloss.Width(leftStr) - lipgloss.Width(right) - 2
	if gap < 1 {
		// Narrow terminal: drop the hints before truncating the status.
		right = ""
		gap = data.Width - lipgloss.Width(leftStr) - 2
		if gap < 0 {
			leftStr = runewidth.Truncate(leftStr, data.Width-2, "...")
			gap = 0
		}
	}

	return theme.StatusBar.Width(data.Width).Render(
		leftStr + strings.Repeat(" ", gap) + right)
}
