// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the PrivateGxT
// dashboard.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds all the styled components for the dashboard. It detects
// the terminal's color capability and adjusts accordingly; the
// configured theme name can force light or dark rendering.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// ==========================================================================
	// APPLICATION CONTAINER STYLES
	// ==========================================================================

	App       lipgloss.Style
	Container lipgloss.Style

	// ==========================================================================
	// HEADER STYLES
	// ==========================================================================

	Header         lipgloss.Style
	HeaderTitle    lipgloss.Style
	HeaderSubtitle lipgloss.Style

	// ==========================================================================
	// MESSAGE STYLES
	// ==========================================================================

	UserBubble      lipgloss.Style
	AssistantBubble lipgloss.Style
	PendingMessage  lipgloss.Style
	SourceTag       lipgloss.Style

	// ==========================================================================
	// DOCUMENT PANEL STYLES
	// ==========================================================================

	DocPanel        lipgloss.Style
	DocItem         lipgloss.Style
	DocItemSelected lipgloss.Style
	DocProcessing   lipgloss.Style
	DocDeleting     lipgloss.Style

	// ==========================================================================
	// INPUT AREA STYLES
	// ==========================================================================

	InputContainer   lipgloss.Style
	InputPrompt      lipgloss.Style
	InputPlaceholder lipgloss.Style

	// ==========================================================================
	// STATUS BAR STYLES
	// ==========================================================================

	StatusBar    lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style

	// ==========================================================================
	// OVERLAY STYLES
	// ==========================================================================

	OverlayBox          lipgloss.Style
	OverlayItem         lipgloss.Style
	OverlayItemSelected lipgloss.Style

	// ==========================================================================
	// STATE STYLES
	// ==========================================================================

	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
	Spinner lipgloss.Style
}

// NewTheme creates a theme for the named variant: "dark", "light", or
// "auto". Auto follows the terminal's reported background.
func NewTheme(name string) *Theme {
	colorProfile := termenv.ColorProfile()

	isDark := termenv.HasDarkBackground()
	switch name {
	case "dark":
		isDark = true
	case "light":
		isDark = false
	}
	lipgloss.SetHasDarkBackground(isDark)

	t := &Theme{
		IsDark:       isDark,
		HasTrueColor: colorProfile == termenv.TrueColor,
		ColorProfile: colorProfile,
	}
	t.initStyles()
	return t
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	t.App = lipgloss.NewStyle()
	t.Container = lipgloss.NewStyle().Padding(0, 1)

	// Header
	t.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(Cyan).
		Background(SurfaceDim).
		Padding(0, 2)

	t.HeaderTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Cyan)

	t.HeaderSubtitle = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Italic(true)

	// Messages
	t.UserBubble = lipgloss.NewStyle().
		Foreground(UserBubbleFg).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(UserBubbleBorder).
		BorderLeft(true).
		PaddingLeft(1).
		MarginLeft(2)

	t.AssistantBubble = lipgloss.NewStyle().
		Foreground(AssistantBubbleFg).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(AssistantBubbleBorder).
		BorderLeft(true).
		PaddingLeft(1)

	t.PendingMessage = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(Overlay).
		BorderLeft(true).
		PaddingLeft(1).
		MarginLeft(2)

	t.SourceTag = lipgloss.NewStyle().
		Foreground(Purple).
		Bold(true)

	// Document panel
	t.DocPanel = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.DocItem = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.DocItemSelected = lipgloss.NewStyle().
		Background(Purple).
		Foreground(TextInverse).
		Bold(true)

	t.DocProcessing = lipgloss.NewStyle().
		Foreground(Amber).
		Italic(true)

	t.DocDeleting = lipgloss.NewStyle().
		Foreground(Rose).
		Strikethrough(true)

	// Input area
	t.InputContainer = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.InputPrompt = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.InputPlaceholder = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	// Status bar
	t.StatusBar = lipgloss.NewStyle().
		Background(SurfaceDim).
		Foreground(TextSecondary).
		Padding(0, 1)

	t.ShortcutKey = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.ShortcutDesc = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Overlays (admin model picker, confirmation prompts)
	t.OverlayBox = lipgloss.NewStyle().
		Background(Surface).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Purple).
		Padding(1, 2)

	t.OverlayItem = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Padding(0, 1)

	t.OverlayItemSelected = lipgloss.NewStyle().
		Background(Purple).
		Foreground(TextInverse).
		Bold(true).
		Padding(0, 1)

	// States
	t.Success = lipgloss.NewStyle().Foreground(Emerald).Bold(true)
	t.Error = lipgloss.NewStyle().Foreground(Rose).Bold(true)
	t.Warning = lipgloss.NewStyle().Foreground(Amber).Bold(true)
	t.Info = lipgloss.NewStyle().Foreground(Cyan)
	t.Spinner = lipgloss.NewStyle().Foreground(Purple)
}

// RenderSuccess renders a success message with its shape indicator.
func (t *Theme) RenderSuccess(message string) string {
	return t.Success.Render(StatusIndicators.Success + " " + message)
}

// RenderError renders an error message with its shape indicator.
func (t *Theme) RenderError(message string) string {
	return t.Error.Render(StatusIndicators.Error + " " + message)
}

// RenderWarning renders a warning message with its shape indicator.
func (t *Theme) RenderWarning(message string) string {
	return t.Warning.Render(StatusIndicators.Warning + " " + message)
}

// RenderInfo renders an info message with its shape indicator.
func (t *Theme) RenderInfo(message string) string {
	return t.Info.Render(StatusIndicators.Info + " " + message)
}
