// ============================================================================
// findpay - Payment filter command parsing
// ============================================================================
//
// Package:     shell
// Description: Styles for the interactive findpay shell
// Author:      Mike Stoffels
// Created:     2025-10-17
// License:     MIT
// ============================================================================

package shell

import (
	"github.com/charmbracelet/lipgloss"
)

// Color Palette
var (
	ColorPrimary   = lipgloss.Color("#8B5CF6") // Violet
	ColorSecondary = lipgloss.Color("#06B6D4") // Cyan
	ColorSuccess   = lipgloss.Color("#10B981") // Emerald
	ColorError     = lipgloss.Color("#EF4444") // Red
	ColorMuted     = lipgloss.Color("#6B7280") // Gray
	ColorDimmed    = lipgloss.Color("#374151") // Dark Gray

	ColorText      = lipgloss.Color("#F8FAFC") // Slate 50
	ColorTextMuted = lipgloss.Color("#94A3B8") // Slate 400
)

// Header styles
var (
	LogoStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	SessionStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true)
)

// Scrollback styles
var (
	EchoStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			PaddingLeft(2)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			PaddingLeft(2)

	CodeStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			PaddingLeft(2)
)

// Input styles
var (
	PromptStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	InputTextStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	InputPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorDimmed).
			Padding(0, 1)
)

// HelpStyle renders the key hint line
var HelpStyle = lipgloss.NewStyle().
	Foreground(ColorMuted)
