// ============================================================================
// kyotamd - Command Language Interpreter
// ============================================================================
//
// Package:     repl
// Description: Styles for the REPL TUI
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package repl

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
)

// Styles groups the styles used by the TUI
type Styles struct {
	Title  lipgloss.Style
	Header lipgloss.Style
	Panel  lipgloss.Style
	Input  lipgloss.Style
	Prompt lipgloss.Style
	Echo   lipgloss.Style
	Output lipgloss.Style
	Value  lipgloss.Style
	Info   lipgloss.Style
	Error  lipgloss.Style
	Alert  lipgloss.Style
	Help   lipgloss.Style
}

// DefaultStyles returns the colored styles
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true),
		Header: lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorDimmed).
			Padding(0, 1),
		Input: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 1),
		Prompt: lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true),
		Echo: lipgloss.NewStyle().
			Foreground(ColorSecondary),
		Output: lipgloss.NewStyle().
			Foreground(ColorText),
		Value: lipgloss.NewStyle().
			Foreground(ColorSuccess),
		Info: lipgloss.NewStyle().
			Foreground(ColorMuted),
		Error: lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true),
		Alert: lipgloss.NewStyle().
			Foreground(ColorText).
			Background(ColorError).
			Bold(true),
		Help: lipgloss.NewStyle().
			Foreground(ColorMuted),
	}
}

// PlainStyles returns styles without colors, keeping the layout
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Title:  plain.Bold(true),
		Header: plain,
		Panel:  plain.Border(lipgloss.NormalBorder()).Padding(0, 1),
		Input:  plain.Border(lipgloss.NormalBorder()).Padding(0, 1),
		Prompt: plain,
		Echo:   plain,
		Output: plain,
		Value:  plain,
		Info:   plain,
		Error:  plain,
		Alert:  plain.Bold(true),
		Help:   plain,
	}
}
