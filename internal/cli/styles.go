// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// styles.go - Centralized styling for all CLI commands in taskdeck.
//
// Color handling:
// - Colors are automatically disabled for non-TTY output (piped, redirected)
// - Respects NO_COLOR environment variable (https://no-color.org/)
// - Supports FORCE_COLOR environment variable to override detection
package cli

import (
	"github.com/charmbracelet/lipgloss"
)

// init configures lipgloss color profile based on terminal capabilities.
func init() {
	lipgloss.SetColorProfile(GetColorProfile())
}

// =============================================================================
// SHARED STYLES FOR ALL CLI COMMANDS
// =============================================================================

var (
	// TitleStyle is used for command titles and headers
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99"))

	// LabelStyle is used for field labels
	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	// DoneStyle renders completed task markers
	DoneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	// OpenStyle renders incomplete task markers
	OpenStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	// ErrorStyle renders failure messages
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("203"))

	// SuccessStyle renders confirmation messages
	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	// MutedStyle renders secondary detail lines
	MutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// PriorityStyles maps priority names to their colors
	PriorityStyles = map[string]lipgloss.Style{
		"high":   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		"medium": lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		"low":    lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
	}
)

// priorityStyle returns the style for a priority name, muted when
// unknown or unset.
func priorityStyle(p string) lipgloss.Style {
	if s, ok := PriorityStyles[p]; ok {
		return s
	}
	return MutedStyle
}
