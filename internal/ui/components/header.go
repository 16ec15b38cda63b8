// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the shared visual widgets for the
// taskdeck TUI: the title bar with pane tabs and the bottom status
// bar.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/taskdeck/internal/ui/styles"
)

// =============================================================================
// HEADER COMPONENT
// =============================================================================

// Pane identifies the active tab.
type Pane int

const (
	PaneTasks Pane = iota
	PaneChat
)

// String returns the display string for the pane.
func (p Pane) String() string {
	switch p {
	case PaneTasks:
		return "Tasks"
	case PaneChat:
		return "Assistant"
	default:
		return "Unknown"
	}
}

// Header is the title bar: app name on the left, pane tabs on the
// right.
type Header struct {
	Title  string
	Active Pane
	Width  int
	theme  *styles.Theme
}

// NewHeader creates a Header with default values.
func NewHeader(theme *styles.Theme) *Header {
	return &Header{
		Title: "taskdeck",
		Width: 80,
		theme: theme,
	}
}

// SetWidth updates the header width.
func (h *Header) SetWidth(width int) {
	h.Width = width
}

// SetActive updates the highlighted tab.
func (h *Header) SetActive(pane Pane) {
	h.Active = pane
}

// Render draws the header line.
func (h *Header) Render() string {
	title := h.theme.HeaderTitle.Render(h.Title)

	tabs := make([]string, 0, 2)
	for _, p := range []Pane{PaneTasks, PaneChat} {
		style := h.theme.TabInactive
		if p == h.Active {
			style = h.theme.TabActive
		}
		tabs = append(tabs, style.Render(p.String()))
	}
	right := strings.Join(tabs, " ")

	gap := h.Width - lipgloss.Width(title) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	return h.theme.Header.Render(title + strings.Repeat(" ", gap) + right)
}
