// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package app composes the task and assistant panes into the full
// terminal application: a tabbed shell with a shared header and
// status bar.
package app

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/taskdeck/internal/api"
	"github.com/jeranaias/taskdeck/internal/ui/chat"
	"github.com/jeranaias/taskdeck/internal/ui/components"
	"github.com/jeranaias/taskdeck/internal/ui/styles"
	"github.com/jeranaias/taskdeck/internal/ui/tasklist"
)

// Model is the root bubbletea model.
type Model struct {
	theme *styles.Theme

	tasks tasklist.Model
	chat  chat.Model

	header    *components.Header
	statusBar *components.StatusBar
	active    components.Pane

	width  int
	height int
}

// New builds the shell around a shared API client.
func New(client *api.Client, theme *styles.Theme) Model {
	return Model{
		theme:     theme,
		tasks:     tasklist.New(client, theme),
		chat:      chat.New(client, theme),
		header:    components.NewHeader(theme),
		statusBar: components.NewStatusBar(theme),
	}
}

// Init starts both panes.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.tasks.Init(), m.chat.Init())
}

// Update routes messages to the owning pane. Result messages carry
// their own types, so each lands in the pane that issued the request
// no matter which pane is active.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.header.SetWidth(msg.Width)
		m.statusBar.SetWidth(msg.Width)
		paneHeight := max(4, msg.Height-4)
		m.tasks.SetSize(msg.Width, paneHeight)
		m.chat.SetSize(msg.Width, paneHeight)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q":
			if m.active == components.PaneTasks && !m.tasks.InputActive() {
				return m, tea.Quit
			}
		case "tab":
			if m.active == components.PaneChat || !m.tasks.InputActive() {
				m.togglePane()
				return m, nil
			}
		}
		return m.routeToActive(msg)

	case tasklist.TasksLoadedMsg, tasklist.ToggleResultMsg, tasklist.SaveResultMsg,
		tasklist.DeleteResultMsg, tasklist.CreateResultMsg:
		var cmd tea.Cmd
		m.tasks, cmd = m.tasks.Update(msg)
		return m, cmd

	case chat.ReplyMsg:
		var cmd tea.Cmd
		m.chat, cmd = m.chat.Update(msg)
		return m, cmd

	case spinner.TickMsg:
		var cmds []tea.Cmd
		var cmd tea.Cmd
		m.tasks, cmd = m.tasks.Update(msg)
		cmds = append(cmds, cmd)
		m.chat, cmd = m.chat.Update(msg)
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)
	}
	return m.routeToActive(msg)
}

func (m Model) routeToActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.active == components.PaneTasks {
		m.tasks, cmd = m.tasks.Update(msg)
	} else {
		m.chat, cmd = m.chat.Update(msg)
	}
	return m, cmd
}

func (m *Model) togglePane() {
	if m.active == components.PaneTasks {
		m.active = components.PaneChat
	} else {
		m.active = components.PaneTasks
	}
	m.header.SetActive(m.active)
	m.statusBar.SetShortcuts(m.shortcuts())
}

// View renders header, active pane and status bar.
func (m Model) View() string {
	m.header.SetActive(m.active)
	m.statusBar.SetShortcuts(m.shortcuts())

	var pane string
	if m.active == components.PaneTasks {
		pane = m.tasks.View()
	} else {
		pane = m.chat.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.header.Render(),
		m.theme.Container.Render(pane),
		m.statusBar.Render(),
	)
}

func (m Model) shortcuts() []components.Shortcut {
	if m.active == components.PaneChat {
		return []components.Shortcut{
			{Key: "enter", Desc: "send"},
			{Key: "tab", Desc: "tasks"},
			{Key: "ctrl+c", Desc: "quit"},
		}
	}
	return []components.Shortcut{
		{Key: "space", Desc: "toggle"},
		{Key: "e", Desc: "edit"},
		{Key: "d", Desc: "delete"},
		{Key: "n", Desc: "new"},
		{Key: "/", Desc: "search"},
		{Key: "tab", Desc: "chat"},
		{Key: "q", Desc: "quit"},
	}
}
