// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/taskdeck/internal/api"
	"github.com/jeranaias/taskdeck/internal/model"
	"github.com/jeranaias/taskdeck/internal/ui/components"
	"github.com/jeranaias/taskdeck/internal/ui/styles"
	"github.com/jeranaias/taskdeck/internal/ui/tasklist"
)

func newTestApp() Model {
	m := New(api.NewClient(""), styles.NewTheme())
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return next.(Model)
}

func TestTabSwitchesPane(t *testing.T) {
	m := newTestApp()
	if m.active != components.PaneTasks {
		t.Fatal("tasks pane should start active")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(Model)
	if m.active != components.PaneChat {
		t.Fatal("tab should switch to the assistant")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(Model)
	if m.active != components.PaneTasks {
		t.Fatal("tab should switch back")
	}
}

func TestCtrlCQuits(t *testing.T) {
	m := newTestApp()
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c should quit")
	}
}

func TestResultRoutesToInactivePane(t *testing.T) {
	m := newTestApp()

	// Switch to chat, then deliver a task list result; it must still
	// land in the task pane.
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(Model)

	next, _ = m.Update(tasklist.TasksLoadedMsg{Tasks: []model.Task{{ID: 1, Title: "a"}}})
	m = next.(Model)

	if len(m.tasks.Tasks()) != 1 {
		t.Fatal("task result should reach the task pane while chat is active")
	}
}

func TestViewRenders(t *testing.T) {
	m := newTestApp()
	if m.View() == "" {
		t.Fatal("view should render")
	}
}
