// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package tasklist

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/taskdeck/internal/api"
	"github.com/jeranaias/taskdeck/internal/model"
)

// ============================================================================
// Commands
// ============================================================================

// FetchTasksCmd issues a list fetch with the given criteria. The
// filters are captured by value at issue time so a later filter change
// cannot retroactively alter an in-flight request.
func FetchTasksCmd(client *api.Client, filters Filters) tea.Cmd {
	return func() tea.Msg {
		tasks, err := client.GetTasks(context.Background(), filters.API())
		return TasksLoadedMsg{Tasks: tasks, Err: err}
	}
}

// ToggleTaskCmd flips a task's completion state server-side.
func ToggleTaskCmd(client *api.Client, id int) tea.Cmd {
	return func() tea.Msg {
		task, err := client.ToggleTaskCompletion(context.Background(), id)
		if err != nil {
			return ToggleResultMsg{ID: id, Err: err}
		}
		return ToggleResultMsg{ID: id, Task: *task}
	}
}

// SaveTaskCmd submits an inline edit as a partial update.
func SaveTaskCmd(client *api.Client, id int, patch model.TaskPatch) tea.Cmd {
	return func() tea.Msg {
		task, err := client.UpdateTask(context.Background(), id, patch)
		if err != nil {
			return SaveResultMsg{ID: id, Err: err}
		}
		return SaveResultMsg{ID: id, Task: *task}
	}
}

// DeleteTaskCmd deletes a task.
func DeleteTaskCmd(client *api.Client, id int) tea.Cmd {
	return func() tea.Msg {
		return DeleteResultMsg{ID: id, Err: client.DeleteTask(context.Background(), id)}
	}
}

// CreateTaskCmd submits the create form.
func CreateTaskCmd(client *api.Client, draft model.TaskDraft) tea.Cmd {
	return func() tea.Msg {
		task, err := client.CreateTask(context.Background(), draft)
		if err != nil {
			return CreateResultMsg{Err: err}
		}
		return CreateResultMsg{Task: *task}
	}
}
