// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package tasklist

import "github.com/jeranaias/taskdeck/internal/model"

// ============================================================================
// Messages
// ============================================================================

// TasksLoadedMsg carries the result of a list fetch. Results apply in
// arrival order with no request fencing, so when criteria change
// rapidly the last response to land wins regardless of issue order.
type TasksLoadedMsg struct {
	Tasks []model.Task
	Err   error
}

// ToggleResultMsg carries the outcome of a completion toggle for one
// task. On success Task is the server's authoritative record.
type ToggleResultMsg struct {
	ID   int
	Task model.Task
	Err  error
}

// SaveResultMsg carries the outcome of an inline edit save.
type SaveResultMsg struct {
	ID   int
	Task model.Task
	Err  error
}

// DeleteResultMsg carries the outcome of a delete.
type DeleteResultMsg struct {
	ID  int
	Err error
}

// CreateResultMsg carries the outcome of submitting the create form.
type CreateResultMsg struct {
	Task model.Task
	Err  error
}
