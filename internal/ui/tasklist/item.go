// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package tasklist

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/taskdeck/internal/model"
)

// ============================================================================
// Per-row state
// ============================================================================

// Edit field indexes, in tab order.
const (
	editFieldTitle = iota
	editFieldDescription
	editFieldTags
	editFieldCount
)

// Item wraps one task row with its transient UI state. The task record
// itself is only ever replaced wholesale by a server response; edits
// accumulate in the inputs until saved.
type Item struct {
	Task model.Task

	// editing switches the row from display to inline-edit rendering.
	editing bool

	// confirmDelete arms the y/n prompt for this row.
	confirmDelete bool

	// pending guards against double-submitting a toggle, save or
	// delete while one is already in flight for this row.
	pending bool

	// errText is the row-scoped failure banner, cleared on the next
	// successful operation or when editing restarts.
	errText string

	inputs       [editFieldCount]textinput.Model
	editPriority model.Priority
	focus        int
}

// NewItem wraps a task record for display.
func NewItem(task model.Task) Item {
	return Item{Task: task}
}

// Editing reports whether the row is in inline-edit mode.
func (it *Item) Editing() bool { return it.editing }

// ConfirmingDelete reports whether the y/n delete prompt is armed.
func (it *Item) ConfirmingDelete() bool { return it.confirmDelete }

// Pending reports whether a server operation is in flight for the row.
func (it *Item) Pending() bool { return it.pending }

// ErrText returns the row's failure banner, or "".
func (it *Item) ErrText() string { return it.errText }

// StartEdit seeds the inputs from the current record and enters edit
// mode. Seeding happens here rather than at construction so a cancel
// followed by a re-edit always starts from the latest server state.
func (it *Item) StartEdit() {
	title := textinput.New()
	title.Placeholder = "Title"
	title.CharLimit = 200
	title.SetValue(it.Task.Title)
	title.Focus()

	desc := textinput.New()
	desc.Placeholder = "Description"
	desc.CharLimit = 1000
	desc.SetValue(it.Task.Description)

	tags := textinput.New()
	tags.Placeholder = "tags, comma, separated"
	tags.CharLimit = 500
	tags.SetValue(it.Task.Tags)

	it.inputs[editFieldTitle] = title
	it.inputs[editFieldDescription] = desc
	it.inputs[editFieldTags] = tags
	it.editPriority = it.Task.Priority
	it.focus = editFieldTitle
	it.editing = true
	it.errText = ""
}

// CancelEdit leaves edit mode and discards the buffered values. The
// record is untouched, so cancel is a purely local operation.
func (it *Item) CancelEdit() {
	it.editing = false
	it.errText = ""
}

// NextField moves focus to the next edit input, wrapping.
func (it *Item) NextField() {
	it.inputs[it.focus].Blur()
	it.focus = (it.focus + 1) % editFieldCount
	it.inputs[it.focus].Focus()
}

// CyclePriority advances the buffered priority none -> low -> medium
// -> high -> none.
func (it *Item) CyclePriority() {
	switch it.editPriority {
	case model.PriorityNone:
		it.editPriority = model.PriorityLow
	case model.PriorityLow:
		it.editPriority = model.PriorityMedium
	case model.PriorityMedium:
		it.editPriority = model.PriorityHigh
	default:
		it.editPriority = model.PriorityNone
	}
}

// Validate checks the buffered values before a save.
func (it *Item) Validate() string {
	if strings.TrimSpace(it.inputs[editFieldTitle].Value()) == "" {
		return "Title is required"
	}
	return ""
}

// Patch builds the partial update from the buffered edit values. All
// editable fields are sent; completion is never part of an inline
// edit, it has its own toggle path.
func (it *Item) Patch() model.TaskPatch {
	title := strings.TrimSpace(it.inputs[editFieldTitle].Value())
	desc := it.inputs[editFieldDescription].Value()
	tags := it.inputs[editFieldTags].Value()
	prio := it.editPriority
	return model.TaskPatch{
		Title:       &title,
		Description: &desc,
		Tags:        &tags,
		Priority:    &prio,
	}
}

// ApplySave replaces the record with the server's response and leaves
// edit mode.
func (it *Item) ApplySave(task model.Task) {
	it.Task = task
	it.editing = false
	it.pending = false
	it.errText = ""
}

// UpdateFocused forwards a message to the focused edit input.
func (it *Item) UpdateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	it.inputs[it.focus], cmd = it.inputs[it.focus].Update(msg)
	return cmd
}
