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
// Create form
// ============================================================================

// Form is the new-task entry form. Submitting a valid form issues one
// create request; on success the list appends the server's record and
// the form resets.
type Form struct {
	inputs   [editFieldCount]textinput.Model
	priority model.Priority
	focus    int

	// pending blocks re-submission while a create is in flight.
	pending bool

	// errText shows validation or request failures above the buttons.
	errText string
}

// NewForm returns an empty form with the title focused.
func NewForm() Form {
	var f Form
	title := textinput.New()
	title.Placeholder = "What needs doing?"
	title.CharLimit = 200
	title.Focus()

	desc := textinput.New()
	desc.Placeholder = "Details (optional)"
	desc.CharLimit = 1000

	tags := textinput.New()
	tags.Placeholder = "tags, comma, separated"
	tags.CharLimit = 500

	f.inputs[editFieldTitle] = title
	f.inputs[editFieldDescription] = desc
	f.inputs[editFieldTags] = tags
	return f
}

// Pending reports whether a create request is in flight.
func (f *Form) Pending() bool { return f.pending }

// ErrText returns the form's failure banner, or "".
func (f *Form) ErrText() string { return f.errText }

// Priority returns the selected priority.
func (f *Form) Priority() model.Priority { return f.priority }

// NextField moves focus to the next input, wrapping.
func (f *Form) NextField() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % editFieldCount
	f.inputs[f.focus].Focus()
}

// CyclePriority advances none -> low -> medium -> high -> none.
func (f *Form) CyclePriority() {
	switch f.priority {
	case model.PriorityNone:
		f.priority = model.PriorityLow
	case model.PriorityLow:
		f.priority = model.PriorityMedium
	case model.PriorityMedium:
		f.priority = model.PriorityHigh
	default:
		f.priority = model.PriorityNone
	}
}

// Validate checks the buffered values before a submit. A whitespace
// title fails; every other field is optional.
func (f *Form) Validate() string {
	if strings.TrimSpace(f.inputs[editFieldTitle].Value()) == "" {
		return "Title is required"
	}
	return ""
}

// Draft builds the create payload. New tasks always start incomplete.
func (f *Form) Draft() model.TaskDraft {
	return model.TaskDraft{
		Title:       strings.TrimSpace(f.inputs[editFieldTitle].Value()),
		Description: f.inputs[editFieldDescription].Value(),
		Completed:   false,
		Priority:    f.priority,
		Tags:        f.inputs[editFieldTags].Value(),
	}
}

// UpdateFocused forwards a message to the focused input.
func (f *Form) UpdateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}
