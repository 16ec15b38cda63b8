// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package tasklist

import (
	"github.com/jeranaias/taskdeck/internal/api"
	"github.com/jeranaias/taskdeck/internal/model"
)

// ============================================================================
// Filter state
// ============================================================================

// Completed filter values. The empty string means "all"; the other two
// are the literal strings the list sends to the server, so the value
// doubles as the query parameter.
const (
	CompletedAll  = ""
	CompletedDone = "true"
	CompletedOpen = "false"
)

// Sort keys accepted by the task endpoint.
const (
	SortCreated  = "created_at"
	SortPriority = "priority"
	SortTitle    = "title"
)

// Filters holds the current query criteria for the task list. Every
// mutation produces exactly one refetch; the values map one to one
// onto query parameters.
type Filters struct {
	// Search is matched against title and description server-side.
	Search string

	// Completed is a tri-state: "", "true" or "false".
	Completed string

	// Priority filters to a single level, or "" for all.
	Priority string

	// Sort names the sort key. Empty means server default order.
	Sort string
}

// DefaultFilters returns the criteria the list starts with: everything,
// in the server's default order (newest first).
func DefaultFilters() Filters {
	return Filters{}
}

// CompletedBool maps the tri-state string onto the pointer the API
// client wants: nil for all, otherwise the parsed value.
func (f Filters) CompletedBool() *bool {
	switch f.Completed {
	case CompletedDone:
		v := true
		return &v
	case CompletedOpen:
		v := false
		return &v
	default:
		return nil
	}
}

// API converts the filter state into the client's query struct.
func (f Filters) API() api.TaskFilters {
	return api.TaskFilters{
		Completed: f.CompletedBool(),
		Priority:  f.Priority,
		Search:    f.Search,
		Sort:      f.Sort,
	}
}

// CycleCompleted advances all -> open -> done -> all.
func (f *Filters) CycleCompleted() {
	switch f.Completed {
	case CompletedAll:
		f.Completed = CompletedOpen
	case CompletedOpen:
		f.Completed = CompletedDone
	default:
		f.Completed = CompletedAll
	}
}

// CyclePriority advances all -> high -> medium -> low -> all.
func (f *Filters) CyclePriority() {
	switch f.Priority {
	case "":
		f.Priority = string(model.PriorityHigh)
	case string(model.PriorityHigh):
		f.Priority = string(model.PriorityMedium)
	case string(model.PriorityMedium):
		f.Priority = string(model.PriorityLow)
	default:
		f.Priority = ""
	}
}

// CycleSort advances default -> created_at -> priority -> title -> default.
func (f *Filters) CycleSort() {
	switch f.Sort {
	case "":
		f.Sort = SortCreated
	case SortCreated:
		f.Sort = SortPriority
	case SortPriority:
		f.Sort = SortTitle
	default:
		f.Sort = ""
	}
}

// CompletedLabel renders the tri-state for the status bar.
func (f Filters) CompletedLabel() string {
	switch f.Completed {
	case CompletedDone:
		return "done"
	case CompletedOpen:
		return "open"
	default:
		return "all"
	}
}

// PriorityLabel renders the priority filter for the status bar.
func (f Filters) PriorityLabel() string {
	if f.Priority == "" {
		return "all"
	}
	return f.Priority
}

// SortLabel renders the sort key for the status bar.
func (f Filters) SortLabel() string {
	if f.Sort == "" {
		return "default"
	}
	return f.Sort
}
