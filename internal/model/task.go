// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures exchanged with the task service.
package model

import "strings"

// =============================================================================
// PRIORITY TYPE
// =============================================================================

// Priority is the urgency level of a task. The empty string means unset.
type Priority string

const (
	PriorityNone   Priority = ""
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Priorities lists the assignable priority values in descending urgency.
var Priorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

// String returns the string representation of the priority.
func (p Priority) String() string {
	return string(p)
}

// IsValid reports whether p is unset or one of the three known levels.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityNone, PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Rank returns a sortable rank for display ordering. Lower is more urgent;
// unset sorts last.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	default:
		return 3
	}
}

// DisplayName returns a human-readable label for the priority.
func (p Priority) DisplayName() string {
	switch p {
	case PriorityHigh:
		return "High"
	case PriorityMedium:
		return "Medium"
	case PriorityLow:
		return "Low"
	default:
		return "None"
	}
}

// =============================================================================
// TASK TYPE
// =============================================================================

// Task is a single todo record as served by the backend.
//
// The id is assigned by the server and is the sole identity key: two tasks
// are the same record iff their IDs are equal. Mutation responses carry the
// full record, which replaces the prior one wholesale — fields are never
// merged client-side.
type Task struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Completed   bool     `json:"completed"`
	Priority    Priority `json:"priority,omitempty"`

	// Tags is a comma-separated blob. It is stored and transmitted verbatim;
	// splitting happens only at render time (see TagList).
	Tags string `json:"tags,omitempty"`

	// Timestamps are ISO-8601 strings straight off the wire. They are only
	// ever compared to each other as strings, never parsed.
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`

	// UserID is an opaque owner reference passed through untouched.
	UserID *int `json:"user_id,omitempty"`
}

// TagList splits the Tags blob on literal commas and trims each segment.
// A blank field yields nil. Empty segments between commas are kept, matching
// the server's lack of escaping for embedded commas.
func (t Task) TagList() []string {
	if strings.TrimSpace(t.Tags) == "" {
		return nil
	}
	parts := strings.Split(t.Tags, ",")
	tags := make([]string, len(parts))
	for i, p := range parts {
		tags[i] = strings.TrimSpace(p)
	}
	return tags
}

// WasUpdated reports whether the record has been modified since creation.
// The comparison is plain string inequality on the serialized timestamps.
func (t Task) WasUpdated() bool {
	return t.UpdatedAt != t.CreatedAt
}

// =============================================================================
// TASK DRAFT
// =============================================================================

// TaskDraft is the payload for creating a task. The server assigns id and
// timestamps, so the draft carries neither.
type TaskDraft struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Completed   bool     `json:"completed"`
	Priority    Priority `json:"priority,omitempty"`
	Tags        string   `json:"tags,omitempty"`
}

// TaskPatch holds the fields an edit may change. Nil fields are omitted from
// the request body so the server leaves them untouched.
type TaskPatch struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Completed   *bool     `json:"completed,omitempty"`
	Priority    *Priority `json:"priority,omitempty"`
	Tags        *string   `json:"tags,omitempty"`
}
