// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"reflect"
	"testing"
)

// =============================================================================
// TAG PARSING TESTS
// =============================================================================

func TestTaskTagList(t *testing.T) {
	tests := []struct {
		name string
		tags string
		want []string
	}{
		{"empty", "", nil},
		{"whitespace only", "   ", nil},
		{"single", "fitness", []string{"fitness"}},
		{"split and trim", "fitness, evening", []string{"fitness", "evening"}},
		{"untrimmed segments", "  a ,b ,  c", []string{"a", "b", "c"}},
		// Embedded commas are not escaped; empty segments survive.
		{"empty segment kept", "a,,b", []string{"a", "", "b"}},
		{"trailing comma", "a,", []string{"a", ""}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Task{Tags: tc.tags}.TagList()
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("TagList(%q) = %#v, want %#v", tc.tags, got, tc.want)
			}
		})
	}
}

// =============================================================================
// TIMESTAMP ANNOTATION TESTS
// =============================================================================

func TestTaskWasUpdated(t *testing.T) {
	task := Task{
		CreatedAt: "2024-03-01T10:00:00Z",
		UpdatedAt: "2024-03-01T10:00:00Z",
	}
	if task.WasUpdated() {
		t.Error("WasUpdated() = true for identical timestamps")
	}

	task.UpdatedAt = "2024-03-02T08:30:00Z"
	if !task.WasUpdated() {
		t.Error("WasUpdated() = false after updated_at changed")
	}

	// The comparison is string inequality, not time-aware: a differently
	// formatted but equal instant still counts as updated.
	task.UpdatedAt = "2024-03-01T10:00:00+00:00"
	if !task.WasUpdated() {
		t.Error("WasUpdated() should compare strings, not instants")
	}
}

// =============================================================================
// PRIORITY TESTS
// =============================================================================

func TestPriorityIsValid(t *testing.T) {
	for _, p := range []Priority{PriorityNone, PriorityHigh, PriorityMedium, PriorityLow} {
		if !p.IsValid() {
			t.Errorf("IsValid(%q) = false", p)
		}
	}
	if Priority("urgent").IsValid() {
		t.Error(`IsValid("urgent") = true`)
	}
}

func TestPriorityRank(t *testing.T) {
	if !(PriorityHigh.Rank() < PriorityMedium.Rank() &&
		PriorityMedium.Rank() < PriorityLow.Rank() &&
		PriorityLow.Rank() < PriorityNone.Rank()) {
		t.Error("priority ranks are not strictly ordered high < medium < low < unset")
	}
}

func TestNewChatMessage(t *testing.T) {
	m := NewUserMessage("hello")
	if m.Role != RoleUser {
		t.Errorf("Role = %q, want %q", m.Role, RoleUser)
	}
	if m.Content != "hello" {
		t.Errorf("Content = %q, want %q", m.Content, "hello")
	}
	if m.ID == "" {
		t.Error("ID should be generated")
	}
	if m.ID == NewUserMessage("hello").ID {
		t.Error("IDs should be unique per message")
	}
}
