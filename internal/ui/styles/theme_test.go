// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"testing"

	"github.com/jeranaias/taskdeck/internal/model"
)

func TestNewTheme(t *testing.T) {
	theme := NewTheme()
	if theme == nil {
		t.Fatal("NewTheme() returned nil")
	}
	// A few spot checks that styles were initialized.
	if !theme.TaskTitle.GetBold() {
		t.Error("TaskTitle should be bold")
	}
	if !theme.TaskTitleDone.GetStrikethrough() {
		t.Error("TaskTitleDone should be struck through")
	}
}

func TestPriorityStyle(t *testing.T) {
	theme := NewTheme()
	tests := []struct {
		priority model.Priority
		want     bool // bold
	}{
		{model.PriorityHigh, true},
		{model.PriorityMedium, true},
		{model.PriorityLow, true},
		{model.PriorityNone, false},
	}
	for _, tc := range tests {
		got := theme.PriorityStyle(tc.priority)
		if got.GetBold() != tc.want {
			t.Errorf("PriorityStyle(%q).GetBold() = %v, want %v", tc.priority, got.GetBold(), tc.want)
		}
	}
}
