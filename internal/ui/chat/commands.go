// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/taskdeck/internal/api"
)

// ============================================================================
// Commands
// ============================================================================

// SendCmd delivers one user message to the assistant. The conversation
// id pointer is captured at issue time; nil starts a new conversation
// server-side.
func SendCmd(client *api.Client, message string, conversationID *int) tea.Cmd {
	return func() tea.Msg {
		reply, err := client.Chat(context.Background(), message, conversationID)
		return ReplyMsg{Reply: reply, Err: err}
	}
}
