// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"

	"github.com/jeranaias/taskdeck/internal/model"
)

// ============================================================================
// Rendering
// ============================================================================

// View renders the assistant pane: transcript viewport over the prompt.
func (m Model) View() string {
	var b strings.Builder
	if m.ready {
		b.WriteString(m.viewport.View())
	} else {
		b.WriteString(m.renderTranscript())
	}
	b.WriteByte('\n')
	if m.pending {
		b.WriteString(m.theme.Loading.Render(m.spinner.View() + " thinking..."))
		b.WriteByte('\n')
	}
	b.WriteString(m.theme.InputContainer.Render(
		m.theme.InputPrompt.Render("> ") + m.input.View()))
	return b.String()
}

func (m Model) renderTranscript() string {
	width := m.bubbleWidth()
	parts := make([]string, 0, len(m.transcript))
	for _, msg := range m.transcript {
		parts = append(parts, m.renderMessage(msg, width))
	}
	return strings.Join(parts, "\n\n")
}

func (m Model) renderMessage(msg model.ChatMessage, width int) string {
	if msg.Role == model.RoleUser {
		return m.theme.UserBubble.Render(renderReply(msg.Content, width))
	}
	return m.theme.AssistantBubble.Render(renderReply(msg.Content, width))
}

// bubbleWidth leaves room for bubble padding and borders.
func (m Model) bubbleWidth() int {
	if m.width <= 0 {
		return 72
	}
	return max(16, m.width-8)
}
