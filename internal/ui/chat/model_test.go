// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/taskdeck/internal/api"
	"github.com/jeranaias/taskdeck/internal/model"
	"github.com/jeranaias/taskdeck/internal/ui/styles"
)

func newTestModel() Model {
	return New(api.NewClient(""), styles.NewTheme())
}

func typeText(m Model, s string) Model {
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return m
}

func enter(m Model) (Model, tea.Cmd) {
	return m.Update(tea.KeyMsg{Type: tea.KeyEnter})
}

func TestTranscriptOpensWithWelcome(t *testing.T) {
	m := newTestModel()
	if len(m.Transcript()) != 1 {
		t.Fatalf("transcript length = %d", len(m.Transcript()))
	}
	first := m.Transcript()[0]
	if first.Role != model.RoleAssistant || first.Content != WelcomeMessage {
		t.Fatalf("unexpected opener: %+v", first)
	}
}

func TestSubmitAppendsUserTurn(t *testing.T) {
	m := typeText(newTestModel(), "add gym at 7pm")
	m, cmd := enter(m)

	if cmd == nil {
		t.Fatal("submit should issue a send")
	}
	if !m.Pending() {
		t.Fatal("submit should mark the exchange pending")
	}
	msgs := m.Transcript()
	last := msgs[len(msgs)-1]
	if last.Role != model.RoleUser || last.Content != "add gym at 7pm" {
		t.Fatalf("user turn not appended: %+v", last)
	}
	if m.input.Value() != "" {
		t.Fatal("prompt should clear on submit")
	}
}

func TestBlankSubmitRefused(t *testing.T) {
	m := typeText(newTestModel(), "   ")
	m, cmd := enter(m)
	if cmd != nil || m.Pending() {
		t.Fatal("whitespace must not send")
	}
	if len(m.Transcript()) != 1 {
		t.Fatal("transcript must not grow")
	}
}

func TestSubmitRefusedWhilePending(t *testing.T) {
	m := typeText(newTestModel(), "first")
	m, _ = enter(m)

	m = typeText(m, "second")
	m, cmd := enter(m)
	if cmd != nil {
		t.Fatal("a pending exchange must block further sends")
	}
	msgs := m.Transcript()
	if msgs[len(msgs)-1].Content != "first" {
		t.Fatal("second message must not enter the transcript")
	}
}

func TestConversationIDCapturedOnce(t *testing.T) {
	m := typeText(newTestModel(), "add task gym at 7pm")
	m, _ = enter(m)

	m, _ = m.Update(ReplyMsg{Reply: &api.ChatResponse{Response: "Added!", ConversationID: 42}})
	if m.ConversationID() == nil || *m.ConversationID() != 42 {
		t.Fatalf("ConversationID = %v", m.ConversationID())
	}
	msgs := m.Transcript()
	if msgs[len(msgs)-1].Content != "Added!" {
		t.Fatalf("reply not appended: %+v", msgs[len(msgs)-1])
	}

	// Later replies never overwrite the id.
	m = typeText(m, "show all tasks")
	m, _ = enter(m)
	m, _ = m.Update(ReplyMsg{Reply: &api.ChatResponse{Response: "Here you go", ConversationID: 99}})
	if *m.ConversationID() != 42 {
		t.Fatalf("ConversationID overwritten to %d", *m.ConversationID())
	}
}

func TestZeroConversationIDNotCaptured(t *testing.T) {
	m := typeText(newTestModel(), "hi")
	m, _ = enter(m)
	m, _ = m.Update(ReplyMsg{Reply: &api.ChatResponse{Response: "hello"}})
	if m.ConversationID() != nil {
		t.Fatal("zero id must not be captured")
	}
}

func TestFailureAppendsFallback(t *testing.T) {
	m := typeText(newTestModel(), "hello")
	m, _ = enter(m)
	m, _ = m.Update(ReplyMsg{Err: errors.New("boom")})

	if m.Pending() {
		t.Fatal("failure should clear pending")
	}
	msgs := m.Transcript()
	last := msgs[len(msgs)-1]
	if last.Role != model.RoleAssistant || last.Content != FallbackMessage {
		t.Fatalf("fallback not appended: %+v", last)
	}
	// The user's turn stays in the transcript.
	if msgs[len(msgs)-2].Content != "hello" {
		t.Fatal("user turn lost on failure")
	}
}
