// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat implements the assistant pane: a transcript of user and
// assistant bubbles with a single-line prompt, backed by the task
// service's chat endpoint.
package chat

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/taskdeck/internal/api"
	"github.com/jeranaias/taskdeck/internal/model"
	"github.com/jeranaias/taskdeck/internal/ui/styles"
)

// WelcomeMessage opens every transcript before anything is sent.
const WelcomeMessage = "Hello! I'm your smart AI Todo assistant ✨\n\n" +
	"You can ask me to:\n" +
	"• Add a task\n" +
	"• Show all tasks\n" +
	"• Complete a task\n" +
	"• Delete a task\n" +
	"• Update a task"

// FallbackMessage replaces the reply when a send fails. The failed
// exchange is not retried; the user's message stays in the transcript.
const FallbackMessage = "Something went wrong... Please try again 😔"

// Model is the assistant pane controller.
type Model struct {
	client *api.Client
	theme  *styles.Theme

	transcript []model.ChatMessage

	// conversationID is captured from the first reply that carries a
	// nonzero id and never overwritten afterwards.
	conversationID *int

	// pending is true between a send and its ReplyMsg. Submits are
	// refused while pending so exchanges stay strictly sequential.
	pending bool

	input    textinput.Model
	viewport viewport.Model
	spinner  spinner.Model
	ready    bool

	width  int
	height int
}

// New builds the assistant pane with the welcome message in place.
func New(client *api.Client, theme *styles.Theme) Model {
	input := textinput.New()
	input.Placeholder = "Ask the assistant..."
	input.CharLimit = 2000
	input.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Spinner

	return Model{
		client:     client,
		theme:      theme,
		transcript: []model.ChatMessage{model.NewAssistantMessage(WelcomeMessage)},
		input:      input,
		spinner:    sp,
	}
}

// Init starts the spinner and cursor blink.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Pending reports whether a reply is outstanding.
func (m Model) Pending() bool { return m.pending }

// Transcript returns the messages in order.
func (m Model) Transcript() []model.ChatMessage { return m.transcript }

// ConversationID returns the captured conversation id, or nil before
// the first successful exchange.
func (m Model) ConversationID() *int { return m.conversationID }

// SetSize propagates the terminal dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.input.Width = max(10, width-6)

	vpHeight := max(3, height-4)
	if !m.ready {
		m.viewport = viewport.New(width, vpHeight)
		m.ready = true
	} else {
		m.viewport.Width = width
		m.viewport.Height = vpHeight
	}
	m.viewport.SetContent(m.renderTranscript())
	m.viewport.GotoBottom()
}

// ============================================================================
// Update
// ============================================================================

// Update handles one message and returns the follow-up command.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ReplyMsg:
		return m.applyReply(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			return m.submit()
		case "up", "down", "pgup", "pgdown":
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit sends the prompt's contents. Blank input and in-flight
// exchanges are both refused.
func (m Model) submit() (Model, tea.Cmd) {
	text := strings.TrimSpace(m.input.Value())
	if text == "" || m.pending {
		return m, nil
	}

	m.transcript = append(m.transcript, model.NewUserMessage(text))
	m.input.SetValue("")
	m.pending = true
	m.syncViewport()
	return m, SendCmd(m.client, text, m.conversationID)
}

// applyReply appends the assistant's turn. Failures become the
// fallback message in the transcript rather than an error state.
func (m Model) applyReply(msg ReplyMsg) (Model, tea.Cmd) {
	m.pending = false
	if msg.Err != nil || msg.Reply == nil {
		m.transcript = append(m.transcript, model.NewAssistantMessage(FallbackMessage))
		m.syncViewport()
		return m, nil
	}

	if m.conversationID == nil && msg.Reply.ConversationID != 0 {
		id := msg.Reply.ConversationID
		m.conversationID = &id
	}
	m.transcript = append(m.transcript, model.NewAssistantMessage(msg.Reply.Response))
	m.syncViewport()
	return m, nil
}

func (m *Model) syncViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderTranscript())
	m.viewport.GotoBottom()
}
