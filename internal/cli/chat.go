// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// chat.go - Interactive assistant chat for the terminal.
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/jeranaias/taskdeck/internal/api"
	"github.com/jeranaias/taskdeck/internal/config"
	"github.com/jeranaias/taskdeck/internal/model"
	"github.com/jeranaias/taskdeck/internal/storage"
	"github.com/jeranaias/taskdeck/internal/ui/chat"
	"github.com/jeranaias/taskdeck/internal/util"
)

// =============================================================================
// CHAT INPUT
// =============================================================================

// ChatCLI provides input history and line editing for interactive chat.
// Supports arrow keys for history navigation.
type ChatCLI struct {
	line        *liner.State
	historyFile string
}

// NewChatCLI creates a ChatCLI with input history support.
func NewChatCLI() *ChatCLI {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	historyFile := config.Global().Chat.HistoryFile
	if historyFile == "" {
		configDir, err := config.ConfigDir()
		if err != nil {
			configDir = os.TempDir()
		}
		historyFile = filepath.Join(configDir, "chat_history")
	}

	c := &ChatCLI{
		line:        line,
		historyFile: historyFile,
	}
	c.LoadHistory()
	return c
}

// LoadHistory loads input history from file.
func (c *ChatCLI) LoadHistory() {
	if f, err := os.Open(c.historyFile); err == nil {
		c.line.ReadHistory(f)
		f.Close()
	}
}

// ReadInput reads a line of input with the given prompt.
func (c *ChatCLI) ReadInput(prompt string) (string, error) {
	input, err := c.line.Prompt(prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(input) != "" {
		c.line.AppendHistory(input)
	}
	return input, nil
}

// SaveHistory persists input history with owner-only permissions.
func (c *ChatCLI) SaveHistory() {
	if err := config.EnsureConfigDir(); err != nil {
		return
	}
	f, err := os.OpenFile(c.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return
	}
	defer f.Close()
	c.line.WriteHistory(f)
}

// Close saves history and closes the liner.
func (c *ChatCLI) Close() {
	c.SaveHistory()
	c.line.Close()
}

// =============================================================================
// CHAT SESSION
// =============================================================================

// ChatSession tracks one CLI conversation with the assistant.
type ChatSession struct {
	client *api.Client

	// conversationID is captured from the first reply that carries a
	// nonzero id; /new discards it to start fresh.
	conversationID *int

	transcript []model.ChatMessage
}

// send delivers one message and appends both turns to the transcript.
func (s *ChatSession) send(ctx context.Context, text string) (string, error) {
	s.transcript = append(s.transcript, model.NewUserMessage(text))

	reply, err := s.client.Chat(ctx, text, s.conversationID)
	if err != nil {
		return "", err
	}
	if s.conversationID == nil && reply.ConversationID != 0 {
		id := reply.ConversationID
		s.conversationID = &id
	}
	s.transcript = append(s.transcript, model.NewAssistantMessage(reply.Response))
	return reply.Response, nil
}

// =============================================================================
// COMMAND HANDLERS
// =============================================================================

// HandleChat handles the "chat" command.
func HandleChat(args Args) {
	if err := HandleChatCommand(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(GetExitCode(err))
	}
}

// HandleChatCommand runs a one-shot exchange when a message was given,
// otherwise the interactive REPL.
func HandleChatCommand(args Args) error {
	session := &ChatSession{client: newClient(args)}

	if strings.TrimSpace(args.Query) != "" {
		reply, err := session.send(context.Background(), strings.TrimSpace(args.Query))
		if err != nil {
			return err
		}
		printReply(reply)
		return nil
	}

	if !IsTTY() {
		return NewUsageError("chat", "interactive chat requires a terminal; pass a message instead")
	}
	return runChatREPL(args, session)
}

func runChatREPL(args Args, session *ChatSession) error {
	input := NewChatCLI()
	defer input.Close()

	if !args.Quiet {
		fmt.Println(TitleStyle.Render("taskdeck assistant"))
		printReply(chat.WelcomeMessage)
		fmt.Println(MutedStyle.Render("Type /help for commands, /quit to leave."))
		fmt.Println()
	}

	for {
		line, err := input.ReadInput("you> ")
		if err != nil {
			// Ctrl+C or Ctrl+D both end the session.
			fmt.Println()
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "/") {
			keepGoing, err := handleSlashCommand(line, session)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s %v\n", ErrorStyle.Render("[Error]"), err)
			}
			if !keepGoing {
				return nil
			}
			continue
		}
		if strings.EqualFold(line, "exit") || strings.EqualFold(line, "quit") {
			return nil
		}

		reply, err := session.send(context.Background(), line)
		if err != nil {
			fmt.Println(ErrorStyle.Render(chat.FallbackMessage))
			continue
		}
		printReply(reply)
	}
}

// handleSlashCommand runs one slash command. The bool result reports
// whether the REPL should continue.
func handleSlashCommand(cmd string, session *ChatSession) (bool, error) {
	fields := strings.Fields(cmd)
	switch fields[0] {
	case "/quit", "/exit":
		return false, nil

	case "/help":
		fmt.Println(MutedStyle.Render(strings.Join([]string{
			"/save   Save this conversation",
			"/new    Start a fresh conversation",
			"/help   Show this help",
			"/quit   Leave the chat",
		}, "\n")))
		return true, nil

	case "/new":
		session.conversationID = nil
		session.transcript = nil
		fmt.Println(MutedStyle.Render("Started a new conversation."))
		return true, nil

	case "/save":
		if len(session.transcript) == 0 {
			return true, fmt.Errorf("nothing to save yet")
		}
		id, err := saveTranscript(session)
		if err != nil {
			return true, err
		}
		fmt.Println(SuccessStyle.Render(fmt.Sprintf("Saved transcript #%d", id)))
		return true, nil

	default:
		return true, fmt.Errorf("unknown command %s", fields[0])
	}
}

func saveTranscript(session *ChatSession) (int64, error) {
	path, err := storage.DefaultDatabasePath()
	if err != nil {
		return 0, err
	}
	store, err := storage.Open(path, config.Global().Chat.MaxTranscripts)
	if err != nil {
		return 0, err
	}
	defer store.Close()
	return store.Save(context.Background(), session.conversationID, session.transcript)
}

// printReply renders an assistant reply with the same line heuristic
// as the TUI transcript.
func printReply(reply string) {
	width := GetTerminalWidth() - 4
	for _, line := range chat.FormatReply(reply) {
		switch line.Kind {
		case chat.LineBlank:
			fmt.Println()
		case chat.LineBullet:
			fmt.Println("  • " + util.TruncateWidth(line.Text, width))
		default:
			fmt.Println(util.Wrap(line.Text, width))
		}
	}
}
