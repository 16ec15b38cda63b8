// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing and command dispatch for taskdeck.
package cli

import (
	"fmt"
	"os"
	"runtime"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdList
	CmdAdd
	CmdDone
	CmdRm
	CmdChat
	CmdTranscripts
	CmdConfig
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	BaseURL string
	JSON    bool
	Quiet   bool

	// Command-specific
	Query string

	// Raw args remaining after the command word
	Raw []string

	// Parser over Raw, for subcommands and per-command flags
	Parser *ArgParser
}

const usageText = `taskdeck - terminal client for the AI todo service

Taskdeck manages your tasks from the terminal, either interactively
or one command at a time, and talks to the same AI assistant as the
web client.

Usage:
  taskdeck                     Start TUI (default)
  taskdeck list                List tasks
    --completed true|false     Filter by completion
    --priority LEVEL           Filter by priority (high, medium, low)
    --search TEXT              Search title and description
    --sort KEY                 Sort by created_at, priority or title
    --json                     Output raw JSON
  taskdeck add "title"         Create a task
    --desc TEXT                Description
    --priority LEVEL           Priority
    --tags a,b,c               Comma-separated tags
  taskdeck done <id>           Toggle task completion
  taskdeck rm <id>             Delete a task
    --yes                      Skip confirmation
  taskdeck chat                Interactive assistant chat
  taskdeck chat "message"      One-shot assistant message
  taskdeck transcripts [list|show <id>|rm <id>]
                               Saved chat transcripts
  taskdeck config [show|set <key> <value>|path]
                               Configuration
  taskdeck version             Show version
  taskdeck help                Show this help

Global flags:
  --api URL                    Override the service base URL
  --quiet                      Suppress decorative output

Environment:
  TASKDECK_API_URL             Service base URL
  TASKDECK_THEME               dark, light or auto
`

// Parse reads os.Args and returns the command and its arguments.
func Parse() (Command, Args) {
	raw := os.Args[1:]
	remaining, args := parseGlobalFlags(raw)

	if len(remaining) == 0 {
		return CmdTUI, args
	}

	cmd := strings.ToLower(remaining[0])
	remaining = remaining[1:]
	args.Raw = remaining
	args.Parser = NewArgParser(remaining)

	switch cmd {
	case "tui":
		return CmdTUI, args

	case "list", "ls":
		return CmdList, args

	case "add", "new":
		args.Query = strings.Join(args.Parser.PositionalFrom(0), " ")
		return CmdAdd, args

	case "done", "toggle":
		return CmdDone, args

	case "rm", "delete", "del":
		return CmdRm, args

	case "chat":
		args.Query = strings.Join(args.Parser.PositionalFrom(0), " ")
		return CmdChat, args

	case "transcripts", "transcript":
		return CmdTranscripts, args

	case "config":
		return CmdConfig, args

	case "version", "-v", "--version":
		return CmdVersion, args

	case "help", "-h", "--help":
		return CmdHelp, args

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		return CmdHelp, args
	}
}

// parseGlobalFlags strips global flags from the argument list and
// returns what remains.
func parseGlobalFlags(raw []string) ([]string, Args) {
	var args Args
	remaining := make([]string, 0, len(raw))

	i := 0
	for i < len(raw) {
		switch arg := raw[i]; arg {
		case "--api":
			if i+1 < len(raw) {
				args.BaseURL = raw[i+1]
				i += 2
				continue
			}
			i++
		case "--quiet", "-q":
			args.Quiet = true
			i++
		case "--json":
			args.JSON = true
			i++
		default:
			remaining = append(remaining, arg)
			i++
		}
	}
	return remaining, args
}

// PrintUsage writes the usage text to stdout.
func PrintUsage() {
	fmt.Print(usageText)
}

// PrintVersion writes version details to stdout.
func PrintVersion() {
	fmt.Printf("taskdeck %s\n", Version)
	fmt.Printf("  commit:  %s\n", GitCommit)
	fmt.Printf("  built:   %s\n", BuildDate)
	fmt.Printf("  runtime: %s\n", runtime.Version())
}

// HandleVersion handles the "version" command.
func HandleVersion() {
	PrintVersion()
}

// HandleHelp handles the "help" command.
func HandleHelp() {
	PrintUsage()
}
