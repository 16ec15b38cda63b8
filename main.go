// taskdeck - a terminal client for the AI todo service.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/taskdeck/internal/api"
	"github.com/jeranaias/taskdeck/internal/cli"
	"github.com/jeranaias/taskdeck/internal/config"
	"github.com/jeranaias/taskdeck/internal/ui/app"
	"github.com/jeranaias/taskdeck/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	// Sync version info with the cli and api packages
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
	api.Version = Version
}

func main() {
	cmd, args := cli.Parse()

	switch cmd {
	case cli.CmdTUI:
		runTUI(args)
	case cli.CmdList:
		exitOnError(cli.HandleList(args))
	case cli.CmdAdd:
		exitOnError(cli.HandleAdd(args))
	case cli.CmdDone:
		exitOnError(cli.HandleDone(args))
	case cli.CmdRm:
		exitOnError(cli.HandleRm(args))
	case cli.CmdChat:
		cli.HandleChat(args)
	case cli.CmdTranscripts:
		exitOnError(cli.HandleTranscripts(args))
	case cli.CmdConfig:
		exitOnError(cli.HandleConfig(args))
	case cli.CmdVersion:
		cli.HandleVersion()
	case cli.CmdHelp:
		cli.HandleHelp()
	}
}

func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}

func runTUI(args cli.Args) {
	cfg := config.Global()
	baseURL := cfg.API.BaseURL
	if args.BaseURL != "" {
		baseURL = args.BaseURL
	}

	client := api.NewClient(baseURL)
	theme := styles.NewTheme()

	program := tea.NewProgram(
		app.New(client, theme),
		tea.WithAltScreen(),
	)

	// Config edits take effect on the next restart of the client, but
	// the watcher keeps the global snapshot fresh for anything that
	// reads it mid-session.
	if watcher, err := config.NewWatcher(nil); err == nil {
		if err := watcher.Watch(); err == nil {
			defer watcher.Close()
		}
	}

	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
