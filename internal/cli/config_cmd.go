// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config_cmd.go - Configuration management commands.
package cli

import (
	"fmt"
	"strconv"

	"github.com/jeranaias/taskdeck/internal/config"
)

// HandleConfig handles the "config" command.
func HandleConfig(args Args) error {
	switch args.Parser.Subcommand() {
	case "", "show":
		return configShow()
	case "set":
		return configSet(args.Parser.Positional(1), args.Parser.Positional(2))
	case "path":
		path, err := config.ConfigPath()
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	default:
		return NewUsageError("config", fmt.Sprintf("unknown subcommand %q", args.Parser.Subcommand()))
	}
}

func configShow() error {
	cfg := config.Global()
	fmt.Println(TitleStyle.Render("taskdeck configuration"))
	rows := [][2]string{
		{"api.base_url", cfg.API.BaseURL},
		{"ui.theme", cfg.UI.Theme},
		{"ui.show_timestamps", strconv.FormatBool(cfg.UI.ShowTimestamps)},
		{"ui.compact_mode", strconv.FormatBool(cfg.UI.CompactMode)},
		{"chat.history_file", cfg.Chat.HistoryFile},
		{"chat.max_transcripts", strconv.Itoa(cfg.Chat.MaxTranscripts)},
	}
	for _, row := range rows {
		fmt.Printf("  %s %s\n", LabelStyle.Render(fmt.Sprintf("%-22s", row[0])), row[1])
	}
	return nil
}

func configSet(key, value string) error {
	if key == "" || value == "" {
		return NewUsageError("config", "set requires a key and a value")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	switch key {
	case "api.base_url":
		cfg.API.BaseURL = value
	case "ui.theme":
		cfg.UI.Theme = value
	case "ui.show_timestamps":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return NewUsageError("config", "ui.show_timestamps must be true or false")
		}
		cfg.UI.ShowTimestamps = b
	case "ui.compact_mode":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return NewUsageError("config", "ui.compact_mode must be true or false")
		}
		cfg.UI.CompactMode = b
	case "chat.max_transcripts":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return NewUsageError("config", "chat.max_transcripts must be a non-negative integer")
		}
		cfg.Chat.MaxTranscripts = n
	default:
		return NewUsageError("config", fmt.Sprintf("unknown key %q", key))
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := config.Save(cfg); err != nil {
		return err
	}
	config.SetGlobal(cfg)
	fmt.Println(SuccessStyle.Render(fmt.Sprintf("Set %s = %s", key, value)))
	return nil
}
