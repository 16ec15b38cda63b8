// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// transcripts_cmd.go - Saved chat transcript commands.
package cli

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/jeranaias/taskdeck/internal/config"
	"github.com/jeranaias/taskdeck/internal/model"
	"github.com/jeranaias/taskdeck/internal/storage"
)

// HandleTranscripts handles the "transcripts" command.
func HandleTranscripts(args Args) error {
	path, err := storage.DefaultDatabasePath()
	if err != nil {
		return err
	}
	store, err := storage.Open(path, config.Global().Chat.MaxTranscripts)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()
	switch args.Parser.Subcommand() {
	case "", "list", "ls":
		return transcriptsList(ctx, store)
	case "show":
		return transcriptsShow(ctx, store, args.Parser.Positional(1))
	case "rm", "delete", "del":
		return transcriptsDelete(ctx, store, args.Parser.Positional(1))
	default:
		return NewUsageError("transcripts", fmt.Sprintf("unknown subcommand %q", args.Parser.Subcommand()))
	}
}

func transcriptsList(ctx context.Context, store *storage.TranscriptStore) error {
	metas, err := store.List(ctx)
	if err != nil {
		return err
	}
	if len(metas) == 0 {
		fmt.Println(MutedStyle.Render("No saved transcripts."))
		return nil
	}
	for _, meta := range metas {
		fmt.Printf("%s %s %s\n",
			MutedStyle.Render(fmt.Sprintf("#%-4d", meta.ID)),
			meta.CreatedAt.Local().Format("2006-01-02 15:04"),
			meta.Preview)
		fmt.Println("       " + MutedStyle.Render(fmt.Sprintf("%d message(s)", meta.MessageCount)))
	}
	return nil
}

func transcriptsShow(ctx context.Context, store *storage.TranscriptStore, rawID string) error {
	id, err := transcriptIDArg(rawID)
	if err != nil {
		return err
	}
	t, err := store.Load(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("transcript #%d not found", id)
	}
	if err != nil {
		return err
	}

	for _, msg := range t.Messages {
		if msg.Role == model.RoleUser {
			fmt.Println(TitleStyle.Render("you> ") + msg.Content)
		} else {
			printReply(msg.Content)
		}
		fmt.Println()
	}
	return nil
}

func transcriptsDelete(ctx context.Context, store *storage.TranscriptStore, rawID string) error {
	id, err := transcriptIDArg(rawID)
	if err != nil {
		return err
	}
	if err := store.Delete(ctx, id); errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("transcript #%d not found", id)
	} else if err != nil {
		return err
	}
	fmt.Println(SuccessStyle.Render(fmt.Sprintf("Deleted transcript #%d", id)))
	return nil
}

func transcriptIDArg(raw string) (int64, error) {
	if raw == "" {
		return 0, NewUsageError("transcripts", "a transcript id is required")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, NewUsageError("transcripts", fmt.Sprintf("invalid transcript id %q", raw))
	}
	return id, nil
}
