// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage persists assistant transcripts to a local SQLite
// database so chat sessions survive restarts.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/jeranaias/taskdeck/internal/model"
	"github.com/jeranaias/taskdeck/internal/util"
)

// =============================================================================
// SCHEMA
// =============================================================================

const schema = `
CREATE TABLE IF NOT EXISTS transcripts (
	id              INTEGER PRIMARY KEY AUTOINCREMENT,
	conversation_id INTEGER,
	created_at      TEXT NOT NULL,
	updated_at      TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS messages (
	id            TEXT PRIMARY KEY,
	transcript_id INTEGER NOT NULL REFERENCES transcripts(id) ON DELETE CASCADE,
	seq           INTEGER NOT NULL,
	role          TEXT NOT NULL,
	content       TEXT NOT NULL,
	created_at    TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_messages_transcript ON messages(transcript_id, seq);
`

// previewRunes bounds the first-user-message preview in listings.
const previewRunes = 80

// =============================================================================
// TRANSCRIPT TYPES
// =============================================================================

// TranscriptMeta is one row of a transcript listing.
type TranscriptMeta struct {
	ID             int64
	ConversationID *int
	CreatedAt      time.Time
	UpdatedAt      time.Time
	MessageCount   int

	// Preview is the first user message, truncated.
	Preview string
}

// Transcript is a fully loaded conversation.
type Transcript struct {
	Meta     TranscriptMeta
	Messages []model.ChatMessage
}

// =============================================================================
// TRANSCRIPT STORE
// =============================================================================

// TranscriptStore persists transcripts in a single SQLite file.
type TranscriptStore struct {
	db *sql.DB

	// MaxTranscripts bounds the stored count; 0 means unlimited.
	// Saving past the bound prunes the oldest first.
	MaxTranscripts int
}

// DefaultDatabasePath returns ~/.taskdeck/transcripts.db.
func DefaultDatabasePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".taskdeck", "transcripts.db"), nil
}

// Open opens or creates the store at the given path.
func Open(path string, maxTranscripts int) (*TranscriptStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer at a time.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA foreign_keys=ON",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &TranscriptStore{db: db, MaxTranscripts: maxTranscripts}, nil
}

// Close releases the database handle.
func (s *TranscriptStore) Close() error {
	return s.db.Close()
}

// =============================================================================
// SAVE OPERATIONS
// =============================================================================

// Save writes a full transcript and returns its id. Transcripts past
// the configured bound are pruned oldest-first afterwards.
func (s *TranscriptStore) Save(ctx context.Context, conversationID *int, messages []model.ChatMessage) (int64, error) {
	if len(messages) == 0 {
		return 0, fmt.Errorf("refusing to save an empty transcript")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	now := time.Now().UTC().Format(time.RFC3339)
	res, err := tx.ExecContext(ctx,
		"INSERT INTO transcripts (conversation_id, created_at, updated_at) VALUES (?, ?, ?)",
		conversationID, now, now)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	for i, msg := range messages {
		ts := msg.Timestamp.UTC().Format(time.RFC3339)
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO messages (id, transcript_id, seq, role, content, created_at) VALUES (?, ?, ?, ?, ?, ?)",
			msg.ID, id, i, string(msg.Role), msg.Content, ts); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}

	if err := s.prune(ctx); err != nil {
		return id, err
	}
	return id, nil
}

// prune removes the oldest transcripts beyond MaxTranscripts.
func (s *TranscriptStore) prune(ctx context.Context) error {
	if s.MaxTranscripts <= 0 {
		return nil
	}
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM transcripts WHERE id IN (
			SELECT id FROM transcripts
			ORDER BY created_at DESC, id DESC
			LIMIT -1 OFFSET ?
		)`, s.MaxTranscripts)
	return err
}

// =============================================================================
// READ OPERATIONS
// =============================================================================

// List returns transcript metadata, newest first.
func (s *TranscriptStore) List(ctx context.Context) ([]TranscriptMeta, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT t.id, t.conversation_id, t.created_at, t.updated_at,
		       (SELECT COUNT(*) FROM messages m WHERE m.transcript_id = t.id),
		       COALESCE((SELECT m.content FROM messages m
		                 WHERE m.transcript_id = t.id AND m.role = 'user'
		                 ORDER BY m.seq LIMIT 1), '')
		FROM transcripts t
		ORDER BY t.created_at DESC, t.id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var metas []TranscriptMeta
	for rows.Next() {
		var meta TranscriptMeta
		var convID sql.NullInt64
		var created, updated, preview string
		if err := rows.Scan(&meta.ID, &convID, &created, &updated, &meta.MessageCount, &preview); err != nil {
			return nil, err
		}
		if convID.Valid {
			v := int(convID.Int64)
			meta.ConversationID = &v
		}
		meta.CreatedAt, _ = time.Parse(time.RFC3339, created)
		meta.UpdatedAt, _ = time.Parse(time.RFC3339, updated)
		meta.Preview = util.TruncateRunes(preview, previewRunes)
		metas = append(metas, meta)
	}
	return metas, rows.Err()
}

// Load reads one transcript with its messages in order.
func (s *TranscriptStore) Load(ctx context.Context, id int64) (*Transcript, error) {
	var t Transcript
	var convID sql.NullInt64
	var created, updated string
	err := s.db.QueryRowContext(ctx,
		"SELECT id, conversation_id, created_at, updated_at FROM transcripts WHERE id = ?", id).
		Scan(&t.Meta.ID, &convID, &created, &updated)
	if err != nil {
		return nil, err
	}
	if convID.Valid {
		v := int(convID.Int64)
		t.Meta.ConversationID = &v
	}
	t.Meta.CreatedAt, _ = time.Parse(time.RFC3339, created)
	t.Meta.UpdatedAt, _ = time.Parse(time.RFC3339, updated)

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, role, content, created_at FROM messages WHERE transcript_id = ? ORDER BY seq", id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var msg model.ChatMessage
		var role, ts string
		if err := rows.Scan(&msg.ID, &role, &msg.Content, &ts); err != nil {
			return nil, err
		}
		msg.Role = model.Role(role)
		msg.Timestamp, _ = time.Parse(time.RFC3339, ts)
		t.Messages = append(t.Messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	t.Meta.MessageCount = len(t.Messages)
	return &t, nil
}

// Delete removes one transcript and its messages.
func (s *TranscriptStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM transcripts WHERE id = ?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
