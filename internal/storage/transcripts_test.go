// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jeranaias/taskdeck/internal/model"
)

func openTestStore(t *testing.T, maxTranscripts int) *TranscriptStore {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "transcripts.db"), maxTranscripts)
	require.NoError(t, err, "store should open in a fresh directory")
	t.Cleanup(func() { store.Close() })
	return store
}

func exchange(user, assistant string) []model.ChatMessage {
	return []model.ChatMessage{
		model.NewUserMessage(user),
		model.NewAssistantMessage(assistant),
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	store := openTestStore(t, 0)
	ctx := context.Background()

	convID := 42
	id, err := store.Save(ctx, &convID, exchange("add gym", "Added!"))
	require.NoError(t, err)

	got, err := store.Load(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got.Meta.ConversationID)
	require.Equal(t, 42, *got.Meta.ConversationID)
	require.Len(t, got.Messages, 2)
	require.Equal(t, model.RoleUser, got.Messages[0].Role)
	require.Equal(t, "add gym", got.Messages[0].Content)
	require.Equal(t, "Added!", got.Messages[1].Content)
}

func TestSaveEmptyRefused(t *testing.T) {
	store := openTestStore(t, 0)
	_, err := store.Save(context.Background(), nil, nil)
	require.Error(t, err, "empty transcripts should not be saved")
}

func TestListNewestFirstWithPreview(t *testing.T) {
	store := openTestStore(t, 0)
	ctx := context.Background()

	first, err := store.Save(ctx, nil, exchange("oldest question", "a"))
	require.NoError(t, err)
	second, err := store.Save(ctx, nil, exchange("newest question", "b"))
	require.NoError(t, err)

	metas, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, metas, 2)
	require.Equal(t, second, metas[0].ID, "newest transcript should list first")
	require.Equal(t, first, metas[1].ID)
	require.Equal(t, "newest question", metas[0].Preview)
	require.Equal(t, 2, metas[0].MessageCount)
}

func TestNilConversationID(t *testing.T) {
	store := openTestStore(t, 0)
	ctx := context.Background()

	id, err := store.Save(ctx, nil, exchange("q", "a"))
	require.NoError(t, err)

	got, err := store.Load(ctx, id)
	require.NoError(t, err)
	require.Nil(t, got.Meta.ConversationID)
}

func TestPruneKeepsNewest(t *testing.T) {
	store := openTestStore(t, 2)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		_, err := store.Save(ctx, nil, exchange("q", "a"))
		require.NoError(t, err)
	}

	metas, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, metas, 2, "prune should keep only the configured count")
}

func TestDeleteCascades(t *testing.T) {
	store := openTestStore(t, 0)
	ctx := context.Background()

	id, err := store.Save(ctx, nil, exchange("q", "a"))
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, id))

	_, err = store.Load(ctx, id)
	require.ErrorIs(t, err, sql.ErrNoRows)
	require.ErrorIs(t, store.Delete(ctx, id), sql.ErrNoRows, "second delete should report missing")
}
