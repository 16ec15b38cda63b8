// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import "github.com/jeranaias/taskdeck/internal/api"

// ============================================================================
// Messages
// ============================================================================

// ReplyMsg carries the assistant's response to one sent message, or
// the failure that replaced it. Exactly one ReplyMsg arrives per send.
type ReplyMsg struct {
	Reply *api.ChatResponse
	Err   error
}
