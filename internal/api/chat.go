// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api implements the HTTP client for the task service REST API.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// =============================================================================
// CHAT ENDPOINT
// =============================================================================

// ChatRequest is the payload for one assistant exchange. ConversationID is
// nil on the first exchange; the server's reply carries the id to quote on
// every subsequent request. The field is serialized even when nil so the
// server sees an explicit null.
type ChatRequest struct {
	Message        string `json:"message"`
	ConversationID *int   `json:"conversation_id"`
}

// ChatResponse is the assistant's reply.
type ChatResponse struct {
	Response       string `json:"response"`
	ConversationID int    `json:"conversation_id"`
}

// Chat sends one message to the assistant and returns its reply. Like every
// other operation there is exactly one request per call: no retries, no
// streaming, and any non-2xx response is a ChatError with the status.
func (c *Client) Chat(ctx context.Context, message string, conversationID *int) (*ChatResponse, error) {
	reqBody := ChatRequest{
		Message:        message,
		ConversationID: conversationID,
	}

	resp, body, err := c.doJSON(ctx, http.MethodPost, c.baseURL+"/chat", reqBody)
	if err != nil {
		return nil, &ChatError{Err: err}
	}
	if !isSuccess(resp.StatusCode) {
		return nil, &ChatError{Status: resp.StatusCode}
	}

	var chatResp ChatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return nil, &ChatError{Status: resp.StatusCode, Err: fmt.Errorf("failed to parse response: %w", err)}
	}
	return &chatResp, nil
}
