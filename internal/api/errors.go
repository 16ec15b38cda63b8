// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api implements the HTTP client for the task service REST API.
package api

import "fmt"

// =============================================================================
// OPERATION ERRORS
// =============================================================================

// Every operation collapses any non-2xx response into a single typed failure
// carrying the HTTP status. Transport failures (connection refused, DNS) are
// wrapped with the same type and a zero status. The client draws no finer
// distinction; call sites map each type to one fixed user-facing message.

// StatusError is implemented by all per-operation error types.
type StatusError interface {
	error
	// HTTPStatus returns the response status code, or 0 for transport errors.
	HTTPStatus() int
}

// FetchError reports a failed task list or detail read.
type FetchError struct {
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to fetch tasks: %v", e.Err)
	}
	return fmt.Sprintf("failed to fetch tasks: status %d", e.Status)
}

func (e *FetchError) Unwrap() error   { return e.Err }
func (e *FetchError) HTTPStatus() int { return e.Status }

// CreateError reports a failed task creation.
type CreateError struct {
	Status int
	Err    error
}

func (e *CreateError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("create failed: %v", e.Err)
	}
	return fmt.Sprintf("create failed: status %d", e.Status)
}

func (e *CreateError) Unwrap() error   { return e.Err }
func (e *CreateError) HTTPStatus() int { return e.Status }

// NotFoundError reports a failed single-task read. The typical status is 404
// but any non-2xx lands here.
type NotFoundError struct {
	Status int
	Err    error
}

func (e *NotFoundError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("task not found: %v", e.Err)
	}
	return fmt.Sprintf("task not found: status %d", e.Status)
}

func (e *NotFoundError) Unwrap() error   { return e.Err }
func (e *NotFoundError) HTTPStatus() int { return e.Status }

// UpdateError reports a failed task update.
type UpdateError struct {
	Status int
	Err    error
}

func (e *UpdateError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("update failed: %v", e.Err)
	}
	return fmt.Sprintf("update failed: status %d", e.Status)
}

func (e *UpdateError) Unwrap() error   { return e.Err }
func (e *UpdateError) HTTPStatus() int { return e.Status }

// DeleteError reports a failed task deletion.
type DeleteError struct {
	Status int
	Err    error
}

func (e *DeleteError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("delete failed: %v", e.Err)
	}
	return fmt.Sprintf("delete failed: status %d", e.Status)
}

func (e *DeleteError) Unwrap() error   { return e.Err }
func (e *DeleteError) HTTPStatus() int { return e.Status }

// ToggleError reports a failed completion toggle.
type ToggleError struct {
	Status int
	Err    error
}

func (e *ToggleError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("toggle failed: %v", e.Err)
	}
	return fmt.Sprintf("toggle failed: status %d", e.Status)
}

func (e *ToggleError) Unwrap() error   { return e.Err }
func (e *ToggleError) HTTPStatus() int { return e.Status }

// ChatError reports a failed assistant exchange.
type ChatError struct {
	Status int
	Err    error
}

func (e *ChatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("chat failed: %v", e.Err)
	}
	return fmt.Sprintf("chat failed: status %d", e.Status)
}

func (e *ChatError) Unwrap() error   { return e.Err }
func (e *ChatError) HTTPStatus() int { return e.Status }
