// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api implements the HTTP client for the task service REST API.
//
// The client is a thin translation layer: each operation maps to exactly one
// HTTP request against a configurable base URL, and every non-2xx response
// (and every transport failure) collapses into one typed error per operation
// carrying the HTTP status. There are no retries, no client-side timeouts
// beyond the transport defaults, and no response validation beyond the JSON
// parse — a malformed 2xx body propagates whatever shape the backend
// returned.
//
// # Endpoints
//
//	GET    /tasks?completed=&priority=&search=&sort=  → GetTasks
//	POST   /tasks                                     → CreateTask
//	GET    /tasks/{id}                                → GetTask
//	PUT    /tasks/{id}                                → UpdateTask
//	DELETE /tasks/{id}                                → DeleteTask
//	PATCH  /tasks/{id}/complete                       → ToggleTaskCompletion
//	POST   /chat                                      → Chat
//
// Query parameters with empty or unset values are omitted from list
// requests.
package api
