// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures exchanged with the task service.
//
// This package defines the core domain types used throughout the application:
// tasks as served by the backend REST API and messages in the assistant
// transcript.
//
// # Key Types
//
//   - Task: a single todo record keyed by its server-assigned integer id
//   - TaskDraft: creation payload without server-assigned fields
//   - TaskPatch: partial update payload with nil meaning "leave untouched"
//   - Priority: urgency enumeration (high, medium, low, unset)
//   - ChatMessage: one transcript entry with role and content
//
// # Identity
//
// A task's id is the only identity key. The client reconciles local state
// after mutations by id alone, replacing whole records rather than merging
// fields.
package model
