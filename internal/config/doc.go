// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for taskdeck.
//
// Configuration is read from ~/.taskdeck/config.toml with built-in defaults
// for anything the file omits. Environment variables override file values:
//
//	TASKDECK_API_URL          api.base_url
//	TASKDECK_THEME            ui.theme
//	TASKDECK_COMPACT          ui.compact_mode
//	TASKDECK_MAX_TRANSCRIPTS  chat.max_transcripts
//
// A process-wide instance is available through Global(), guarded for
// concurrent access, and Watcher reloads it when the config file changes on
// disk.
package config
