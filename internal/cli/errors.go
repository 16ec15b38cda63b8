// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// errors.go - Unified error handling for all CLI commands in taskdeck.
//
// STANDARDIZED PATTERN:
//   - ALWAYS return errors (never just print and return nil)
//   - Let the caller decide how to display errors
//   - Use structured error types for better error handling
package cli

import (
	"errors"
	"fmt"

	"github.com/jeranaias/taskdeck/internal/api"
)

// =============================================================================
// EXIT CODES
// =============================================================================

const (
	// ExitSuccess indicates successful execution
	ExitSuccess = 0
	// ExitGeneralError indicates a general/unknown error
	ExitGeneralError = 1
	// ExitUsageError indicates invalid command usage or arguments
	ExitUsageError = 2
	// ExitNotFoundError indicates a resource was not found
	ExitNotFoundError = 3
	// ExitNetworkError indicates the service could not be reached
	ExitNetworkError = 4
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// UsageError represents invalid command usage.
type UsageError struct {
	Command string
	Reason  string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("%s: %s", e.Command, e.Reason)
}

// NewUsageError builds a UsageError for a command.
func NewUsageError(command, reason string) *UsageError {
	return &UsageError{Command: command, Reason: reason}
}

// GetExitCode maps an error to its process exit code.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		return ExitUsageError
	}

	var notFound *api.NotFoundError
	if errors.As(err, &notFound) {
		return ExitNotFoundError
	}

	// A StatusError with status zero never reached the server.
	var statusErr api.StatusError
	if errors.As(err, &statusErr) && statusErr.HTTPStatus() == 0 {
		return ExitNetworkError
	}

	return ExitGeneralError
}
