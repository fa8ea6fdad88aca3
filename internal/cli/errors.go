// errors.go - Unified error handling for all CLI commands.
//
// Every handler returns errors; main decides how to display them and
// which exit code to use. Handlers never print-and-swallow.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/jeranaias/privategxt-tui/internal/api"
)

// Exit codes for different error categories.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0
	// ExitGeneralError indicates a general/unknown error.
	ExitGeneralError = 1
	// ExitUsageError indicates invalid command usage or arguments.
	ExitUsageError = 2
	// ExitConfigError indicates a configuration error.
	ExitConfigError = 3
	// ExitAuthError indicates an authentication failure.
	ExitAuthError = 4
	// ExitNetworkError indicates a network or gateway error.
	ExitNetworkError = 5
)

// CommandError carries an exit code alongside the error.
type CommandError struct {
	Err  error
	Code int
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *CommandError) Unwrap() error {
	return e.Err
}

// UsageError wraps an error as a usage problem.
func UsageError(format string, a ...any) error {
	return &CommandError{Err: fmt.Errorf(format, a...), Code: ExitUsageError}
}

// ExitCode derives the exit code for an error.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Code
	}
	if api.IsUnauthorized(err) || errors.Is(err, api.ErrNotAuthenticated) {
		return ExitAuthError
	}
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return ExitNetworkError
	}
	return ExitGeneralError
}

// ReportError prints an error to stderr in the shared style and returns
// its exit code.
func ReportError(err error) int {
	if err == nil {
		return ExitSuccess
	}
	fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+err.Error())
	return ExitCode(err)
}
