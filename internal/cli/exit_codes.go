package cli

import (
	"github.com/opendatatools/odcheck/internal/cli/shared"
)

// Exit codes for the odcheck CLI (re-exported from shared).
// These codes support programmatic composition and CI integration.
const (
	// ExitSuccess indicates all validations passed
	ExitSuccess = shared.ExitSuccess

	// ExitValidationFailed indicates at least one document failed validation
	ExitValidationFailed = shared.ExitValidationFailed

	// ExitInvalidArguments indicates invalid command arguments
	ExitInvalidArguments = shared.ExitInvalidArguments

	// ExitSchemaError indicates a schema could not be loaded or compiled
	ExitSchemaError = shared.ExitSchemaError
)

// NewExitError creates a new exit error with the given code (re-exported from shared).
func NewExitError(code int) error {
	return shared.NewExitError(code)
}

// ExitCode returns the exit code from an error (re-exported from shared).
func ExitCode(err error) int {
	return shared.ExitCode(err)
}
