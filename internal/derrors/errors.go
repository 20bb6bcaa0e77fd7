// Package derrors provides custom error types for proxylists.
// Command actions return these instead of exiting so the entry point can
// map every failure to a message and an exit code in one place.
package derrors

import (
	"errors"
	"fmt"
)

const (
	// ExitUsage is the exit status for usage errors (bad or missing arguments)
	ExitUsage = 1
	// ExitFatal is the exit status for storage, configuration and environment errors
	ExitFatal = 2
)

// ProxyListError is the base interface for all proxylists errors
type ProxyListError interface {
	error
	// Code returns a unique error code for programmatic error handling
	Code() string
}

// baseError provides common functionality for all proxylists errors
type baseError struct {
	code    string
	message string
	cause   error
}

func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

func (e *baseError) Code() string {
	return e.code
}

func (e *baseError) Unwrap() error {
	return e.cause
}

// UsageError represents a missing or unrecognized command line argument
type UsageError struct {
	baseError
	Command string
}

// NewUsageError creates a new usage error
func NewUsageError(command string, message string) *UsageError {
	return &UsageError{
		baseError: baseError{
			code:    "USAGE_ERROR",
			message: message,
		},
		Command: command,
	}
}

// StorageError represents a failure reading or writing a list file
type StorageError struct {
	baseError
	Path string
}

// NewStorageError creates a new storage error
func NewStorageError(path string, message string, cause error) *StorageError {
	return &StorageError{
		baseError: baseError{
			code:    "STORAGE_ERROR",
			message: message,
			cause:   cause,
		},
		Path: path,
	}
}

// ConfigurationError represents errors in the settings file
type ConfigurationError struct {
	baseError
	Path string
}

// NewConfigurationError creates a new configuration error
func NewConfigurationError(path string, message string, cause error) *ConfigurationError {
	return &ConfigurationError{
		baseError: baseError{
			code:    "CONFIG_ERROR",
			message: message,
			cause:   cause,
		},
		Path: path,
	}
}

// EnvironmentError represents a required environment variable that is unset
type EnvironmentError struct {
	baseError
	Variable string
}

// NewEnvironmentError creates a new environment error
func NewEnvironmentError(variable string, message string) *EnvironmentError {
	return &EnvironmentError{
		baseError: baseError{
			code:    "ENV_ERROR",
			message: message,
		},
		Variable: variable,
	}
}

// ValidationError represents an argument value outside its allowed set
type ValidationError struct {
	baseError
	Field string
}

// NewValidationError creates a new validation error
func NewValidationError(field string, message string, cause error) *ValidationError {
	return &ValidationError{
		baseError: baseError{
			code:    "VALIDATION_ERROR",
			message: message,
			cause:   cause,
		},
		Field: field,
	}
}

// ExitCode maps an error to the process exit status.
// Usage and validation errors exit with ExitUsage, everything else with ExitFatal.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		return ExitUsage
	}

	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return ExitUsage
	}

	return ExitFatal
}

// IsUsage reports whether err is a usage or validation error
func IsUsage(err error) bool {
	return err != nil && ExitCode(err) == ExitUsage
}
