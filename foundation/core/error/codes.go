// File: codes.go
// Title: Error Codes
// Description: Defines the error codes used across kyotamd. Language codes
//              mirror the three error kinds of the interpreter; the rest
//              cover configuration and file handling in the host tools.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial code set

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Language codes
	CodeSyntax    Code = "SYNTAX_ERROR"
	CodeType      Code = "TYPE_ERROR"
	CodeReference Code = "REFERENCE_ERROR"

	// Registry
	CodeDuplicateEntry Code = "DUPLICATE_ENTRY"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// File handling
	CodeIO Code = "IO_ERROR"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeSyntax, CodeType, CodeReference,
		CodeDuplicateEntry,
		CodeConfigError, CodeInvalidConfig,
		CodeIO:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeSyntax, CodeType, CodeReference:
		return "language"
	case CodeDuplicateEntry:
		return "registry"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	case CodeIO, CodeNotFound:
		return "io"
	default:
		return "generic"
	}
}

// ExitCode returns the process exit status the CLI uses for this code
func (c Code) ExitCode() int {
	switch c {
	case CodeSyntax:
		return 2
	case CodeType, CodeReference:
		return 3
	case CodeConfigError, CodeInvalidConfig:
		return 4
	case CodeIO, CodeNotFound:
		return 5
	default:
		return 1
	}
}
