// File: severity.go
// Title: Error Severity Levels
// Description: Severity classification for errors and the mapping from
//              error codes to a default severity.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow marks errors caused by the script author (bad syntax, bad arguments)
	SeverityLow Severity = iota

	// SeverityMedium marks errors with an obvious fix, such as a missing file
	SeverityMedium

	// SeverityHigh marks failures of the toolchain itself
	SeverityHigh

	// SeverityCritical marks errors that leave the process unusable
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ShouldAlert returns true if this severity level should be surfaced prominently
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeSyntax, CodeType, CodeReference, CodeInvalidInput, CodeDuplicateEntry:
		return SeverityLow
	case CodeNotFound, CodeIO, CodeConfigError, CodeInvalidConfig:
		return SeverityMedium
	case CodeInternal:
		return SeverityHigh
	default:
		return SeverityMedium
	}
}
