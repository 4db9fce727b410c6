// File: level.go
// Title: Log Levels
// Description: Log level definitions, parsing and filtering rules.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package log

import (
	"strings"
)

// Level represents the importance level of a log message
type Level int

const (
	// LevelTrace logs every dispatched command
	LevelTrace Level = iota

	// LevelDebug logs parser and interpreter milestones
	LevelDebug

	// LevelInfo represents general informational messages
	LevelInfo

	// LevelWarn indicates potentially harmful situations
	LevelWarn

	// LevelError represents error conditions that need attention
	LevelError

	// LevelAudit is always logged regardless of the configured level
	LevelAudit
)

var levelNames = [...]struct{ long, short string }{
	LevelTrace: {"trace", "TRC"},
	LevelDebug: {"debug", "DBG"},
	LevelInfo:  {"info", "INF"},
	LevelWarn:  {"warn", "WRN"},
	LevelError: {"error", "ERR"},
	LevelAudit: {"audit", "AUD"},
}

func (l Level) valid() bool {
	return l >= LevelTrace && int(l) < len(levelNames)
}

// String returns the lower-case name used in configuration files
func (l Level) String() string {
	if !l.valid() {
		return "unknown"
	}
	return levelNames[l].long
}

// ShortString returns the three-letter tag used by the console format
func (l Level) ShortString() string {
	if !l.valid() {
		return "???"
	}
	return levelNames[l].short
}

// ShouldLog returns true if this level should be logged given the minimum level
func (l Level) ShouldLog(minLevel Level) bool {
	if l == LevelAudit {
		return true
	}
	return l >= minLevel
}

// ParseLevel parses a string into a log level
func ParseLevel(level string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "trc":
		return LevelTrace, nil
	case "debug", "dbg":
		return LevelDebug, nil
	case "info", "inf", "information":
		return LevelInfo, nil
	case "warn", "wrn", "warning":
		return LevelWarn, nil
	case "error", "err":
		return LevelError, nil
	case "audit", "aud":
		return LevelAudit, nil
	default:
		return LevelInfo, &ParseError{
			Input: level,
			Type:  "level",
		}
	}
}

// ParseError represents an error parsing a log configuration value
type ParseError struct {
	Input string
	Type  string
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return "invalid " + e.Type + ": " + e.Input
}

// DefaultLevel returns the default log level
func DefaultLevel() Level {
	return LevelWarn
}
