// ============================================================================
// kyotamd - Command Language Interpreter
// ============================================================================
//
// Package:     repl
// Description: Message types for async operations in the REPL TUI
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package repl

// evalDoneMsg is sent when an input line has been handled
type evalDoneMsg struct {
	resp Response
}

// entryKind selects the style of a transcript entry
type entryKind int

const (
	entryInput entryKind = iota
	entryOutput
	entryValue
	entryInfo
	entryError
	entryAlert
)

// entry is one block of the transcript
type entry struct {
	kind entryKind
	text string
}
