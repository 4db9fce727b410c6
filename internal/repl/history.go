// ============================================================================
// kyotamd - Command Language Interpreter
// ============================================================================
//
// Package:     repl
// Description: Persistent input history
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package repl

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// historyFile is the on-disk format
type historyFile struct {
	Entries []string `json:"entries,omitempty"`
}

// History keeps the most recent input lines, up to a limit
type History struct {
	path    string
	limit   int
	entries []string
}

// DefaultHistoryPath returns ~/.kyotamd/history.json
func DefaultHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".kyotamd", "history.json")
	}
	return filepath.Join(home, ".kyotamd", "history.json")
}

// LoadHistory reads the history at path. A missing or unreadable file
// starts an empty history. An empty path keeps the history in memory.
func LoadHistory(path string, limit int) *History {
	h := &History{path: path, limit: limit}
	if path == "" || limit <= 0 {
		return h
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return h
	}

	var file historyFile
	if err := json.Unmarshal(data, &file); err != nil {
		return h
	}
	h.entries = file.Entries
	h.trim()
	return h
}

// Add appends entry unless it repeats the last one
func (h *History) Add(entry string) {
	if entry == "" || h.limit <= 0 {
		return
	}
	if n := len(h.entries); n > 0 && h.entries[n-1] == entry {
		return
	}
	h.entries = append(h.entries, entry)
	h.trim()
}

func (h *History) trim() {
	if len(h.entries) > h.limit {
		h.entries = h.entries[len(h.entries)-h.limit:]
	}
}

// Entries returns the history, oldest first
func (h *History) Entries() []string {
	return append([]string(nil), h.entries...)
}

// Len returns the number of entries
func (h *History) Len() int {
	return len(h.entries)
}

// At returns entry i, oldest first
func (h *History) At(i int) string {
	return h.entries[i]
}

// Save writes the history to disk
func (h *History) Save() error {
	if h.path == "" || h.limit <= 0 {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(h.path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(historyFile{Entries: h.entries}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(h.path, data, 0644)
}
