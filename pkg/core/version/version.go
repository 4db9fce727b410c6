// ============================================================================
// kyotamd - Command Language Interpreter
// ============================================================================
//
// Package:     version
// Description: Central version management for the kyotamd binary
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
	"strings"
)

// Version constants
const (
	// Application version
	Application = "0.1.0"

	// Language revision understood by the interpreter
	Language = "1.0.0"
)

// Set at build time via -ldflags "-X ..."
var (
	GitCommit = "development"
	BuildDate = "unknown"
)

// Component returns the version for a component name
func Component(name string) string {
	switch strings.ToLower(name) {
	case "language", "kyotamd-language":
		return Language
	default:
		return Application
	}
}

// Short returns the one-line version string
func Short() string {
	return "kyotamd v" + Application
}

// Details returns the multi-line version report
func Details() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", Short())
	fmt.Fprintf(&b, "  Language:   %s\n", Language)
	fmt.Fprintf(&b, "  Git Commit: %s\n", GitCommit)
	fmt.Fprintf(&b, "  Build Date: %s\n", BuildDate)
	fmt.Fprintf(&b, "  Go Version: %s\n", runtime.Version())
	fmt.Fprintf(&b, "  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
	return b.String()
}
