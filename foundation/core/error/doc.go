// Package error provides structured errors for the kyotamd toolchain.
//
// Package: error
// Title: kyotamd Error Handling
// Description: Structured errors with codes, severity, details and an
//              optional cause. The language packages use it to keep syntax,
//              type and reference failures distinguishable from each other
//              and from host or IO failures.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation for the kyotamd language
//
// Usage:
//
//	err := error.New("command names must start with an uppercase letter").
//		WithCode(error.CodeSyntax).
//		WithDetail("line", 3)
//
//	if error.HasCode(err, error.CodeSyntax) {
//		// report as a syntax error
//	}
package error
