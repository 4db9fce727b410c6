// File: language.go
// Title: Language Error Kinds
// Description: Constructors and predicates for the three failure kinds a
//              kyotamd script can raise: syntax, type and reference errors.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package error

// NewSyntaxError creates an error for malformed source or a control-flow
// command used where it cannot change the instruction pointer.
func NewSyntaxError(message string) *Error {
	return New(message).WithCode(CodeSyntax)
}

// NewTypeError creates an error for a missing or ill-typed argument
func NewTypeError(message string) *Error {
	return New(message).WithCode(CodeType)
}

// NewReferenceError creates an error for an unknown command or label
func NewReferenceError(message string) *Error {
	return New(message).WithCode(CodeReference)
}

// IsSyntaxError reports whether err carries CodeSyntax
func IsSyntaxError(err error) bool {
	return HasCode(err, CodeSyntax)
}

// IsTypeError reports whether err carries CodeType
func IsTypeError(err error) bool {
	return HasCode(err, CodeType)
}

// IsReferenceError reports whether err carries CodeReference
func IsReferenceError(err error) bool {
	return HasCode(err, CodeReference)
}
