// File: value.go
// Title: kyotamd Values
// Description: The single runtime value type: a string or absent.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package interpreter

import "strconv"

// Value is a kyotamd runtime value: either a string or absent
type Value struct {
	text    string
	present bool
}

// Void is the absent value
var Void = Value{}

// Of wraps a string into a present value
func Of(s string) Value {
	return Value{text: s, present: true}
}

// IsVoid reports whether the value is absent
func (v Value) IsVoid() bool {
	return !v.present
}

// Get returns the string and whether the value is present
func (v Value) Get() (string, bool) {
	return v.text, v.present
}

// String returns the string, or "" for Void
func (v Value) String() string {
	return v.text
}

// GoString distinguishes Void from the empty string in test output
func (v Value) GoString() string {
	if !v.present {
		return "Void"
	}
	return strconv.Quote(v.text)
}

// Strings converts values to strings, rendering Void as ""
func Strings(values []Value) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = v.text
	}
	return out
}

// Arg returns the i-th value, or Void when i is out of range
func Arg(values []Value, i int) Value {
	if i < 0 || i >= len(values) {
		return Void
	}
	return values[i]
}
