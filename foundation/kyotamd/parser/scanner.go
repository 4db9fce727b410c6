// File: scanner.go
// Title: kyotamd Line Scanner
// Description: Low-level scanning helpers shared by the parser: leading
//              space offset, parenthesized spans, string literals, bare
//              tokens and ignorable line detection. All offsets and spans
//              are counted in runes.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package parser

import (
	"strings"

	"github.com/msto63/kyotamd/foundation/kyotamd/charset"
)

// StartSpacesOffset returns the number of leading space runes in line
func StartSpacesOffset(line string) int {
	return startSpacesOffset([]rune(line))
}

// IsIgnorable reports whether a line carries no command: a '#' is reached
// before any uppercase letter, or there is no uppercase letter at all.
func IsIgnorable(line string) bool {
	for _, r := range line {
		if charset.IsUpper(r) {
			return false
		}
		if r == '#' {
			return true
		}
	}
	return true
}

// ParseStringLiteral decodes the string literal whose opening quote is at
// rune offset. It returns the decoded value and the number of runes
// consumed, quotes included. An unterminated literal runs to the end of
// the line.
func ParseStringLiteral(line string, offset int) (string, int) {
	return scanStringLiteral([]rune(line), offset)
}

func startSpacesOffset(src []rune) int {
	n := 0
	for n < len(src) && charset.IsSpace(src[n]) {
		n++
	}
	return n
}

// scanParenthesis finds the span of the parenthesized command opening at
// offset. It returns the inner runes and the number of runes consumed,
// both parentheses included. Depth is counted naively, so parentheses
// inside string literals take part in the balance.
func scanParenthesis(src []rune, offset int) ([]rune, int) {
	depth := 1
	i := offset + 1
	for ; i < len(src); i++ {
		switch src[i] {
		case '(':
			depth++
		case ')':
			depth--
		}
		if depth == 0 {
			return src[offset+1 : i], i - offset + 1
		}
	}
	return src[offset+1:], len(src) - offset
}

func scanStringLiteral(src []rune, offset int) (string, int) {
	var b strings.Builder
	i := offset + 1

	for i < len(src) {
		r := src[i]

		if r == '\\' {
			if i+1 >= len(src) {
				i++
				break
			}
			if next := src[i+1]; next == 'n' {
				b.WriteByte('\n')
			} else {
				b.WriteRune(next)
			}
			i += 2
			continue
		}

		i++
		if r == '"' {
			break
		}
		b.WriteRune(r)
	}

	return b.String(), i - offset
}

// scanBareToken returns the run of non-space runes starting at offset
func scanBareToken(src []rune, offset int) (string, int) {
	i := offset
	for i < len(src) && !charset.IsSpace(src[i]) {
		i++
	}
	return string(src[offset:i]), i - offset
}
