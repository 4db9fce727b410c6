// File: charset.go
// Title: kyotamd Character Classes
// Description: Membership predicates for the three character classes the
//              kyotamd grammar distinguishes: ASCII uppercase letters,
//              ASCII decimal digits and a fixed set of Unicode spaces.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

// Package charset classifies runes for the kyotamd parser.
//
// The space set is deliberately fixed rather than unicode.IsSpace: it
// includes U+FEFF and excludes U+0085 and U+180E, and the grammar must not
// drift with Unicode table updates.
package charset

const (
	// UppercaseLetters lists the runes a command name word may start with
	UppercaseLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

	// LowercaseLetters is kept for hosts that validate identifiers
	LowercaseLetters = "abcdefghijklmnopqrstuvwxyz"

	// DecimalDigits lists the runes a hyphenated word may also start with
	DecimalDigits = "0123456789"
)

// Spaces separates command names and arguments
var Spaces = []rune{
	'\u000c',
	'\u000a',
	'\u000d',
	'\u0009',
	'\u000b',
	'\u00a0',
	'\u1680',
	'\u2000',
	'\u2001',
	'\u2002',
	'\u2003',
	'\u2004',
	'\u2005',
	'\u2006',
	'\u2007',
	'\u2008',
	'\u2009',
	'\u200a',
	'\u2028',
	'\u2029',
	'\u202f',
	'\u205f',
	'\u3000',
	'\ufeff',
	'\u0020',
}

var spaceSet = func() map[rune]struct{} {
	set := make(map[rune]struct{}, len(Spaces))
	for _, r := range Spaces {
		set[r] = struct{}{}
	}
	return set
}()

// IsSpace reports whether r separates tokens
func IsSpace(r rune) bool {
	_, ok := spaceSet[r]
	return ok
}

// IsUpper reports whether r is an ASCII uppercase letter
func IsUpper(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

// IsLower reports whether r is an ASCII lowercase letter
func IsLower(r rune) bool {
	return r >= 'a' && r <= 'z'
}

// IsDigit reports whether r is an ASCII decimal digit
func IsDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// ContainsSpace reports whether s contains any rune from Spaces
func ContainsSpace(s string) bool {
	for _, r := range s {
		if IsSpace(r) {
			return true
		}
	}
	return false
}
