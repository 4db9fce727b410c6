// File: doc.go
// Title: kyotamd Parser Package Documentation
// Description: Converts kyotamd source text into command trees.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial parser implementation

/*
Package parser turns kyotamd source text into a sequence of commands.

The grammar is line oriented. Each line is either ignorable (blank, or a
'#' appears before any uppercase letter) or exactly one command:

	Command-Name arg "string literal" (Nested-Command arg)

Command names are hyphen separated words, each starting with an uppercase
letter or a digit (the first word must start with an uppercase letter).
Arguments are bare tokens, double-quoted string literals with \n and \X
escapes, or parenthesized nested commands.

Scanning is a single left-to-right pass per line and recursive only for
nested commands. Positions are counted in runes. Parsing is
all-or-nothing: the first syntax error aborts the whole text.

The package-level functions are pure. The Parser type adds logging and an
input length limit for hosts that evaluate untrusted text.
*/
package parser
