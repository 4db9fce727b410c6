// File: nodes.go
// Title: kyotamd AST Node Definitions
// Description: Defines Command and the sealed Argument variant, plus
//              rendering of commands back to parseable source text.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial AST node definitions

package ast

import (
	"strings"

	"github.com/msto63/kyotamd/foundation/kyotamd/charset"
)

// Argument is one positional argument of a command. The set of
// implementations is closed: StringArg and *Command.
type Argument interface {
	// String renders the argument as source text
	String() string

	// Accept implements the visitor pattern
	Accept(visitor Visitor) interface{}

	argument()
}

// StringArg is a literal argument: a bare token or a decoded string literal
type StringArg string

// Command represents one parsed instruction
type Command struct {
	Name      string     // Hyphenated command name, e.g. "Set-Var"
	Arguments []Argument // Positional arguments in source order
	Line      int        // 1-based source line, 0 when built by hand
}

// Program is the command sequence of one source text
type Program []*Command

func (StringArg) argument() {}
func (*Command) argument()  {}

// NewCommand creates a command from a name and arguments
func NewCommand(name string, args ...Argument) *Command {
	return &Command{Name: name, Arguments: args}
}

// Strings converts plain strings into string arguments
func Strings(values ...string) []Argument {
	args := make([]Argument, len(values))
	for i, v := range values {
		args[i] = StringArg(v)
	}
	return args
}

// String renders the argument so that parsing it yields the same value.
// Tokens that are empty, contain spaces or start with a delimiter are
// quoted.
func (s StringArg) String() string {
	value := string(s)
	if isBareToken(value) {
		return value
	}
	return Quote(value)
}

// Accept implements the visitor pattern
func (s StringArg) Accept(visitor Visitor) interface{} {
	return visitor.VisitString(s)
}

// String renders the command as one source line. Nested commands are
// wrapped in parentheses.
func (c *Command) String() string {
	var b strings.Builder
	b.WriteString(c.Name)

	for _, arg := range c.Arguments {
		b.WriteByte(' ')
		if nested, ok := arg.(*Command); ok {
			b.WriteByte('(')
			b.WriteString(nested.String())
			b.WriteByte(')')
			continue
		}
		b.WriteString(arg.String())
	}

	return b.String()
}

// Accept implements the visitor pattern
func (c *Command) Accept(visitor Visitor) interface{} {
	return visitor.VisitCommand(c)
}

// IsNested reports whether the argument at index i is a nested command
func (c *Command) IsNested(i int) bool {
	if i < 0 || i >= len(c.Arguments) {
		return false
	}
	_, ok := c.Arguments[i].(*Command)
	return ok
}

// String renders the program, one command per line
func (p Program) String() string {
	lines := make([]string, len(p))
	for i, cmd := range p {
		lines[i] = cmd.String()
	}
	return strings.Join(lines, "\n")
}

// Quote renders value as a string literal. Backslashes and quotes are
// escaped and line feeds become \n.
func Quote(value string) string {
	var b strings.Builder
	b.Grow(len(value) + 2)
	b.WriteByte('"')
	for _, r := range value {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

func isBareToken(value string) bool {
	if value == "" {
		return false
	}
	switch value[0] {
	case '"', '(':
		return false
	}
	return !charset.ContainsSpace(value)
}
