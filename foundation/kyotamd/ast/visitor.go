// File: visitor.go
// Title: kyotamd AST Visitor Pattern Implementation
// Description: Traversal helpers for the command tree: the Visitor
//              interface, a pre-order Walk, an indented tree printer and a
//              command name collector.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial visitor pattern implementation

package ast

import (
	"fmt"
	"sort"
	"strings"
)

// Visitor interface for traversing AST nodes using the visitor pattern.
// Implementations decide themselves whether to descend into nested
// commands.
type Visitor interface {
	VisitCommand(cmd *Command) interface{}
	VisitString(arg StringArg) interface{}
}

// Walk traverses arg in pre-order. If fn returns false for a command, its
// arguments are skipped.
func Walk(arg Argument, fn func(Argument) bool) {
	if !fn(arg) {
		return
	}
	if cmd, ok := arg.(*Command); ok {
		for _, child := range cmd.Arguments {
			Walk(child, fn)
		}
	}
}

// WalkProgram walks every command of a program
func WalkProgram(program []*Command, fn func(Argument) bool) {
	for _, cmd := range program {
		Walk(cmd, fn)
	}
}

// Depth returns the parenthesis nesting depth of a command; a command
// without nested arguments has depth 1.
func Depth(cmd *Command) int {
	deepest := 0
	for _, arg := range cmd.Arguments {
		if nested, ok := arg.(*Command); ok {
			if d := Depth(nested); d > deepest {
				deepest = d
			}
		}
	}
	return deepest + 1
}

// TreeVisitor creates an indented, human-readable representation of the AST
type TreeVisitor struct {
	buffer strings.Builder
	indent int
}

// NewTreeVisitor creates a new tree visitor
func NewTreeVisitor() *TreeVisitor {
	return &TreeVisitor{}
}

// String returns the built representation
func (tv *TreeVisitor) String() string {
	return tv.buffer.String()
}

// Reset clears the internal buffer
func (tv *TreeVisitor) Reset() {
	tv.buffer.Reset()
	tv.indent = 0
}

func (tv *TreeVisitor) writeIndent() {
	for i := 0; i < tv.indent; i++ {
		tv.buffer.WriteString("  ")
	}
}

// VisitCommand writes the command name followed by its arguments, one per line
func (tv *TreeVisitor) VisitCommand(cmd *Command) interface{} {
	tv.writeIndent()
	if cmd.Line > 0 {
		tv.buffer.WriteString(fmt.Sprintf("%s (line %d)\n", cmd.Name, cmd.Line))
	} else {
		tv.buffer.WriteString(cmd.Name + "\n")
	}

	tv.indent++
	for _, arg := range cmd.Arguments {
		arg.Accept(tv)
	}
	tv.indent--

	return nil
}

// VisitString writes the argument as a quoted literal
func (tv *TreeVisitor) VisitString(arg StringArg) interface{} {
	tv.writeIndent()
	tv.buffer.WriteString(Quote(string(arg)) + "\n")
	return nil
}

// CommandNames returns the distinct command names used anywhere in the
// program, nested commands included, sorted.
func CommandNames(program []*Command) []string {
	seen := make(map[string]struct{})
	WalkProgram(program, func(arg Argument) bool {
		if cmd, ok := arg.(*Command); ok {
			seen[cmd.Name] = struct{}{}
		}
		return true
	})

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
