// File: doc.go
// Title: kyotamd Abstract Syntax Tree Package Documentation
// Description: Defines the command tree produced by the kyotamd parser.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial AST implementation

/*
Package ast defines the tree the kyotamd parser produces.

A program is a sequence of *Command values, one per non-ignorable source
line. Each command has a name and an ordered list of arguments; an argument
is either a StringArg (a bare token or a decoded string literal) or a nested
*Command whose result is substituted at run time.

The package also provides:
  - String rendering back to source text
  - Walk and the Visitor interface for traversals
  - An indented tree printer (TreeVisitor)
  - A plain-data dump form for YAML and JSON encoding
*/
package ast
