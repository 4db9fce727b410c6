// File: doc.go
// Title: kyotamd Package Documentation
// Description: High-level entry point to the kyotamd command language.
//              Wires parser, registry, interpreter and logger into one
//              Engine.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial engine implementation

/*
Package kyotamd implements a small line-oriented command language.

Package: kyotamd
Title: kyotamd Command Language
Description: One command per line, written as a capitalized name followed
             by space separated arguments. Arguments are bare words,
             double-quoted literals or parenthesized nested commands
             whose value is substituted before the outer command runs.

# Language Overview

	# Lines starting with # are comments, blank lines are skipped
	Var i 0
	Label loop
	Var i (Calc (Var i) + 1)
	Print "Iteration" (Var i)
	If (Cond (Var i) < 3) loop

Every value is a string or absent. The built-in commands are:

	Label id            Marks the current line as jump target id
	Goto id             Continues execution at label id
	Var id [value]      Stores value under id if given, returns the stored value
	Calc a op b         Arithmetic with + - * / **
	Cond a op b         Comparison with = > < >= <= & |
	Print [values...]   Writes the values space separated, then a newline
	If condition id     Jumps to label id when condition is "true"

Label, Goto and If move the instruction pointer and are therefore only
allowed as top-level commands. Labels and variables persist across Eval
calls on the same Engine.

# Command Names

A name starts with an uppercase letter and may be hyphenated, with every
word capitalized: Print, Read-Line, HTTP-Get. Names are checked by the
parser and by the registry when host commands are added.

# Usage

	engine, err := kyotamd.New(kyotamd.Options{
		Commands: map[string]interpreter.Action{
			"Concat": func(ctx interpreter.Context, args ...interpreter.Value) (interpreter.Value, error) {
				return interpreter.Of(strings.Join(interpreter.Strings(args), "")), nil
			},
		},
		Aliases: map[string]string{"Echo": "Print"},
	})
	if err != nil {
		return err
	}

	result, err := engine.EvalFile("hello.kmd")

Validate checks a program without running it: syntax, unknown commands
and control-flow built-ins used as arguments.

# Errors

Language errors are *mdwerror.Error values with the codes SYNTAX_ERROR,
TYPE_ERROR and REFERENCE_ERROR and carry command and line details. Errors
returned by host commands pass through unchanged.
*/
package kyotamd
