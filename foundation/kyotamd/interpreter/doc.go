// File: doc.go
// Title: kyotamd Interpreter Package Documentation
// Description: Executes parsed kyotamd programs.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial interpreter implementation

/*
Package interpreter executes kyotamd command sequences.

An Interpreter owns a variable store and a label store that persist across
Eval calls. Eval parses a text and runs it with an instruction pointer
that only the control-flow built-ins can move, through the IndexedContext
they receive. Nested commands run in an ArgumentContext, where Label, Goto
and If are syntax errors.

Built-ins (Label, Goto, Var, Calc, Cond, Print, If) are resolved before
host commands, so a host cannot shadow them. Host commands come from the
Commands option or from a shared registry:

	in, err := interpreter.New(interpreter.Options{
		Commands: map[string]interpreter.Action{
			"Shout": func(ctx interpreter.Context, args ...interpreter.Value) (interpreter.Value, error) {
				return interpreter.Of(strings.ToUpper(args[0].String())), nil
			},
		},
	})

	result, err := in.Eval(`Print (Shout "hello")`)

Every value is a string or absent (Void). Calc and Cond coerce strings to
numbers the way ECMAScript's Number() does and format results the same
way, so "0x10" is 16 and 1/3 prints as 0.3333333333333333.

An Interpreter is not safe for concurrent use.
*/
package interpreter
