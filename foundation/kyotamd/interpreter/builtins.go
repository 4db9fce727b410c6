// File: builtins.go
// Title: kyotamd Built-in Commands
// Description: Label, Goto, Var, Calc, Cond, Print and If. Control-flow
//              built-ins require an IndexedContext; every built-in raises
//              a type error when a required argument is absent.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial built-in implementation

package interpreter

import (
	"fmt"
	"io"
	"sort"
	"strings"

	mdwerror "github.com/msto63/kyotamd/foundation/core/error"
)

type builtin struct {
	usage       string
	description string
	action      Action
}

// CommandInfo describes a command for help output
type CommandInfo struct {
	Name        string
	Usage       string
	Description string
	Builtin     bool
}

func builtins() map[string]builtin {
	return map[string]builtin{
		"Label": {"id", "Marks the current line as jump target id", builtinLabel},
		"Goto":  {"id", "Continues execution at label id", builtinGoto},
		"Var":   {"id [value]", "Stores value under id if given; returns the stored value", builtinVar},
		"Calc":  {"a op b", "Arithmetic with + - * / **", builtinCalc},
		"Cond":  {"a op b", "Comparison with = > < >= <= & |; returns true or false", builtinCond},
		"Print": {"[values...]", "Writes the values space separated, followed by a newline", builtinPrint},
		"If":    {"condition id", "Jumps to label id when condition is true", builtinIf},
	}
}

// Commands lists built-in and host commands, sorted by name
func (in *Interpreter) Commands() []CommandInfo {
	infos := make([]CommandInfo, 0, len(in.builtins)+in.registry.Len())
	for name, b := range in.builtins {
		infos = append(infos, CommandInfo{Name: name, Usage: b.usage, Description: b.description, Builtin: true})
	}
	for _, def := range in.registry.Definitions() {
		if in.IsBuiltin(def.Name) {
			continue
		}
		infos = append(infos, CommandInfo{Name: def.Name, Usage: def.Usage, Description: def.Description})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos
}

// requireIndexed returns ctx as an IndexedContext or a syntax error when
// the command runs as an argument
func requireIndexed(ctx Context, command string) (*IndexedContext, error) {
	switch c := ctx.(type) {
	case *IndexedContext:
		return c, nil
	case *ArgumentContext:
		return nil, c.interp.syntaxError(command+" cannot be used as an argument", command).
			WithOperation("interpreter." + command)
	default:
		return nil, mdwerror.Newf("unsupported context %T", ctx).
			WithCode(mdwerror.CodeInternal).
			WithOperation("interpreter." + command)
	}
}

// requireArgs returns the first n arguments as strings or a type error if
// any of them is absent
func requireArgs(ctx Context, command string, args []Value, names ...string) ([]string, error) {
	out := make([]string, len(names))
	for i, name := range names {
		s, ok := Arg(args, i).Get()
		if !ok {
			return nil, ctx.Interpreter().typeError(fmt.Sprintf("%s requires argument %d (%s)", command, i+1, name), command).
				WithOperation("interpreter." + command)
		}
		out[i] = s
	}
	return out, nil
}

func builtinLabel(ctx Context, args ...Value) (Value, error) {
	indexed, err := requireIndexed(ctx, "Label")
	if err != nil {
		return Void, err
	}
	req, err := requireArgs(ctx, "Label", args, "id")
	if err != nil {
		return Void, err
	}

	indexed.interp.labels[req[0]] = indexed.index
	return Void, nil
}

func builtinGoto(ctx Context, args ...Value) (Value, error) {
	indexed, err := requireIndexed(ctx, "Goto")
	if err != nil {
		return Void, err
	}
	req, err := requireArgs(ctx, "Goto", args, "id")
	if err != nil {
		return Void, err
	}

	return Void, indexed.jump("Goto", req[0])
}

// jump moves the instruction pointer to a stored label
func (c *IndexedContext) jump(command, label string) error {
	index, ok := c.interp.labels[label]
	if !ok {
		return c.interp.referenceError("label "+quote(label)+" is not defined", command).
			WithOperation("interpreter." + command).
			WithDetail("label", label)
	}
	c.SetIndex(index)
	return nil
}

func builtinVar(ctx Context, args ...Value) (Value, error) {
	req, err := requireArgs(ctx, "Var", args, "id")
	if err != nil {
		return Void, err
	}

	in := ctx.Interpreter()
	in.SetVariable(req[0], Arg(args, 1))
	return in.Variable(req[0]), nil
}

func builtinCalc(ctx Context, args ...Value) (Value, error) {
	req, err := requireArgs(ctx, "Calc", args, "a", "op", "b")
	if err != nil {
		return Void, err
	}

	x, y := ToNumber(req[0]), ToNumber(req[2])

	switch req[1] {
	case "+":
		return Of(FormatNumber(x + y)), nil
	case "-":
		return Of(FormatNumber(x - y)), nil
	case "*":
		return Of(FormatNumber(x * y)), nil
	case "/":
		return Of(FormatNumber(x / y)), nil
	case "**":
		return Of(FormatNumber(power(x, y))), nil
	}

	return Of("NaN"), nil
}

func builtinCond(ctx Context, args ...Value) (Value, error) {
	req, err := requireArgs(ctx, "Cond", args, "a", "op", "b")
	if err != nil {
		return Void, err
	}

	a, b := req[0], req[2]
	x, y := ToNumber(a), ToNumber(b)

	var result bool
	switch req[1] {
	case "=":
		result = a == b
	case ">":
		result = x > y
	case "<":
		result = x < y
	case ">=":
		result = x >= y
	case "<=":
		result = x <= y
	case "&":
		result = truthy(args[0]) && truthy(args[2])
	case "|":
		result = truthy(args[0]) || truthy(args[2])
	}

	return Of(fmt.Sprint(result)), nil
}

func builtinPrint(ctx Context, args ...Value) (Value, error) {
	in := ctx.Interpreter()
	line := strings.Join(Strings(args), " ") + "\n"

	if _, err := io.WriteString(in.output, line); err != nil {
		return Void, mdwerror.Wrap(err, "Print failed to write output").
			WithCode(mdwerror.CodeIO).
			WithOperation("interpreter.Print")
	}
	return Void, nil
}

func builtinIf(ctx Context, args ...Value) (Value, error) {
	indexed, err := requireIndexed(ctx, "If")
	if err != nil {
		return Void, err
	}

	condition, _ := Arg(args, 0).Get()
	if condition != "true" && condition != "false" {
		return Void, indexed.interp.typeError(
			fmt.Sprintf("If condition must be \"true\" or \"false\", got %#v", Arg(args, 0)), "If").
			WithOperation("interpreter.If")
	}

	req, err := requireArgs(ctx, "If", args, "condition", "id")
	if err != nil {
		return Void, err
	}

	if condition == "false" {
		return Void, nil
	}
	return Void, indexed.jump("If", req[1])
}
