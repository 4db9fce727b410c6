// File: interpreter_test.go
// Title: kyotamd Interpreter Tests
// Description: Tests for the execution loop, jumps, contexts, host
//              commands, aliases, persistence across evaluations and
//              counters.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial test suite

package interpreter

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	mdwerror "github.com/msto63/kyotamd/foundation/core/error"
	mdwlog "github.com/msto63/kyotamd/foundation/core/log"
	mdwast "github.com/msto63/kyotamd/foundation/kyotamd/ast"
)

const countToThree = `Var i 0
Label loop
Var i (Calc (Var i) + 1)
Print (Var i)
If (Cond (Var i) < 3) loop`

func TestEvalLoop(t *testing.T) {
	in, out := newTestInterpreter(t, nil)

	value := mustEval(t, in, countToThree)
	if !value.IsVoid() {
		t.Errorf("Expected Void from final If, got %#v", value)
	}
	if out.String() != "1\n2\n3\n" {
		t.Errorf("Expected 1..3, got %q", out.String())
	}
	if got := in.Variable("i"); got != Of("3") {
		t.Errorf("Expected i=3, got %#v", got)
	}
	if got := in.Labels()["loop"]; got != 1 {
		t.Errorf("Expected label loop at index 1, got %d", got)
	}
}

func TestEvalResult(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   Value
	}{
		{"empty program", "", Void},
		{"only comments", "# nothing\n\n   \n# here", Void},
		{"last value", "Var a 1\nVar b 2", Of("2")},
		{"last is void", "Var a 1\nPrint (Var a)", Void},
		{"commented lines skipped", "Var a 1\n# Var a 2\nVar a", Of("1")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, _ := newTestInterpreter(t, nil)
			if got := mustEval(t, in, tt.source); got != tt.want {
				t.Errorf("Expected %#v, got %#v", tt.want, got)
			}
		})
	}
}

func TestJumpResumesAtLabel(t *testing.T) {
	var marks []int
	in, _ := newTestInterpreter(t, map[string]Action{
		"Mark": func(ctx Context, args ...Value) (Value, error) {
			if indexed, ok := ctx.(*IndexedContext); ok {
				marks = append(marks, indexed.Index())
			}
			return Void, nil
		},
	})

	source := `Mark
Var n 0
Label again
Mark
Var n (Calc (Var n) + 1)
If (Cond (Var n) < 2) again
Mark`

	mustEval(t, in, source)

	want := []int{0, 3, 3, 6}
	if len(marks) != len(want) {
		t.Fatalf("Expected marks %v, got %v", want, marks)
	}
	for i := range want {
		if marks[i] != want[i] {
			t.Errorf("Expected marks %v, got %v", want, marks)
			break
		}
	}

	// Indices 0-5, then 2-6 after the jump
	stats := in.Stats()
	if stats.Commands != 11 {
		t.Errorf("Expected 11 executed commands, got %d", stats.Commands)
	}
	if stats.Jumps != 1 {
		t.Errorf("Expected 1 jump, got %d", stats.Jumps)
	}
	if stats.Evaluations != 1 {
		t.Errorf("Expected 1 evaluation, got %d", stats.Evaluations)
	}
}

func TestJumpToSelfAdvances(t *testing.T) {
	in, out := newTestInterpreter(t, nil)

	// A label declared on the If's own line never loops
	in.labels["here"] = 0
	mustEval(t, in, "If true here\nPrint after")

	if out.String() != "after\n" {
		t.Errorf("Expected execution to advance, got %q", out.String())
	}
	if in.Stats().Jumps != 0 {
		t.Errorf("Expected no counted jumps, got %d", in.Stats().Jumps)
	}
}

func TestHostJumpTargets(t *testing.T) {
	in, out := newTestInterpreter(t, map[string]Action{
		"Jump": func(ctx Context, args ...Value) (Value, error) {
			indexed, ok := ctx.(*IndexedContext)
			if !ok {
				return Void, errors.New("top-level context required")
			}
			indexed.SetIndex(int(ToNumber(Arg(args, 0).String())))
			return Void, nil
		},
	})

	_, err := in.Eval("Print before\nJump -1\nPrint after")
	if !mdwerror.HasCode(err, mdwerror.CodeInternal) {
		t.Fatalf("Expected INTERNAL error for a negative index, got %v", err)
	}
	if e, ok := err.(*mdwerror.Error); ok {
		if line, _ := e.Detail("line"); line != 2 {
			t.Errorf("Expected line 2, got %v", line)
		}
		if command, _ := e.Detail("command"); command != "Jump" {
			t.Errorf("Expected command Jump, got %v", command)
		}
	}
	if out.String() != "before\n" {
		t.Errorf("Expected output up to the failing jump, got %q", out.String())
	}

	out.Reset()
	mustEval(t, in, "Jump 10\nPrint skipped")
	if out.Len() != 0 {
		t.Errorf("Expected a jump past the end to finish the program, got %q", out.String())
	}
}

func TestTraceLogging(t *testing.T) {
	for _, level := range []mdwlog.Level{mdwlog.LevelTrace, mdwlog.LevelDebug} {
		logs := &bytes.Buffer{}
		in, err := New(Options{
			Output: &bytes.Buffer{},
			Logger: mdwlog.NewWithConfig(mdwlog.Config{Level: level, Format: mdwlog.FormatText, Output: logs}),
		})
		if err != nil {
			t.Fatalf("Failed to create interpreter: %v", err)
		}
		mustEval(t, in, countToThree)

		traced := strings.Contains(logs.String(), "Dispatching command") && strings.Contains(logs.String(), "Jump")
		if traced != (level == mdwlog.LevelTrace) {
			t.Errorf("Expected dispatch tracing only at trace level, level %s got %q", level, logs.String())
		}
	}
}

func TestGotoForward(t *testing.T) {
	in, out := newTestInterpreter(t, nil)

	// Labels are stored when their line runs, so a forward jump fails
	_, err := in.Eval("Goto skip\nPrint skipped\nLabel skip")
	if !mdwerror.IsReferenceError(err) {
		t.Errorf("Expected reference error for forward label, got %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("Expected no output, got %q", out.String())
	}

	// A label from an earlier program keeps its index
	mustEval(t, in, "Print a\nPrint b\nLabel skip")
	out.Reset()
	mustEval(t, in, "Goto skip\nPrint skipped\nPrint landed\nPrint done")
	if out.String() != "landed\ndone\n" {
		t.Errorf("Expected jump to index 2, got %q", out.String())
	}
}

func TestPersistenceAcrossEval(t *testing.T) {
	in, out := newTestInterpreter(t, nil)

	mustEval(t, in, "Var greeting hello")
	mustEval(t, in, "Print (Var greeting) world")
	if out.String() != "hello world\n" {
		t.Errorf("Expected variable to persist, got %q", out.String())
	}

	mustEval(t, in, "Label first")
	mustEval(t, in, "Print x\nLabel second")
	labels := in.Labels()
	if labels["first"] != 0 || labels["second"] != 1 {
		t.Errorf("Expected labels to persist with program indices, got %v", labels)
	}

	in.Reset()
	if len(in.Variables()) != 0 || len(in.Labels()) != 0 {
		t.Errorf("Expected empty stores after Reset")
	}
	if in.Stats() != (Stats{}) {
		t.Errorf("Expected zero stats after Reset, got %+v", in.Stats())
	}
}

func TestFailFast(t *testing.T) {
	in, out := newTestInterpreter(t, nil)

	_, err := in.Eval("Var a 1\nFrobnicate\nVar b 2")
	if !mdwerror.IsReferenceError(err) {
		t.Fatalf("Expected reference error, got %v", err)
	}
	if in.Variable("a") != Of("1") {
		t.Errorf("Expected changes before the error to persist")
	}
	if !in.Variable("b").IsVoid() {
		t.Errorf("Expected commands after the error not to run")
	}

	// A parse error runs nothing at all
	_, err = in.Eval("Print first\nbad line")
	if !mdwerror.IsSyntaxError(err) {
		t.Errorf("Expected syntax error, got %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("Expected no output after parse error, got %q", out.String())
	}
}

func TestContexts(t *testing.T) {
	var seen []Context
	record := func(ctx Context, args ...Value) (Value, error) {
		seen = append(seen, ctx)
		return Of(strings.Join(Strings(args), "")), nil
	}
	in, _ := newTestInterpreter(t, map[string]Action{"Record": record})

	value := mustEval(t, in, "Var pad 0\nRecord a (Record b (Record c))")
	if value != Of("abc") {
		t.Errorf("Expected abc, got %#v", value)
	}
	if len(seen) != 3 {
		t.Fatalf("Expected 3 calls, got %d", len(seen))
	}

	// Innermost runs first
	inner, ok := seen[0].(*ArgumentContext)
	if !ok {
		t.Fatalf("Expected innermost to run in ArgumentContext, got %T", seen[0])
	}
	middle, ok := seen[1].(*ArgumentContext)
	if !ok {
		t.Fatalf("Expected middle to run in ArgumentContext, got %T", seen[1])
	}
	outer, ok := seen[2].(*IndexedContext)
	if !ok {
		t.Fatalf("Expected outer to run in IndexedContext, got %T", seen[2])
	}

	if inner.Parent() != Context(middle) || middle.Parent() != Context(outer) {
		t.Errorf("Expected argument contexts to chain to their caller")
	}
	if outer.Index() != 1 {
		t.Errorf("Expected index 1, got %d", outer.Index())
	}
	if Root(inner) != Context(outer) {
		t.Errorf("Expected Root to return the indexed context")
	}
	for _, ctx := range seen {
		if ctx.Interpreter() != in {
			t.Errorf("Expected every context to reference the interpreter")
		}
	}
}

func TestArgumentOrder(t *testing.T) {
	var order []string
	in, _ := newTestInterpreter(t, map[string]Action{
		"Note": func(ctx Context, args ...Value) (Value, error) {
			s := strings.Join(Strings(args), "+")
			order = append(order, s)
			return Of(s), nil
		},
	})

	mustEval(t, in, "Note (Note 1) x (Note 2)")
	want := "1,2,1+x+2"
	if got := strings.Join(order, ","); got != want {
		t.Errorf("Expected evaluation order %s, got %s", want, got)
	}
}

func TestHostCommands(t *testing.T) {
	sentinel := errors.New("host failure")
	in, out := newTestInterpreter(t, map[string]Action{
		"Upper": func(ctx Context, args ...Value) (Value, error) {
			s, _ := Arg(args, 0).Get()
			return Of(strings.ToUpper(s)), nil
		},
		"Fail": func(ctx Context, args ...Value) (Value, error) {
			return Void, sentinel
		},
	})

	mustEval(t, in, "Print (Upper hello)")
	if out.String() != "HELLO\n" {
		t.Errorf("Expected HELLO, got %q", out.String())
	}

	_, err := in.Eval("Print (Fail)")
	if err != sentinel {
		t.Errorf("Expected host error to be returned unchanged, got %v", err)
	}

	if !in.HasCommand("Upper") || in.IsBuiltin("Upper") {
		t.Errorf("Expected Upper to be a host command")
	}
}

func TestBuiltinsCannotBeShadowed(t *testing.T) {
	called := false
	in, out := newTestInterpreter(t, map[string]Action{
		"Print": func(ctx Context, args ...Value) (Value, error) {
			called = true
			return Void, nil
		},
	})

	mustEval(t, in, "Print still builtin")
	if called {
		t.Errorf("Expected host Print never to run")
	}
	if out.String() != "still builtin\n" {
		t.Errorf("Expected built-in output, got %q", out.String())
	}
}

func TestAliases(t *testing.T) {
	in, out := newTestInterpreter(t, map[string]Action{
		"Shout": func(ctx Context, args ...Value) (Value, error) {
			return Of(strings.ToUpper(strings.Join(Strings(args), " "))), nil
		},
	})

	if err := in.Registry().RegisterAlias("Say", "Print"); err != nil {
		t.Fatalf("Failed to alias built-in: %v", err)
	}
	if err := in.Registry().RegisterAlias("Yell", "Shout"); err != nil {
		t.Fatalf("Failed to alias host command: %v", err)
	}

	mustEval(t, in, "Say (Yell hi there)")
	if out.String() != "HI THERE\n" {
		t.Errorf("Expected aliased output, got %q", out.String())
	}
	if !in.HasCommand("Say") || !in.HasCommand("Yell") {
		t.Errorf("Expected aliases to resolve")
	}
}

func TestSharedRegistry(t *testing.T) {
	registry := NewRegistry(mdwlog.Discard())
	if err := registry.RegisterFunc("Echo", func(ctx Context, args ...Value) (Value, error) {
		return Arg(args, 0), nil
	}); err != nil {
		t.Fatalf("Failed to register: %v", err)
	}

	in, err := New(Options{Registry: registry, Output: &bytes.Buffer{}, Logger: mdwlog.Discard()})
	if err != nil {
		t.Fatalf("Failed to create interpreter: %v", err)
	}

	if got := mustEval(t, in, "Echo ping"); got != Of("ping") {
		t.Errorf("Expected ping, got %#v", got)
	}
	if in.Registry() != registry {
		t.Errorf("Expected interpreter to use the shared registry")
	}
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name     string
		commands map[string]Action
		code     mdwerror.Code
	}{
		{"nil action", map[string]Action{"Broken": nil}, mdwerror.CodeInvalidInput},
		{"invalid name", map[string]Action{"lower": func(Context, ...Value) (Value, error) { return Void, nil }}, mdwerror.CodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(Options{Commands: tt.commands, Logger: mdwlog.Discard()})
			if !mdwerror.HasCode(err, tt.code) {
				t.Errorf("Expected %s, got %v", tt.code, err)
			}
		})
	}
}

func TestExecuteCommandWithoutContext(t *testing.T) {
	in, out := newTestInterpreter(t, nil)

	cmd := mdwast.NewCommand("Print", mdwast.StringArg("direct"))
	if _, err := in.ExecuteCommand(cmd, nil); err != nil {
		t.Fatalf("ExecuteCommand failed: %v", err)
	}
	if out.String() != "direct\n" {
		t.Errorf("Expected direct output, got %q", out.String())
	}

	_, err := in.ExecuteCommand(mdwast.NewCommand("Goto", mdwast.StringArg("x")), nil)
	if !mdwerror.IsSyntaxError(err) {
		t.Errorf("Expected syntax error outside a program, got %v", err)
	}
}

func TestSetVariable(t *testing.T) {
	in, _ := newTestInterpreter(t, nil)

	in.SetVariable("name", Of("kyota"))
	in.SetVariable("name", Void)
	if got := in.Variable("name"); got != Of("kyota") {
		t.Errorf("Expected Void to be ignored, got %#v", got)
	}

	vars := in.Variables()
	vars["name"] = Of("changed")
	if in.Variable("name") != Of("kyota") {
		t.Errorf("Expected Variables to return a copy")
	}
}

func TestCommands(t *testing.T) {
	in, _ := newTestInterpreter(t, map[string]Action{
		"Alpha": func(Context, ...Value) (Value, error) { return Void, nil },
		"Print": func(Context, ...Value) (Value, error) { return Void, nil },
	})

	infos := in.Commands()
	names := make([]string, len(infos))
	for i, info := range infos {
		names[i] = info.Name
	}

	want := "Alpha,Calc,Cond,Goto,If,Label,Print,Var"
	if got := strings.Join(names, ","); got != want {
		t.Errorf("Expected %s, got %s", want, got)
	}
	for _, info := range infos {
		if info.Builtin != (info.Name != "Alpha") {
			t.Errorf("Unexpected Builtin flag for %s", info.Name)
		}
	}
}
