// File: builtins_test.go
// Title: kyotamd Built-in Command Tests
// Description: Table-driven tests for Var, Calc, Cond, Print, Label, Goto
//              and If, including context restrictions and missing
//              arguments.
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
	"testing"

	mdwerror "github.com/msto63/kyotamd/foundation/core/error"
	mdwlog "github.com/msto63/kyotamd/foundation/core/log"
)

func newTestInterpreter(t *testing.T, commands map[string]Action) (*Interpreter, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	in, err := New(Options{
		Commands: commands,
		Output:   out,
		Logger:   mdwlog.Discard(),
	})
	if err != nil {
		t.Fatalf("Failed to create interpreter: %v", err)
	}
	return in, out
}

func mustEval(t *testing.T, in *Interpreter, source string) Value {
	t.Helper()
	value, err := in.Eval(source)
	if err != nil {
		t.Fatalf("Eval(%q) failed: %v", source, err)
	}
	return value
}

func TestCalc(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{`Calc "2" "+" "3"`, "5"},
		{`Calc "2" "**" "3"`, "8"},
		{`Calc "1" "?" "2"`, "NaN"},
		{`Calc 7 - 10`, "-3"},
		{`Calc 10 / 4`, "2.5"},
		{`Calc 6 * 7`, "42"},
		{`Calc 1 / 0`, "Infinity"},
		{`Calc -1 / 0`, "-Infinity"},
		{`Calc 0 / 0`, "NaN"},
		{`Calc abc + 1`, "NaN"},
		{`Calc "" + 1`, "1"},
		{`Calc 0x10 * 2`, "32"},
		{`Calc 0.1 + 0.2`, "0.30000000000000004"},
		{`Calc 10 ** 21`, "1e+21"},
		{`Calc 2 ** 0.5`, "1.4142135623730951"},
		{`Calc (Calc 1 + 2) * (Calc 2 + 2)`, "12"},
	}

	in, _ := newTestInterpreter(t, nil)
	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			if got := mustEval(t, in, tt.source); got != Of(tt.want) {
				t.Errorf("Expected %q, got %#v", tt.want, got)
			}
		})
	}
}

func TestCond(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{`Cond "2" ">" "1"`, "true"},
		{`Cond "abc" "=" "abc"`, "true"},
		{`Cond "1" "=" "01"`, "false"},
		{`Cond 10 < 9`, "false"},
		{`Cond 9 < 10`, "true"},
		{`Cond 1 <= 1`, "true"},
		{`Cond 2 >= 3`, "false"},
		{`Cond 01 >= 1`, "true"},
		{`Cond abc < b`, "false"},
		{`Cond abc >= abc`, "false"},
		{`Cond a & b`, "true"},
		{`Cond "" & b`, "false"},
		{`Cond false & false`, "true"},
		{`Cond "" | b`, "true"},
		{`Cond "" | ""`, "false"},
		{`Cond 1 ? 1`, "false"},
	}

	in, _ := newTestInterpreter(t, nil)
	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			if got := mustEval(t, in, tt.source); got != Of(tt.want) {
				t.Errorf("Expected %q, got %#v", tt.want, got)
			}
		})
	}
}

func TestVar(t *testing.T) {
	in, _ := newTestInterpreter(t, nil)

	if got := mustEval(t, in, `Var "x" "5"`); got != Of("5") {
		t.Errorf("Expected Var with value to return it, got %#v", got)
	}
	if got := mustEval(t, in, `Var "x"`); got != Of("5") {
		t.Errorf("Expected stored value 5, got %#v", got)
	}
	if got := mustEval(t, in, `Var unknown`); !got.IsVoid() {
		t.Errorf("Expected Void for unset variable, got %#v", got)
	}

	mustEval(t, in, `Var x (Calc "2" "+" "3")`)
	if got := in.Variable("x"); got != Of("5") {
		t.Errorf("Expected nested result to be stored, got %#v", got)
	}

	mustEval(t, in, `Var x ""`)
	if got := in.Variable("x"); got != Of("") {
		t.Errorf("Expected empty string to be stored, got %#v", got)
	}

	// A Void value leaves the variable untouched.
	mustEval(t, in, `Var x (Print)`)
	if got := in.Variable("x"); got != Of("") {
		t.Errorf("Expected Void not to overwrite, got %#v", got)
	}
}

func TestPrint(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{`Print "Hello, world"`, "Hello, world\n"},
		{`Print a b c`, "a b c\n"},
		{`Print`, "\n"},
		{`Print a (Var unset) b`, "a  b\n"},
		{`Print "multi\nline"`, "multi\nline\n"},
		{`Print (Calc 1 + 1) (Cond 1 = 1)`, "2 true\n"},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			in, out := newTestInterpreter(t, nil)
			if got := mustEval(t, in, tt.source); !got.IsVoid() {
				t.Errorf("Expected Print to return Void, got %#v", got)
			}
			if out.String() != tt.want {
				t.Errorf("Expected output %q, got %q", tt.want, out.String())
			}
		})
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestPrintWriteError(t *testing.T) {
	in, _ := newTestInterpreter(t, nil)
	in.SetOutput(failingWriter{})

	_, err := in.Eval("Print x")
	if !mdwerror.HasCode(err, mdwerror.CodeIO) {
		t.Errorf("Expected IO_ERROR, got %v", err)
	}
}

func TestControlFlowErrors(t *testing.T) {
	tests := []struct {
		name   string
		source string
		check  func(error) bool
	}{
		{"Label in argument", `Print (Label x)`, mdwerror.IsSyntaxError},
		{"Goto in argument", "Label l\nVar x (Goto l)", mdwerror.IsSyntaxError},
		{"If in argument", "Label l\nPrint (If true l)", mdwerror.IsSyntaxError},
		{"Goto unknown label", `Goto nowhere`, mdwerror.IsReferenceError},
		{"If true unknown label", `If true nowhere`, mdwerror.IsReferenceError},
		{"If invalid condition", "Label l\nIf maybe l", mdwerror.IsTypeError},
		{"If missing condition", `If`, mdwerror.IsTypeError},
		{"If missing label", `If true`, mdwerror.IsTypeError},
		{"If false missing label", `If false`, mdwerror.IsTypeError},
		{"If invalid condition checked before label", `If 1`, mdwerror.IsTypeError},
		{"Label missing id", `Label`, mdwerror.IsTypeError},
		{"Goto missing id", `Goto`, mdwerror.IsTypeError},
		{"Var missing id", `Var`, mdwerror.IsTypeError},
		{"Var void id", `Var (Print)`, mdwerror.IsTypeError},
		{"Calc missing operand", `Calc 1 +`, mdwerror.IsTypeError},
		{"Cond missing arguments", `Cond`, mdwerror.IsTypeError},
		{"unknown command", `Frobnicate x`, mdwerror.IsReferenceError},
		{"unknown nested command", `Print (Frobnicate)`, mdwerror.IsReferenceError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, _ := newTestInterpreter(t, nil)
			_, err := in.Eval(tt.source)
			if !tt.check(err) {
				t.Errorf("Unexpected error kind for %q: %v", tt.source, err)
			}
		})
	}
}

func TestIfFalseIsNoOp(t *testing.T) {
	in, out := newTestInterpreter(t, nil)

	// The label does not need to exist when the condition is false.
	value := mustEval(t, in, "If false nowhere\nPrint reached")
	if !value.IsVoid() {
		t.Errorf("Expected Void, got %#v", value)
	}
	if out.String() != "reached\n" {
		t.Errorf("Expected execution to continue, got %q", out.String())
	}
}

func TestErrorDetails(t *testing.T) {
	in, _ := newTestInterpreter(t, nil)

	_, err := in.Eval("Print ok\n\nGoto missing")
	var mdwErr *mdwerror.Error
	if !errors.As(err, &mdwErr) {
		t.Fatalf("Expected *mdwerror.Error, got %T", err)
	}

	checks := map[string]interface{}{
		"command": "Goto",
		"label":   "missing",
		"line":    3,
	}
	for key, want := range checks {
		if got, ok := mdwErr.Detail(key); !ok || got != want {
			t.Errorf("Expected detail %s=%v, got %v", key, want, got)
		}
	}
}
