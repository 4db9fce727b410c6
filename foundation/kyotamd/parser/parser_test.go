// File: parser_test.go
// Title: kyotamd Parser Tests
// Description: Tests for command names, argument forms, ignorable lines,
//              scan offsets and whole-text parsing.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial test suite

package parser

import (
	"io"
	"reflect"
	"strings"
	"testing"

	mdwerror "github.com/msto63/kyotamd/foundation/core/error"
	mdwlog "github.com/msto63/kyotamd/foundation/core/log"
	mdwast "github.com/msto63/kyotamd/foundation/kyotamd/ast"
)

func TestIsIgnorable(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"", true},
		{"   ", true},
		{"# Print x", true},
		{"   # Label start", true},
		{"only lowercase words", true},
		{"x # Print", true},
		{"Print x # trailing", false},
		{"  Print", false},
		{"x Print", false},
	}

	for _, tt := range tests {
		if got := IsIgnorable(tt.line); got != tt.want {
			t.Errorf("IsIgnorable(%q): expected %v, got %v", tt.line, tt.want, got)
		}
	}
}

func TestParseCommandName(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    string
		wantMsg string
	}{
		{"simple", "Print x", "Print", ""},
		{"indented", "  \tSet-Var x", "Set-Var", ""},
		{"unicode indent", "\u3000\u00a0Print", "Print", ""},
		{"digit word", "Step-2-Go", "Step-2-Go", ""},
		{"name only", "Reset", "Reset", ""},
		{"lowercase start", "labelGoto", "", ErrMsgStartUppercase},
		{"empty", "", "", ErrMsgStartUppercase},
		{"spaces only", "   ", "", ErrMsgStartUppercase},
		{"digit start", "2Go", "", ErrMsgStartUppercase},
		{"camel case", "LabelGoto x", "", ErrMsgHyphenated},
		{"lowercase word", "Set-var x", "", ErrMsgWordStart},
		{"trailing hyphen", "Set- x", "", ErrMsgWordStart},
		{"hyphen at end", "Set-", "", ErrMsgWordStart},
		{"double hyphen", "Set--Var", "", ErrMsgWordStart},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCommandName(tt.line)
			if tt.wantMsg == "" {
				if err != nil {
					t.Fatalf("Unexpected error: %v", err)
				}
				if got != tt.want {
					t.Errorf("Expected %q, got %q", tt.want, got)
				}
				return
			}

			if !mdwerror.IsSyntaxError(err) {
				t.Fatalf("Expected syntax error, got %v", err)
			}
			if err.Error() != tt.wantMsg {
				t.Errorf("Expected message %q, got %q", tt.wantMsg, err.Error())
			}
		})
	}
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		check func(t *testing.T, cmd *mdwast.Command)
	}{
		{
			name: "bare tokens",
			line: "Calc 2 + 3",
			check: func(t *testing.T, cmd *mdwast.Command) {
				assertArgs(t, cmd, "2", "+", "3")
			},
		},
		{
			name: "string literals",
			line: "Print \"Hello, world\" \"\" \"tab\tin\"",
			check: func(t *testing.T, cmd *mdwast.Command) {
				assertArgs(t, cmd, "Hello, world", "", "tab\tin")
			},
		},
		{
			name: "escapes",
			line: `Print "a\nb" "say \"hi\"" "\q\\"`,
			check: func(t *testing.T, cmd *mdwast.Command) {
				assertArgs(t, cmd, "a\nb", `say "hi"`, `q\`)
			},
		},
		{
			name: "nested command",
			line: `Var x (Calc "2" "+" "3")`,
			check: func(t *testing.T, cmd *mdwast.Command) {
				assertRendered(t, cmd, "Var x (Calc 2 + 3)")
				if !cmd.IsNested(1) {
					t.Error("Expected argument 1 to be a nested command")
				}
			},
		},
		{
			name: "deep nesting",
			line: `A (B (C "x") y) z`,
			check: func(t *testing.T, cmd *mdwast.Command) {
				assertRendered(t, cmd, "A (B (C x) y) z")
				if d := mdwast.Depth(cmd); d != 3 {
					t.Errorf("Expected depth 3, got %d", d)
				}
			},
		},
		{
			name: "scan resumes right after closing parenthesis",
			line: "Print (Var x)y",
			check: func(t *testing.T, cmd *mdwast.Command) {
				assertRendered(t, cmd, "Print (Var x) y")
			},
		},
		{
			name: "scan resumes right after closing quote",
			line: `Print "a"b "c"`,
			check: func(t *testing.T, cmd *mdwast.Command) {
				assertArgs(t, cmd, "a", "b", "c")
			},
		},
		{
			name: "indented line",
			line: "    Print  x   y",
			check: func(t *testing.T, cmd *mdwast.Command) {
				assertArgs(t, cmd, "x", "y")
			},
		},
		{
			name: "padded nested command",
			line: "Print ( Calc 1 + 2 )",
			check: func(t *testing.T, cmd *mdwast.Command) {
				assertRendered(t, cmd, "Print (Calc 1 + 2)")
			},
		},
		{
			name: "unterminated literal runs to end of line",
			line: `Print "abc def`,
			check: func(t *testing.T, cmd *mdwast.Command) {
				assertArgs(t, cmd, "abc def")
			},
		},
		{
			name: "trailing backslash ends literal",
			line: `Print "abc\`,
			check: func(t *testing.T, cmd *mdwast.Command) {
				assertArgs(t, cmd, "abc")
			},
		},
		{
			name: "unbalanced parenthesis runs to end of line",
			line: "Print (Calc 1 + 2",
			check: func(t *testing.T, cmd *mdwast.Command) {
				assertRendered(t, cmd, "Print (Calc 1 + 2)")
			},
		},
		{
			name: "delimiters inside bare token",
			line: `Print a(b c"d`,
			check: func(t *testing.T, cmd *mdwast.Command) {
				assertArgs(t, cmd, "a(b", `c"d`)
			},
		},
		{
			name: "unicode arguments",
			line: "Print héllo 世界 end",
			check: func(t *testing.T, cmd *mdwast.Command) {
				assertArgs(t, cmd, "héllo", "世界", "end")
			},
		},
		{
			name: "no arguments",
			line: "Print",
			check: func(t *testing.T, cmd *mdwast.Command) {
				if len(cmd.Arguments) != 0 {
					t.Errorf("Expected no arguments, got %v", cmd.Arguments)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := ParseCommand(tt.line)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			tt.check(t, cmd)
		})
	}
}

func TestParseCommandErrors(t *testing.T) {
	for _, line := range []string{
		"print x",
		"Print (lower case)",
		"Print ()",
		"Print (Calc (Set-var x))",
	} {
		if _, err := ParseCommand(line); !mdwerror.IsSyntaxError(err) {
			t.Errorf("ParseCommand(%q): expected syntax error, got %v", line, err)
		}
	}
}

func TestParse(t *testing.T) {
	source := strings.Join([]string{
		"# counter example",
		"Var i 0",
		"",
		"Label loop",
		"   ",
		"Var i (Calc (Var i) + 1)  # increment",
		"If (Cond (Var i) < 3) loop",
	}, "\n")

	commands, err := Parse(source)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	wantNames := []string{"Var", "Label", "Var", "If"}
	wantLines := []int{2, 4, 6, 7}
	if len(commands) != len(wantNames) {
		t.Fatalf("Expected %d commands, got %d", len(wantNames), len(commands))
	}
	for i, cmd := range commands {
		if cmd.Name != wantNames[i] || cmd.Line != wantLines[i] {
			t.Errorf("Command %d: expected %s on line %d, got %s on line %d",
				i, wantNames[i], wantLines[i], cmd.Name, cmd.Line)
		}
	}

	// A '#' after content is an ordinary bare token.
	assertArgs(t, commands[2].Arguments[1].(*mdwast.Command).Arguments[0].(*mdwast.Command), "i")
	if got := commands[2].Arguments[2]; got != mdwast.StringArg("#") {
		t.Errorf("Expected '#' token, got %v", got)
	}
}

func TestParseEmptyAndCarriageReturns(t *testing.T) {
	commands, err := Parse("")
	if err != nil || len(commands) != 0 {
		t.Errorf("Expected no commands and no error, got %v, %v", commands, err)
	}

	commands, err = Parse("Print a\r\nPrint b\r\n")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(commands) != 2 {
		t.Fatalf("Expected 2 commands, got %d", len(commands))
	}
	assertArgs(t, commands[1], "b")
}

func TestParseErrorsAbortWithLine(t *testing.T) {
	commands, err := Parse("Print ok\nPrint fine\nbad Command")
	if commands != nil {
		t.Errorf("Expected no partial result, got %v", commands)
	}
	if !mdwerror.IsSyntaxError(err) {
		t.Fatalf("Expected syntax error, got %v", err)
	}

	var mdwErr *mdwerror.Error
	if !asMdwError(err, &mdwErr) {
		t.Fatalf("Expected *mdwerror.Error, got %T", err)
	}
	if line, ok := mdwErr.Detail("line"); !ok || line != 3 {
		t.Errorf("Expected line detail 3, got %v", line)
	}
	if col, ok := mdwErr.Detail("column"); !ok || col != 1 {
		t.Errorf("Expected column detail 1, got %v", col)
	}
}

func TestParseIsDeterministicAndRoundTrips(t *testing.T) {
	source := "Var greeting \"Hello, world\"\nPrint (Var greeting) \"a\\nb\" (Calc 2 ** (Calc 1 + 2))\nCond \"\" = \"\""

	first, err := Parse(source)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	second, _ := Parse(source)
	if !reflect.DeepEqual(first, second) {
		t.Error("Expected identical results for identical input")
	}

	rendered := mdwast.Program(first).String()
	reparsed, err := Parse(rendered)
	if err != nil {
		t.Fatalf("Unexpected error re-parsing %q: %v", rendered, err)
	}
	if !reflect.DeepEqual(mdwast.DumpProgram(first), mdwast.DumpProgram(reparsed)) {
		t.Errorf("Expected rendered program to parse back to the same tree:\n%s", rendered)
	}
}

func TestScanHelpers(t *testing.T) {
	if got := StartSpacesOffset("\t  Print"); got != 3 {
		t.Errorf("Expected 3 leading spaces, got %d", got)
	}
	if got := StartSpacesOffset("\u3000\ufeffX"); got != 2 {
		t.Errorf("Expected offsets in runes, got %d", got)
	}

	value, consumed := ParseStringLiteral(`x "a\"b" y`, 2)
	if value != `a"b` || consumed != 6 {
		t.Errorf("Expected (a\"b, 6), got (%q, %d)", value, consumed)
	}

	value, consumed = ParseStringLiteral(`"été" x`, 0)
	if value != "été" || consumed != 5 {
		t.Errorf("Expected rune-counted span 5, got (%q, %d)", value, consumed)
	}

	cmd, consumed, err := ParseParenthesis("Print (Calc 1 + (Var x)) tail", 6)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if consumed != 18 {
		t.Errorf("Expected 18 runes consumed, got %d", consumed)
	}
	assertRendered(t, cmd, "Calc 1 + (Var x)")

	args, err := ParseCommandArguments("Print a (B) c", 5)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(args) != 3 {
		t.Errorf("Expected 3 arguments, got %d", len(args))
	}
}

func TestParserOptions(t *testing.T) {
	logger := mdwlog.NewWithConfig(mdwlog.Config{Level: mdwlog.LevelDebug, Output: io.Discard})

	p, err := New(Options{Logger: logger, MaxInputLength: 10})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if _, err := p.Parse("Print ééé"); err != nil {
		t.Errorf("Expected 10 runes to be accepted, got %v", err)
	}
	if _, err := p.Parse("Print 12345"); !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
		t.Errorf("Expected INVALID_INPUT for long input, got %v", err)
	}

	if _, err := New(Options{MaxInputLength: -1}); err == nil {
		t.Error("Expected error for negative limit")
	}

	unlimited, err := New(Options{Logger: logger})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	commands, err := unlimited.Parse(strings.Repeat("Print x\n", 1000))
	if err != nil || len(commands) != 1000 {
		t.Errorf("Expected 1000 commands, got %d (%v)", len(commands), err)
	}

	cmd, err := unlimited.ParseCommand("Goto end")
	if err != nil || cmd.Name != "Goto" {
		t.Errorf("Expected Goto command, got %v (%v)", cmd, err)
	}
}

func assertArgs(t *testing.T, cmd *mdwast.Command, want ...string) {
	t.Helper()
	if len(cmd.Arguments) != len(want) {
		t.Fatalf("Expected %d arguments, got %d: %v", len(want), len(cmd.Arguments), cmd.Arguments)
	}
	for i, w := range want {
		got, ok := cmd.Arguments[i].(mdwast.StringArg)
		if !ok {
			t.Errorf("Argument %d: expected string, got %T", i, cmd.Arguments[i])
			continue
		}
		if string(got) != w {
			t.Errorf("Argument %d: expected %q, got %q", i, w, string(got))
		}
	}
}

func assertRendered(t *testing.T, cmd *mdwast.Command, want string) {
	t.Helper()
	if got := cmd.String(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func asMdwError(err error, target **mdwerror.Error) bool {
	e, ok := err.(*mdwerror.Error)
	if ok {
		*target = e
	}
	return ok
}
