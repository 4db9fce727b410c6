// ============================================================================
// kyotamd - Command Language Interpreter
// ============================================================================
//
// Package:     repl
// Description: REPL session handling input lines and meta commands
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package repl

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	mdwerror "github.com/msto63/kyotamd/foundation/core/error"
	mdwlog "github.com/msto63/kyotamd/foundation/core/log"
	"github.com/msto63/kyotamd/foundation/kyotamd"
	mdwparser "github.com/msto63/kyotamd/foundation/kyotamd/parser"
)

// MetaPrefix starts a meta command such as :vars
const MetaPrefix = ":"

// metaCommand describes a REPL meta command
type metaCommand struct {
	usage       string
	description string
}

var metaCommands = map[string]metaCommand{
	"vars":   {":vars", "List variables"},
	"labels": {":labels", "List labels and their line index"},
	"reset":  {":reset", "Clear variables and labels"},
	"load":   {":load FILE", "Evaluate a source file"},
	"help":   {":help", "Show commands"},
	"quit":   {":quit", "Leave the REPL (also :q, :exit)"},
}

// Response is the outcome of one input line
type Response struct {
	Input  string
	Output string // Text written by Print
	Value  string // Final value quoted, empty when Void
	Info   string // Meta command output
	Err    error
	Quit   bool
}

// HasValue reports whether the evaluation produced a value
func (r Response) HasValue() bool {
	return r.Value != ""
}

// Alert reports whether the error is severe enough to stand out, as for
// failures inside the interpreter rather than in the evaluated line
func (r Response) Alert() bool {
	return r.Err != nil && mdwerror.GetSeverity(r.Err).ShouldAlert()
}

// ErrorText formats the error for display, empty when there is none
func (r Response) ErrorText() string {
	switch {
	case r.Err == nil:
		return ""
	case r.Alert():
		return "internal error: " + r.Err.Error()
	default:
		return "error: " + r.Err.Error()
	}
}

// Session evaluates REPL input against one engine. It captures the
// engine's Print output and is not safe for concurrent use.
type Session struct {
	engine *kyotamd.Engine
	output bytes.Buffer
	logger *mdwlog.Logger
	count  int
}

// NewSession creates a session and redirects engine output into it
func NewSession(engine *kyotamd.Engine, logger *mdwlog.Logger) *Session {
	if logger == nil {
		logger = mdwlog.GetDefault()
	}
	s := &Session{
		engine: engine,
		logger: logger.WithField("component", "kyotamd-repl"),
	}
	engine.SetOutput(&s.output)
	return s
}

// Engine returns the session's engine
func (s *Session) Engine() *kyotamd.Engine {
	return s.engine
}

// Count returns the number of evaluated lines
func (s *Session) Count() int {
	return s.count
}

// Handle evaluates one input line. Errors are reported in the response,
// the session stays usable.
func (s *Session) Handle(line string) Response {
	input := strings.TrimSpace(line)
	resp := Response{Input: input}

	if strings.HasPrefix(input, MetaPrefix) {
		return s.handleMeta(resp)
	}
	if mdwparser.IsIgnorable(input) {
		return resp
	}

	s.count++
	result, err := s.engine.Execute("repl", input)
	resp.Output = s.takeOutput()
	if err != nil {
		resp.Err = err
		return resp
	}
	if !result.Value.IsVoid() {
		resp.Value = fmt.Sprintf("%#v", result.Value)
	}
	return resp
}

func (s *Session) handleMeta(resp Response) Response {
	name, arg, _ := strings.Cut(strings.TrimPrefix(resp.Input, MetaPrefix), " ")
	arg = strings.TrimSpace(arg)

	s.logger.Debug("Meta command", mdwlog.Fields{"meta": name})

	switch name {
	case "quit", "q", "exit":
		resp.Quit = true

	case "help":
		resp.Info = s.help()

	case "vars":
		resp.Info = s.variables()

	case "labels":
		resp.Info = s.labels()

	case "reset":
		s.engine.Reset()
		resp.Info = "State cleared"

	case "load":
		if arg == "" {
			resp.Err = mdwerror.New("usage: " + metaCommands["load"].usage).
				WithCode(mdwerror.CodeInvalidInput).
				WithOperation("repl.load")
			return resp
		}
		result, err := s.engine.EvalFile(arg)
		resp.Output = s.takeOutput()
		if err != nil {
			resp.Err = err
			return resp
		}
		resp.Info = fmt.Sprintf("Loaded %s (%d commands)", arg, result.Commands)

	default:
		resp.Err = mdwerror.New("unknown meta command " + MetaPrefix + name + ", try :help").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("repl.meta")
	}

	return resp
}

func (s *Session) takeOutput() string {
	out := s.output.String()
	s.output.Reset()
	return out
}

func (s *Session) variables() string {
	vars := s.engine.Interpreter().Variables()
	if len(vars) == 0 {
		return "(no variables)"
	}

	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)

	lines := make([]string, len(names))
	for i, name := range names {
		lines[i] = fmt.Sprintf("%s = %#v", name, vars[name])
	}
	return strings.Join(lines, "\n")
}

func (s *Session) labels() string {
	labels := s.engine.Interpreter().Labels()
	if len(labels) == 0 {
		return "(no labels)"
	}

	names := make([]string, 0, len(labels))
	for name := range labels {
		names = append(names, name)
	}
	sort.Strings(names)

	lines := make([]string, len(names))
	for i, name := range names {
		lines[i] = fmt.Sprintf("%s -> %d", name, labels[name])
	}
	return strings.Join(lines, "\n")
}

func (s *Session) help() string {
	var b strings.Builder

	b.WriteString("Commands:\n")
	for _, info := range s.engine.Commands() {
		usage := info.Name
		if info.Usage != "" {
			usage += " " + info.Usage
		}
		fmt.Fprintf(&b, "  %-24s %s\n", usage, info.Description)
	}

	if aliases := s.engine.Registry().Aliases(); len(aliases) > 0 {
		names := make([]string, 0, len(aliases))
		for alias := range aliases {
			names = append(names, alias)
		}
		sort.Strings(names)

		b.WriteString("\nAliases:\n")
		for _, alias := range names {
			fmt.Fprintf(&b, "  %-24s %s\n", alias, aliases[alias])
		}
	}

	names := make([]string, 0, len(metaCommands))
	for name := range metaCommands {
		names = append(names, name)
	}
	sort.Strings(names)

	b.WriteString("\nMeta commands:\n")
	for _, name := range names {
		meta := metaCommands[name]
		fmt.Fprintf(&b, "  %-24s %s\n", meta.usage, meta.description)
	}

	return strings.TrimRight(b.String(), "\n")
}
