// File: kyotamd.go
// Title: kyotamd High-Level Engine
// Description: Provides the Engine that integrates parser, registry and
//              interpreter for evaluating kyotamd source text and files,
//              plus static validation without execution.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial engine implementation

package kyotamd

import (
	"errors"
	"io"
	"os"
	"sort"
	"time"

	"github.com/google/uuid"

	mdwerror "github.com/msto63/kyotamd/foundation/core/error"
	mdwlog "github.com/msto63/kyotamd/foundation/core/log"
	mdwast "github.com/msto63/kyotamd/foundation/kyotamd/ast"
	mdwinterp "github.com/msto63/kyotamd/foundation/kyotamd/interpreter"
	mdwparser "github.com/msto63/kyotamd/foundation/kyotamd/parser"
)

// FileExtension is the conventional extension of kyotamd source files
const FileExtension = ".kmd"

// Engine provides a simplified interface to the kyotamd system
type Engine struct {
	parser      *mdwparser.Parser
	interpreter *mdwinterp.Interpreter
	registry    *mdwinterp.Registry
	logger      *mdwlog.Logger
	options     Options
}

// Options configures the engine
type Options struct {
	Logger         *mdwlog.Logger
	Registry       *mdwinterp.Registry         // Shared host command table
	Commands       map[string]mdwinterp.Action // Host commands to register
	Aliases        map[string]string           // Alias name to command name
	Output         io.Writer                   // Print destination (default: os.Stdout)
	MaxInputLength int                         // Maximum source length in runes, 0 for unlimited
}

// Result describes one evaluation
type Result struct {
	RunID         string          `json:"run_id"`
	Source        string          `json:"source,omitempty"`
	Value         mdwinterp.Value `json:"-"`
	Commands      int             `json:"commands"`
	Jumps         int             `json:"jumps"`
	StartedAt     time.Time       `json:"started_at"`
	ExecutionTime time.Duration   `json:"execution_time"`
}

// New creates a new engine
func New(opts Options) (*Engine, error) {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	logger := opts.Logger.WithField("component", "kyotamd-engine")

	if opts.Registry == nil {
		opts.Registry = mdwinterp.NewRegistry(opts.Logger)
	}

	p, err := mdwparser.New(mdwparser.Options{
		Logger:         opts.Logger,
		MaxInputLength: opts.MaxInputLength,
	})
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to initialize kyotamd parser").
			WithOperation("kyotamd.New")
	}

	interp, err := mdwinterp.New(mdwinterp.Options{
		Commands: opts.Commands,
		Registry: opts.Registry,
		Parser:   p,
		Output:   opts.Output,
		Logger:   opts.Logger,
	})
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to initialize kyotamd interpreter").
			WithOperation("kyotamd.New")
	}

	aliases := make([]string, 0, len(opts.Aliases))
	for alias := range opts.Aliases {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)

	for _, alias := range aliases {
		target := opts.Aliases[alias]
		if !interp.HasCommand(target) {
			return nil, mdwerror.New("alias " + alias + " points at unknown command " + target).
				WithCode(mdwerror.CodeInvalidInput).
				WithOperation("kyotamd.New").
				WithDetail("alias", alias).
				WithDetail("command", target)
		}
		if err := opts.Registry.RegisterAlias(alias, target); err != nil {
			return nil, err
		}
	}

	engine := &Engine{
		parser:      p,
		interpreter: interp,
		registry:    opts.Registry,
		logger:      logger,
		options:     opts,
	}

	logger.Debug("kyotamd engine initialized", mdwlog.Fields{
		"maxInputLength": opts.MaxInputLength,
		"hostCommands":   opts.Registry.Len(),
		"aliases":        len(opts.Aliases),
	})

	return engine, nil
}

// Eval evaluates source text and returns the value of the last command
func (e *Engine) Eval(text string) (mdwinterp.Value, error) {
	return e.interpreter.Eval(text)
}

// Execute evaluates source text and reports what the run did. source names
// the text in logs and may be empty.
func (e *Engine) Execute(source, text string) (*Result, error) {
	result := &Result{
		RunID:  uuid.New().String(),
		Source: source,
	}
	logger := e.logger.WithFields(mdwlog.Fields{
		"run_id": result.RunID,
		"source": source,
	})

	timer := logger.StartTimer("run")
	result.StartedAt = timer.StartTime()
	before := e.interpreter.Stats()

	value, err := e.interpreter.Eval(text)

	after := e.interpreter.Stats()
	result.Value = value
	result.Commands = after.Commands - before.Commands
	result.Jumps = after.Jumps - before.Jumps

	if err != nil {
		result.ExecutionTime = timer.Elapsed()
		logger.LogError(err)
		return result, err
	}

	result.ExecutionTime = timer.
		WithField("commands", result.Commands).
		WithField("jumps", result.Jumps).
		Stop()

	return result, nil
}

// EvalFile reads and evaluates a source file
func (e *Engine) EvalFile(path string) (*Result, error) {
	text, err := ReadSource(path)
	if err != nil {
		return nil, err
	}
	return e.Execute(path, text)
}

// ReadSource reads a source file. A missing file is NOT_FOUND, any other
// read failure IO_ERROR.
func ReadSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		code := mdwerror.CodeIO
		if errors.Is(err, os.ErrNotExist) {
			code = mdwerror.CodeNotFound
		}
		return "", mdwerror.Wrap(err, "failed to read source file").
			WithCode(code).
			WithOperation("kyotamd.ReadSource").
			WithDetail("file", path)
	}
	return string(data), nil
}

// Parse parses source text without executing it
func (e *Engine) Parse(text string) ([]*mdwast.Command, error) {
	return e.parser.Parse(text)
}

// Validate returns the first problem Check finds, or nil
func (e *Engine) Validate(text string) error {
	if problems := e.Check(text); len(problems) > 0 {
		return problems[0]
	}
	return nil
}

// Check parses text and reports every unknown command and every
// control-flow built-in used as an argument, in source order. A syntax
// error is the only problem reported when parsing fails. Labels are not
// checked since they may come from earlier evaluations.
func (e *Engine) Check(text string) []error {
	program, err := e.parser.Parse(text)
	if err != nil {
		return []error{err}
	}

	var problems []error
	for _, cmd := range program {
		line := cmd.Line
		top := cmd

		mdwast.Walk(cmd, func(arg mdwast.Argument) bool {
			nested, ok := arg.(*mdwast.Command)
			if !ok {
				return true
			}

			if !e.interpreter.HasCommand(nested.Name) {
				problems = append(problems, mdwerror.NewReferenceError("unknown command \""+nested.Name+"\"").
					WithOperation("kyotamd.Check").
					WithDetail("command", nested.Name).
					WithDetail("line", line))
			} else if nested != top && isControlFlow(e.registry.Resolve(nested.Name)) {
				problems = append(problems, mdwerror.NewSyntaxError(nested.Name+" cannot be used as an argument").
					WithOperation("kyotamd.Check").
					WithDetail("command", nested.Name).
					WithDetail("line", line))
			}
			return true
		})
	}

	return problems
}

func isControlFlow(name string) bool {
	switch name {
	case "Label", "Goto", "If":
		return true
	}
	return false
}

// Commands lists built-in and host commands
func (e *Engine) Commands() []mdwinterp.CommandInfo {
	return e.interpreter.Commands()
}

// Interpreter returns the underlying interpreter
func (e *Engine) Interpreter() *mdwinterp.Interpreter {
	return e.interpreter
}

// Registry returns the host command table
func (e *Engine) Registry() *mdwinterp.Registry {
	return e.registry
}

// Reset clears variables and labels
func (e *Engine) Reset() {
	e.interpreter.Reset()
}

// SetOutput changes the Print destination
func (e *Engine) SetOutput(w io.Writer) {
	e.interpreter.SetOutput(w)
}
