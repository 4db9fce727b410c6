// File: interpreter.go
// Title: kyotamd Interpreter
// Description: Owns the variable and label stores, runs the instruction
//              pointer loop over a parsed program and dispatches commands
//              to built-ins first and host commands second.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial interpreter implementation

package interpreter

import (
	"io"
	"os"
	"sort"

	mdwerror "github.com/msto63/kyotamd/foundation/core/error"
	mdwlog "github.com/msto63/kyotamd/foundation/core/log"
	mdwast "github.com/msto63/kyotamd/foundation/kyotamd/ast"
	mdwparser "github.com/msto63/kyotamd/foundation/kyotamd/parser"
	mdwregistry "github.com/msto63/kyotamd/foundation/kyotamd/registry"
)

// Action implements a command. It receives the resolved arguments in
// source order and returns a value or Void.
type Action func(ctx Context, args ...Value) (Value, error)

// Registry is the host command table used by interpreters
type Registry = mdwregistry.Registry[Action]

// Definition describes a host command in a Registry
type Definition = mdwregistry.Definition[Action]

// NewRegistry creates an empty host command table
func NewRegistry(logger *mdwlog.Logger) *Registry {
	return mdwregistry.New[Action](mdwregistry.Options{Logger: logger})
}

// Options configures interpreter behavior
type Options struct {
	Commands map[string]Action // Host commands added to Registry
	Registry *Registry         // Shared host command table (default: new)
	Parser   *mdwparser.Parser // Parser used by Eval (default: unlimited)
	Output   io.Writer         // Print destination (default: os.Stdout)
	Logger   *mdwlog.Logger
}

// Stats counts work done by the interpreter since creation or Reset
type Stats struct {
	Evaluations int // Eval and Run calls
	Commands    int // Top-level commands executed
	Jumps       int // Instruction pointer changes by Goto or If
}

// Interpreter executes kyotamd programs
type Interpreter struct {
	variables map[string]Value
	labels    map[string]int
	builtins  map[string]builtin
	registry  *Registry
	parser    *mdwparser.Parser
	output    io.Writer
	logger    *mdwlog.Logger
	stats     Stats

	// line of the top-level command being executed, for error details
	line int
}

// New creates an interpreter with empty stores
func New(opts Options) (*Interpreter, error) {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Registry == nil {
		opts.Registry = NewRegistry(opts.Logger)
	}
	if opts.Parser == nil {
		p, err := mdwparser.New(mdwparser.Options{Logger: opts.Logger})
		if err != nil {
			return nil, err
		}
		opts.Parser = p
	}

	in := &Interpreter{
		variables: make(map[string]Value),
		labels:    make(map[string]int),
		builtins:  builtins(),
		registry:  opts.Registry,
		parser:    opts.Parser,
		output:    opts.Output,
		logger:    opts.Logger.WithField("component", "kyotamd-interpreter"),
	}

	names := make([]string, 0, len(opts.Commands))
	for name := range opts.Commands {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		action := opts.Commands[name]
		if action == nil {
			return nil, mdwerror.New("command " + name + " has no action").
				WithCode(mdwerror.CodeInvalidInput).
				WithOperation("interpreter.New").
				WithDetail("command", name)
		}
		if err := in.registry.Replace(Definition{Name: name, Action: action}); err != nil {
			return nil, err
		}
		if in.IsBuiltin(name) {
			in.logger.Warn("Host command is shadowed by a built-in and will never run", mdwlog.Fields{
				"command": name,
			})
		}
	}

	in.logger.Debug("Interpreter initialized", mdwlog.Fields{
		"builtins":     len(in.builtins),
		"hostCommands": in.registry.Len(),
	})

	return in, nil
}

// Eval parses text and runs it against the interpreter's persistent state.
// The result is the value of the last executed command, or Void for an
// empty program.
func (in *Interpreter) Eval(text string) (Value, error) {
	timer := in.logger.StartTimer("eval")

	program, err := in.parser.Parse(text)
	if err != nil {
		timer.StopWithError(err)
		return Void, err
	}
	timer.Checkpoint("parsed", mdwlog.Fields{"commands": len(program)})

	result, err := in.Run(program)
	if err != nil {
		timer.StopWithError(err)
		return Void, err
	}

	timer.Stop()
	return result, nil
}

// Run executes an already parsed program. Execution starts at index 0 and
// advances by one after each command unless the command moved the
// instruction pointer to a different index, in which case execution
// continues there. A negative index is an INTERNAL error, an index past
// the end finishes the program. The first error stops execution; stores
// keep every change made before it.
func (in *Interpreter) Run(program []*mdwast.Command) (Value, error) {
	in.stats.Evaluations++
	result := Void

	for i := 0; i < len(program); {
		cmd := program[i]

		jumped := false
		target := i
		ctx := &IndexedContext{
			interp: in,
			index:  i,
			setIndex: func(n int) {
				jumped = true
				target = n
			},
		}

		outerLine := in.line
		in.line = cmd.Line
		value, err := in.ExecuteCommand(cmd, ctx)
		in.line = outerLine
		if err != nil {
			return Void, err
		}

		in.stats.Commands++
		result = value

		if jumped && target < 0 {
			return Void, mdwerror.Newf("%s moved the instruction pointer to %d", cmd.Name, target).
				WithCode(mdwerror.CodeInternal).
				WithOperation("interpreter.Run").
				WithDetail("command", cmd.Name).
				WithDetail("line", cmd.Line)
		}
		if jumped && target != i {
			in.stats.Jumps++
			if in.logger.IsLevelEnabled(mdwlog.LevelTrace) {
				in.logger.Trace("Jump", mdwlog.Fields{"from": i, "to": target})
			}
			i = target
			continue
		}
		i++
	}

	return result, nil
}

// ExecuteCommand resolves cmd, evaluates its arguments left to right and
// invokes the action. Nested commands run in a fresh ArgumentContext whose
// parent is ctx. A nil ctx runs the command outside any program, like an
// argument.
func (in *Interpreter) ExecuteCommand(cmd *mdwast.Command, ctx Context) (Value, error) {
	if ctx == nil {
		ctx = &ArgumentContext{interp: in}
	}

	action, ok := in.resolve(cmd.Name)
	if !ok {
		return Void, in.referenceError("unknown command "+quote(cmd.Name), cmd.Name).
			WithOperation("interpreter.ExecuteCommand")
	}

	args := make([]Value, len(cmd.Arguments))
	for i, arg := range cmd.Arguments {
		switch a := arg.(type) {
		case mdwast.StringArg:
			args[i] = Of(string(a))
		case *mdwast.Command:
			value, err := in.ExecuteCommand(a, &ArgumentContext{interp: in, parent: ctx})
			if err != nil {
				return Void, err
			}
			args[i] = value
		}
	}

	if in.logger.IsLevelEnabled(mdwlog.LevelTrace) {
		in.logger.Trace("Dispatching command", mdwlog.Fields{
			"command": cmd.Name,
			"args":    len(args),
		})
	}

	return action(ctx, args...)
}

// resolve finds the action for name: built-ins, then host commands, then
// an alias pointing at a built-in
func (in *Interpreter) resolve(name string) (Action, bool) {
	if b, ok := in.builtins[name]; ok {
		return b.action, true
	}
	if action, ok := in.registry.Lookup(name); ok {
		return action, true
	}
	if b, ok := in.builtins[in.registry.Resolve(name)]; ok {
		return b.action, true
	}
	return nil, false
}

// IsBuiltin reports whether name is a built-in command
func (in *Interpreter) IsBuiltin(name string) bool {
	_, ok := in.builtins[name]
	return ok
}

// HasCommand reports whether name resolves to any command
func (in *Interpreter) HasCommand(name string) bool {
	_, ok := in.resolve(name)
	return ok
}

// Registry returns the host command table
func (in *Interpreter) Registry() *Registry {
	return in.registry
}

// Variable returns the stored value of name, or Void
func (in *Interpreter) Variable(name string) Value {
	return in.variables[name]
}

// SetVariable stores value under name. Storing Void is ignored, matching Var.
func (in *Interpreter) SetVariable(name string, value Value) {
	if value.IsVoid() {
		return
	}
	in.variables[name] = value
}

// Variables returns a copy of the variable store
func (in *Interpreter) Variables() map[string]Value {
	vars := make(map[string]Value, len(in.variables))
	for k, v := range in.variables {
		vars[k] = v
	}
	return vars
}

// Labels returns a copy of the label store
func (in *Interpreter) Labels() map[string]int {
	labels := make(map[string]int, len(in.labels))
	for k, v := range in.labels {
		labels[k] = v
	}
	return labels
}

// Stats returns execution counters
func (in *Interpreter) Stats() Stats {
	return in.stats
}

// Reset clears the variable and label stores and the counters. Host
// commands stay registered.
func (in *Interpreter) Reset() {
	in.variables = make(map[string]Value)
	in.labels = make(map[string]int)
	in.stats = Stats{}
	in.logger.Debug("Interpreter state reset")
}

// Output returns the Print destination
func (in *Interpreter) Output() io.Writer {
	return in.output
}

// SetOutput changes the Print destination
func (in *Interpreter) SetOutput(w io.Writer) {
	in.output = w
}

func (in *Interpreter) languageError(err *mdwerror.Error, command string) *mdwerror.Error {
	err = err.WithDetail("command", command)
	if in.line > 0 {
		err = err.WithDetail("line", in.line)
	}
	return err
}

func (in *Interpreter) syntaxError(message, command string) *mdwerror.Error {
	return in.languageError(mdwerror.NewSyntaxError(message), command)
}

func (in *Interpreter) typeError(message, command string) *mdwerror.Error {
	return in.languageError(mdwerror.NewTypeError(message), command)
}

func (in *Interpreter) referenceError(message, command string) *mdwerror.Error {
	return in.languageError(mdwerror.NewReferenceError(message), command)
}

func quote(s string) string {
	return "\"" + s + "\""
}
