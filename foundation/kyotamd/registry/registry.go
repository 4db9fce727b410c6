// File: registry.go
// Title: kyotamd Command Registry
// Description: Thread-safe table of host-registered commands and aliases
//              with command name validation.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial registry implementation

package registry

import (
	"sort"
	"sync"

	mdwerror "github.com/msto63/kyotamd/foundation/core/error"
	mdwlog "github.com/msto63/kyotamd/foundation/core/log"
	mdwparser "github.com/msto63/kyotamd/foundation/kyotamd/parser"
)

// Definition describes one host command
type Definition[A any] struct {
	Name        string // Command name, e.g. "Read-Line"
	Description string // One-line description for help output
	Usage       string // Argument synopsis, e.g. "[prompt]"
	Action      A
}

// Options configures registry behavior
type Options struct {
	Logger *mdwlog.Logger
}

// Registry maps command names to host definitions
type Registry[A any] struct {
	commands map[string]*Definition[A]
	aliases  map[string]string
	logger   *mdwlog.Logger
	mutex    sync.RWMutex
}

// New creates an empty registry
func New[A any](opts Options) *Registry[A] {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}

	return &Registry[A]{
		commands: make(map[string]*Definition[A]),
		aliases:  make(map[string]string),
		logger:   opts.Logger.WithField("component", "kyotamd-registry"),
	}
}

// ValidateName checks that name is exactly one well-formed command name
func ValidateName(name string) error {
	parsed, err := mdwparser.ParseCommandName(name)
	if err != nil {
		return mdwerror.Wrap(err, "invalid command name "+quoteName(name)).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("registry.ValidateName").
			WithDetail("command", name)
	}
	if parsed != name {
		return mdwerror.New("invalid command name " + quoteName(name) + ": surrounding spaces or arguments").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("registry.ValidateName").
			WithDetail("command", name)
	}
	return nil
}

// Register adds a command. Registering a name twice is an error; use
// Replace to overwrite.
func (r *Registry[A]) Register(def Definition[A]) error {
	return r.add(def, false)
}

// RegisterFunc adds a command with no description
func (r *Registry[A]) RegisterFunc(name string, action A) error {
	return r.add(Definition[A]{Name: name, Action: action}, false)
}

// Replace adds or overwrites a command
func (r *Registry[A]) Replace(def Definition[A]) error {
	return r.add(def, true)
}

func (r *Registry[A]) add(def Definition[A], overwrite bool) error {
	if err := ValidateName(def.Name); err != nil {
		return err
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.commands[def.Name]; exists && !overwrite {
		return mdwerror.New("command " + def.Name + " already registered").
			WithCode(mdwerror.CodeDuplicateEntry).
			WithOperation("registry.Register").
			WithDetail("command", def.Name)
	}
	if _, exists := r.aliases[def.Name]; exists {
		return mdwerror.New("command " + def.Name + " is already an alias").
			WithCode(mdwerror.CodeDuplicateEntry).
			WithOperation("registry.Register").
			WithDetail("command", def.Name)
	}

	stored := def
	r.commands[def.Name] = &stored

	r.logger.Debug("Command registered", mdwlog.Fields{
		"command": def.Name,
		"replace": overwrite,
	})

	return nil
}

// Unregister removes a command and reports whether it existed
func (r *Registry[A]) Unregister(name string) bool {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.commands[name]; !exists {
		return false
	}
	delete(r.commands, name)
	return true
}

// Lookup returns the action registered under name, following an alias
func (r *Registry[A]) Lookup(name string) (A, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	if target, ok := r.aliases[name]; ok {
		name = target
	}

	def, ok := r.commands[name]
	if !ok {
		var zero A
		return zero, false
	}
	return def.Action, true
}

// Get returns a copy of the definition registered under name
func (r *Registry[A]) Get(name string) (Definition[A], error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	def, ok := r.commands[name]
	if !ok {
		return Definition[A]{}, mdwerror.New("command " + name + " not found in registry").
			WithCode(mdwerror.CodeNotFound).
			WithOperation("registry.Get").
			WithDetail("command", name)
	}
	return *def, nil
}

// Has reports whether a command is registered under name (aliases excluded)
func (r *Registry[A]) Has(name string) bool {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	_, ok := r.commands[name]
	return ok
}

// Names returns the registered command names, sorted
func (r *Registry[A]) Names() []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Definitions returns copies of all definitions sorted by name
func (r *Registry[A]) Definitions() []Definition[A] {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	defs := make([]Definition[A], 0, len(r.commands))
	for _, def := range r.commands {
		defs = append(defs, *def)
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].Name < defs[j].Name })
	return defs
}

// Len returns the number of registered commands
func (r *Registry[A]) Len() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return len(r.commands)
}
