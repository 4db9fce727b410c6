// File: alias.go
// Title: kyotamd Command Aliases
// Description: Alternative names for commands. An alias may point at a
//              host command or at a built-in; resolution is a single step.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package registry

import (
	mdwerror "github.com/msto63/kyotamd/foundation/core/error"
	mdwlog "github.com/msto63/kyotamd/foundation/core/log"
)

// RegisterAlias makes alias resolve to target. Both must be valid command
// names; target need not be registered yet, and aliases do not chain.
func (r *Registry[A]) RegisterAlias(alias, target string) error {
	if err := ValidateName(alias); err != nil {
		return err
	}
	if err := ValidateName(target); err != nil {
		return err
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if alias == target {
		return mdwerror.New("alias " + alias + " cannot point at itself").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("registry.RegisterAlias").
			WithDetail("command", alias)
	}
	if _, exists := r.commands[alias]; exists {
		return mdwerror.New("alias " + alias + " collides with a registered command").
			WithCode(mdwerror.CodeDuplicateEntry).
			WithOperation("registry.RegisterAlias").
			WithDetail("command", alias)
	}
	if _, isAlias := r.aliases[target]; isAlias {
		return mdwerror.New("alias " + alias + " cannot point at another alias").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("registry.RegisterAlias").
			WithDetail("command", alias)
	}

	r.aliases[alias] = target

	r.logger.Debug("Alias registered", mdwlog.Fields{
		"alias":  alias,
		"target": target,
	})

	return nil
}

// Resolve returns the alias target for name, or name itself
func (r *Registry[A]) Resolve(name string) string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	if target, ok := r.aliases[name]; ok {
		return target
	}
	return name
}

// Aliases returns a copy of the alias table
func (r *Registry[A]) Aliases() map[string]string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	aliases := make(map[string]string, len(r.aliases))
	for k, v := range r.aliases {
		aliases[k] = v
	}
	return aliases
}

func quoteName(name string) string {
	return "\"" + name + "\""
}
