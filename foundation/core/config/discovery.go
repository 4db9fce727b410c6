// File: discovery.go
// Title: Configuration File Discovery Implementation
// Description: Finds the first existing configuration file among a list of
//              candidates and loads it.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation of file discovery

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	mdwerror "github.com/msto63/kyotamd/foundation/core/error"
)

// DiscoveryOptions defines options for automatic configuration file discovery
type DiscoveryOptions struct {
	Candidates []string               // Files to try, in order
	EnvPrefix  string                 // Environment variable prefix for overrides
	Defaults   map[string]interface{} // Default values
	Required   bool                   // Whether finding a config file is required
}

// DefaultDiscoveryOptions returns the search path for an application:
// ./<app>.toml, ./<app>.yaml, ./<app>.yml and $HOME/.config/<app>/config.toml.
// The environment prefix is the upper-cased application name.
func DefaultDiscoveryOptions(app string) DiscoveryOptions {
	candidates := []string{
		app + ".toml",
		app + ".yaml",
		app + ".yml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".config", app, "config.toml"))
	}

	return DiscoveryOptions{
		Candidates: candidates,
		EnvPrefix:  strings.ToUpper(app),
	}
}

// Discover loads the first candidate that exists. When no candidate exists
// and the search is not required, an empty configuration carrying the
// environment prefix is returned.
func Discover(options DiscoveryOptions) (*Config, error) {
	path, found := FindConfigFile(options)
	if found {
		cfg, err := LoadWithOptions(path, LoadOptions{
			Format:    FormatAuto,
			EnvPrefix: options.EnvPrefix,
			Defaults:  options.Defaults,
		})
		if err != nil {
			return nil, mdwerror.Wrap(err, fmt.Sprintf("found config file %s but failed to load", path)).
				WithOperation("config.Discover").
				WithDetail("configPath", path)
		}
		return cfg, nil
	}

	if options.Required {
		return nil, mdwerror.New(fmt.Sprintf("no configuration file found in: %s", strings.Join(options.Candidates, ", "))).
			WithCode(mdwerror.CodeNotFound).
			WithOperation("config.Discover").
			WithDetail("searchPaths", options.Candidates)
	}

	cfg := New(options.EnvPrefix)
	if options.Defaults != nil {
		cfg.data = mergeDefaults(cfg.data, options.Defaults)
	}
	return cfg, nil
}

// FindConfigFile returns the first candidate that exists as a regular file
func FindConfigFile(options DiscoveryOptions) (string, bool) {
	for _, candidate := range options.Candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}
	}
	return "", false
}
