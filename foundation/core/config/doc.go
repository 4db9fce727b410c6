// File: doc.go
// Title: Configuration Management Package Documentation
// Description: Package config loads kyotamd settings from TOML or YAML
//              files with environment variable overrides.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation with TOML/YAML support

/*
Package config provides map-backed configuration for the kyotamd toolchain.

Configuration files are TOML (default) or YAML, chosen by file extension.
Keys use dot notation ("log.level") and every lookup consults the
environment first: with the prefix "KYOTAMD" the key "log.level" is
overridden by KYOTAMD_LOG_LEVEL.

# Loading

	cfg, err := config.Load("kyotamd.toml")
	if err != nil {
		return err
	}

	level := cfg.GetString("log.level", "warn")
	limit := cfg.GetInt("run.max_input_length", 0)
	debounce := cfg.GetDuration("run.watch_debounce", 200*time.Millisecond)

# Discovery

Discover walks a list of candidate files and loads the first one that
exists. When none exists and the search is optional an empty
configuration is returned, so environment overrides still apply:

	cfg, err := config.Discover(config.DefaultDiscoveryOptions("kyotamd"))

# Validation

	result := cfg.Validate(config.ValidationRules{
		"log.level":            {Type: "string", OneOf: []string{"trace", "debug", "info", "warn", "error"}},
		"run.max_input_length": {Type: "int", Min: 0},
	})
	if !result.Valid {
		return result.Err()
	}

All methods on Config are safe for concurrent use.
*/
package config
