// ============================================================================
// kyotamd - Command Language Interpreter
// ============================================================================
//
// Package:     settings
// Description: Application settings loaded from kyotamd.toml or kyotamd.yaml
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package settings

import (
	"io"
	"os"
	"time"

	mdwconfig "github.com/msto63/kyotamd/foundation/core/config"
	mdwerror "github.com/msto63/kyotamd/foundation/core/error"
	mdwlog "github.com/msto63/kyotamd/foundation/core/log"
)

// AppName is used for config discovery and the environment prefix
const AppName = "kyotamd"

// Settings holds the complete application configuration
type Settings struct {
	Log     LogSettings
	Run     RunSettings
	REPL    REPLSettings
	Aliases map[string]string // Alias name to command name

	// Source is the loaded config file, empty when none was found
	Source string
}

// LogSettings controls the diagnostic logger
type LogSettings struct {
	Level  string
	Format string
}

// RunSettings controls evaluation of source files
type RunSettings struct {
	MaxInputLength int           // In runes, 0 for unlimited
	WatchDebounce  time.Duration // Quiet period before a watched file is rerun
}

// REPLSettings controls the interactive shell
type REPLSettings struct {
	Prompt       string
	HistoryLimit int
	NoColor      bool
}

// Defaults returns the default configuration values
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"log": map[string]interface{}{
			"level":  "warn",
			"format": "text",
		},
		"run": map[string]interface{}{
			"max_input_length": 0,
			"watch_debounce":   "200ms",
		},
		"repl": map[string]interface{}{
			"prompt":        "kyotamd> ",
			"history_limit": 100,
			"no_color":      false,
		},
	}
}

// Rules returns the validation rules for all known keys
func Rules() mdwconfig.ValidationRules {
	return mdwconfig.ValidationRules{
		"log.level": {
			Type:  "string",
			OneOf: []string{"trace", "debug", "info", "warn", "warning", "error", "audit"},
		},
		"log.format": {
			Type:  "string",
			OneOf: []string{"text", "json", "console"},
		},
		"run.max_input_length": {Type: "int", Min: mdwconfig.Bound(0)},
		"run.watch_debounce":   {Type: "duration"},
		"repl.prompt":          {Type: "string"},
		"repl.history_limit":   {Type: "int", Min: mdwconfig.Bound(0), Max: mdwconfig.Bound(10000)},
		"repl.no_color":        {Type: "bool"},
	}
}

// Load reads settings from path, or discovers a config file when path is
// empty. Missing discovered files fall back to the defaults; an explicit
// path must exist.
func Load(path string) (*Settings, error) {
	var (
		cfg *mdwconfig.Config
		err error
	)

	if path != "" {
		cfg, err = mdwconfig.LoadWithOptions(path, mdwconfig.LoadOptions{
			Format:    mdwconfig.FormatAuto,
			EnvPrefix: mdwconfig.DefaultDiscoveryOptions(AppName).EnvPrefix,
			Defaults:  Defaults(),
		})
	} else {
		opts := mdwconfig.DefaultDiscoveryOptions(AppName)
		opts.Defaults = Defaults()
		cfg, err = mdwconfig.Discover(opts)
	}
	if err != nil {
		return nil, err
	}

	return FromConfig(cfg)
}

// FromConfig validates cfg and converts it to Settings
func FromConfig(cfg *mdwconfig.Config) (*Settings, error) {
	if err := cfg.Validate(Rules()).Err(); err != nil {
		if mdwErr, ok := err.(*mdwerror.Error); ok && cfg.FilePath() != "" {
			return nil, mdwErr.WithDetail("configPath", cfg.FilePath())
		}
		return nil, err
	}

	return &Settings{
		Log: LogSettings{
			Level:  cfg.GetString("log.level", "warn"),
			Format: cfg.GetString("log.format", "text"),
		},
		Run: RunSettings{
			MaxInputLength: cfg.GetInt("run.max_input_length", 0),
			WatchDebounce:  cfg.GetDuration("run.watch_debounce", 200*time.Millisecond),
		},
		REPL: REPLSettings{
			Prompt:       cfg.GetString("repl.prompt", "kyotamd> "),
			HistoryLimit: cfg.GetInt("repl.history_limit", 100),
			NoColor:      cfg.GetBool("repl.no_color", false),
		},
		Aliases: cfg.GetStringMap("aliases"),
		Source:  cfg.FilePath(),
	}, nil
}

// Logger builds the diagnostic logger. verbose forces debug level when the
// configured level is less detailed.
func (s *Settings) Logger(output io.Writer, verbose bool) (*mdwlog.Logger, error) {
	level, err := mdwlog.ParseLevel(s.Log.Level)
	if err != nil {
		return nil, mdwerror.Wrap(err, "invalid log level").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("settings.Logger")
	}
	format, err := mdwlog.ParseFormat(s.Log.Format)
	if err != nil {
		return nil, mdwerror.Wrap(err, "invalid log format").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("settings.Logger")
	}

	if verbose && level > mdwlog.LevelDebug {
		level = mdwlog.LevelDebug
	}
	if output == nil {
		output = os.Stderr
	}

	return mdwlog.NewWithConfig(mdwlog.Config{
		Level:  level,
		Format: format,
		Output: output,
		Name:   AppName,
	}), nil
}
