// File: config.go
// Title: Core Configuration Management Implementation
// Description: Implements the Config type: loading and parsing TOML and
//              YAML files, dot-notation access, and environment overrides.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation with TOML/YAML support

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/kyotamd/foundation/core/error"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto auto-detects format from file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Config represents a configuration instance with thread-safe access
type Config struct {
	mu        sync.RWMutex
	data      map[string]interface{}
	filePath  string
	format    Format
	envPrefix string
}

// LoadOptions defines options for loading configuration
type LoadOptions struct {
	Format    Format                 // File format (default: auto-detect)
	EnvPrefix string                 // Environment variable prefix (default: none)
	Defaults  map[string]interface{} // Default values, merged section by section
}

// New creates an empty configuration that only answers from the
// environment and values set at runtime.
func New(envPrefix string) *Config {
	return &Config{
		data:      make(map[string]interface{}),
		format:    FormatTOML,
		envPrefix: envPrefix,
	}
}

// Load loads configuration from a file with default options
func Load(filePath string) (*Config, error) {
	return LoadWithOptions(filePath, LoadOptions{
		Format: FormatAuto,
	})
}

// LoadWithOptions loads configuration from a file with custom options
func LoadWithOptions(filePath string, options LoadOptions) (*Config, error) {
	if strings.TrimSpace(filePath) == "" {
		return nil, mdwerror.New("config file path cannot be empty").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.LoadWithOptions")
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, mdwerror.Wrap(err, fmt.Sprintf("config file not found: %s", filePath)).
				WithCode(mdwerror.CodeNotFound).
				WithOperation("config.LoadWithOptions").
				WithDetail("filePath", filePath)
		}
		return nil, mdwerror.Wrap(err, "failed to read config file").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath)
	}

	format := options.Format
	if format == FormatAuto {
		format = detectFormat(filePath)
	}

	data, err := parseContent(content, format)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config file").
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath)
	}

	if options.Defaults != nil {
		data = mergeDefaults(data, options.Defaults)
	}

	return &Config{
		data:      data,
		filePath:  filePath,
		format:    format,
		envPrefix: options.EnvPrefix,
	}, nil
}

// LoadFromString loads configuration from a string with specified format
func LoadFromString(content string, format Format) (*Config, error) {
	if format == FormatAuto {
		format = FormatTOML
	}

	data, err := parseContent([]byte(content), format)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config from string").
			WithOperation("config.LoadFromString")
	}

	return &Config{
		data:   data,
		format: format,
	}, nil
}

// detectFormat determines the configuration format from file extension
func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// parseContent parses configuration content based on format
func parseContent(content []byte, format Format) (map[string]interface{}, error) {
	var data map[string]interface{}

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(content, &data); err != nil {
			return nil, mdwerror.Wrap(err, "TOML parse error").
				WithCode(mdwerror.CodeInvalidConfig).
				WithOperation("config.parseContent")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, &data); err != nil {
			return nil, mdwerror.Wrap(err, "YAML parse error").
				WithCode(mdwerror.CodeInvalidConfig).
				WithOperation("config.parseContent")
		}
	default:
		return nil, mdwerror.New(fmt.Sprintf("unsupported format: %s", format)).
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.parseContent").
			WithDetail("format", format.String())
	}

	if data == nil {
		data = make(map[string]interface{})
	}
	return data, nil
}

// mergeDefaults merges default values into configuration data. Nested
// sections are merged key by key so a file that sets only log.level keeps
// the default log.format.
func mergeDefaults(data, defaults map[string]interface{}) map[string]interface{} {
	result := make(map[string]interface{}, len(defaults)+len(data))

	for k, v := range defaults {
		result[k] = v
	}

	for k, v := range data {
		dataSection, dataIsMap := v.(map[string]interface{})
		defaultSection, defaultIsMap := result[k].(map[string]interface{})
		if dataIsMap && defaultIsMap {
			result[k] = mergeDefaults(dataSection, defaultSection)
			continue
		}
		result[k] = v
	}

	return result
}

// GetString returns a string configuration value with optional default
func (c *Config) GetString(key string, defaultValue ...string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if value, ok := c.lookup(key); ok {
		switch v := value.(type) {
		case string:
			return v
		default:
			return fmt.Sprintf("%v", v)
		}
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return ""
}

// GetInt returns an integer configuration value with optional default
func (c *Config) GetInt(key string, defaultValue ...int) int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if value, ok := c.lookup(key); ok {
		if i, ok := toInt(value); ok {
			return i
		}
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return 0
}

// GetBool returns a boolean configuration value with optional default
func (c *Config) GetBool(key string, defaultValue ...bool) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if value, ok := c.lookup(key); ok {
		switch v := value.(type) {
		case bool:
			return v
		case string:
			if b, err := strconv.ParseBool(v); err == nil {
				return b
			}
		}
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return false
}

// GetDuration returns a duration configuration value with optional default.
// Strings are parsed with time.ParseDuration; bare numbers are milliseconds.
func (c *Config) GetDuration(key string, defaultValue ...time.Duration) time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if value, ok := c.lookup(key); ok {
		if d, ok := toDuration(value); ok {
			return d
		}
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return 0
}

// GetStringMap returns a table as a map of strings. Values are formatted
// with %v; environment overrides do not apply to tables.
func (c *Config) GetStringMap(key string) map[string]string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	table, ok := c.getValue(key).(map[string]interface{})
	if !ok {
		return map[string]string{}
	}

	result := make(map[string]string, len(table))
	for k, v := range table {
		result[k] = fmt.Sprintf("%v", v)
	}
	return result
}

// lookup returns the environment override for key if set, else the file
// value. Callers must hold c.mu.
func (c *Config) lookup(key string) (interface{}, bool) {
	if c.envPrefix != "" {
		if env, ok := os.LookupEnv(c.formatEnvKey(key)); ok && env != "" {
			return env, true
		}
	}

	value := c.getValue(key)
	return value, value != nil
}

// getValue retrieves a configuration value by key (supports dot notation)
func (c *Config) getValue(key string) interface{} {
	keys := strings.Split(key, ".")
	current := c.data

	for i, k := range keys {
		if i == len(keys)-1 {
			return current[k]
		}

		next, ok := current[k].(map[string]interface{})
		if !ok {
			return nil
		}
		current = next
	}

	return nil
}

// formatEnvKey converts a config key to environment variable format:
// log.level with prefix KYOTAMD becomes KYOTAMD_LOG_LEVEL.
func (c *Config) formatEnvKey(key string) string {
	envKey := strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	if c.envPrefix != "" {
		envKey = strings.ToUpper(c.envPrefix) + "_" + envKey
	}
	return envKey
}

// EnvKey returns the environment variable that overrides key
func (c *Config) EnvKey(key string) string {
	return c.formatEnvKey(key)
}

// Has checks if a configuration key exists in the file or the environment
func (c *Config) Has(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, ok := c.lookup(key)
	return ok
}

// Set sets a configuration value (runtime only, not persisted)
func (c *Config) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := strings.Split(key, ".")
	current := c.data

	for i, k := range keys {
		if i == len(keys)-1 {
			current[k] = value
			return
		}

		next, ok := current[k].(map[string]interface{})
		if !ok {
			next = make(map[string]interface{})
			current[k] = next
		}
		current = next
	}
}

// GetAll returns a deep copy of the file data (without environment overrides)
func (c *Config) GetAll() map[string]interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return deepCopyMap(c.data)
}

// Keys returns all leaf keys in dot notation, sorted
func (c *Config) Keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var keys []string
	collectKeys("", c.data, &keys)
	sort.Strings(keys)
	return keys
}

// FilePath returns the path the configuration was loaded from, if any
func (c *Config) FilePath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}

// Format returns the configuration file format
func (c *Config) Format() Format {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.format
}

// WithEnvPrefix sets the environment override prefix
func (c *Config) WithEnvPrefix(prefix string) *Config {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.envPrefix = prefix
	return c
}

// String returns a short description for logging
func (c *Config) String() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	source := c.filePath
	if source == "" {
		source = "<none>"
	}
	return fmt.Sprintf("Config{file: %s, format: %s, keys: %d}", source, c.format, len(c.data))
}

func collectKeys(prefix string, data map[string]interface{}, keys *[]string) {
	for k, v := range data {
		full := k
		if prefix != "" {
			full = prefix + "." + k
		}
		if section, ok := v.(map[string]interface{}); ok {
			collectKeys(full, section, keys)
			continue
		}
		*keys = append(*keys, full)
	}
}

func deepCopyMap(src map[string]interface{}) map[string]interface{} {
	dst := make(map[string]interface{}, len(src))
	for k, v := range src {
		if section, ok := v.(map[string]interface{}); ok {
			dst[k] = deepCopyMap(section)
			continue
		}
		dst[k] = v
	}
	return dst
}

func toInt(value interface{}) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		if v == float64(int64(v)) {
			return int(v), true
		}
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return i, true
		}
	}
	return 0, false
}

func toDuration(value interface{}) (time.Duration, bool) {
	switch v := value.(type) {
	case time.Duration:
		return v, true
	case string:
		if d, err := time.ParseDuration(strings.TrimSpace(v)); err == nil {
			return d, true
		}
		if ms, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return time.Duration(ms) * time.Millisecond, true
		}
	default:
		if ms, ok := toInt(v); ok {
			return time.Duration(ms) * time.Millisecond, true
		}
	}
	return 0, false
}
