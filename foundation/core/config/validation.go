// File: validation.go
// Title: Configuration Validation Implementation
// Description: Validates configuration values against simple rules: type,
//              integer bounds and enumerations. Environment overrides are
//              validated the same way as file values.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation of validation

package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	mdwerror "github.com/msto63/kyotamd/foundation/core/error"
)

// ValidationRule defines validation criteria for configuration values
type ValidationRule struct {
	Required bool     // Whether the key must be present
	Type     string   // "string", "int", "bool" or "duration"
	Min      *int     // Lower bound for "int"
	Max      *int     // Upper bound for "int"
	OneOf    []string // Allowed values for "string", compared case-insensitively
}

// ValidationRules maps configuration keys to their validation rules
type ValidationRules map[string]ValidationRule

// ValidationResult contains the results of configuration validation
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// Err returns the collected problems as a single INVALID_CONFIG error, or
// nil when the configuration is valid.
func (r *ValidationResult) Err() error {
	if r.Valid {
		return nil
	}
	return mdwerror.New("invalid configuration: " + strings.Join(r.Errors, "; ")).
		WithCode(mdwerror.CodeInvalidConfig).
		WithOperation("config.Validate")
}

// Bound is a helper for filling ValidationRule.Min and Max
func Bound(n int) *int {
	return &n
}

// Validate validates the configuration against the provided rules. Keys
// are checked in sorted order so that error lists are stable.
func (c *Config) Validate(rules ValidationRules) *ValidationResult {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := &ValidationResult{Valid: true}

	keys := make([]string, 0, len(rules))
	for key := range rules {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if err := c.validateField(key, rules[key]); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, err.Error())
		}
	}

	return result
}

// validateField validates a single configuration field
func (c *Config) validateField(key string, rule ValidationRule) error {
	value, ok := c.lookup(key)
	if !ok {
		if rule.Required {
			return fmt.Errorf("required field '%s' is missing", key)
		}
		return nil
	}

	switch rule.Type {
	case "", "string":
		if len(rule.OneOf) == 0 {
			return nil
		}
		str := strings.ToLower(fmt.Sprintf("%v", value))
		for _, allowed := range rule.OneOf {
			if str == strings.ToLower(allowed) {
				return nil
			}
		}
		return fmt.Errorf("field '%s' must be one of [%s], got '%v'", key, strings.Join(rule.OneOf, ", "), value)

	case "int":
		n, ok := toInt(value)
		if !ok {
			return fmt.Errorf("field '%s' must be an integer, got '%v'", key, value)
		}
		if rule.Min != nil && n < *rule.Min {
			return fmt.Errorf("field '%s' must be >= %d, got %d", key, *rule.Min, n)
		}
		if rule.Max != nil && n > *rule.Max {
			return fmt.Errorf("field '%s' must be <= %d, got %d", key, *rule.Max, n)
		}

	case "bool":
		switch v := value.(type) {
		case bool:
		case string:
			if _, err := strconv.ParseBool(v); err != nil {
				return fmt.Errorf("field '%s' must be a boolean, got '%s'", key, v)
			}
		default:
			return fmt.Errorf("field '%s' must be a boolean, got '%v'", key, v)
		}

	case "duration":
		if d, ok := toDuration(value); !ok || d < 0 {
			return fmt.Errorf("field '%s' must be a non-negative duration, got '%v'", key, value)
		}

	default:
		return fmt.Errorf("field '%s' has unknown rule type '%s'", key, rule.Type)
	}

	return nil
}
