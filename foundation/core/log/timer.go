// File: timer.go
// Title: Performance Timer
// Description: Measures the duration of an operation with optional named
//              checkpoints and logs the outcome when stopped.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package log

import (
	"time"
)

// Timer represents a performance timer for measuring operation duration
type Timer struct {
	logger    *Logger
	operation string
	startTime time.Time
	fields    Fields
	level     Level
	stopped   bool
}

// NewTimer creates a new timer for the given operation
func NewTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		startTime: time.Now(),
		fields:    make(Fields),
		level:     LevelDebug,
	}
}

// WithLevel sets the log level for the timer completion message
func (t *Timer) WithLevel(level Level) *Timer {
	t.level = level
	return t
}

// WithField adds a field to be logged when the timer completes
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

// Elapsed returns the elapsed time since the timer was started
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.startTime)
}

// Stop stops the timer and logs the elapsed time
func (t *Timer) Stop() time.Duration {
	if t.stopped {
		return 0
	}

	elapsed := t.Elapsed()
	t.stopped = true

	if t.logger != nil {
		t.logger.log(t.level, t.operation+" completed", nil, t.timingFields(elapsed))
	}

	return elapsed
}

// StopWithError stops the timer and logs an error with the elapsed time
func (t *Timer) StopWithError(err error) time.Duration {
	if t.stopped {
		return 0
	}

	elapsed := t.Elapsed()
	t.stopped = true

	if t.logger != nil {
		fields := t.timingFields(elapsed)
		fields["success"] = false
		level := t.level
		if level < LevelWarn {
			level = LevelWarn
		}
		t.logger.log(level, t.operation+" failed", err, fields)
	}

	return elapsed
}

// Checkpoint logs an intermediate timing checkpoint at debug level
func (t *Timer) Checkpoint(name string, fields ...Fields) {
	if t.stopped || t.logger == nil {
		return
	}

	elapsed := t.Elapsed()
	combined := Fields{
		"operation":  t.operation,
		"checkpoint": name,
		"elapsed":    elapsed.String(),
	}
	for k, v := range t.fields {
		combined[k] = v
	}
	for _, f := range fields {
		for k, v := range f {
			combined[k] = v
		}
	}

	t.logger.Debug(t.operation+" checkpoint: "+name, combined)
}

// IsRunning returns true if the timer is still running
func (t *Timer) IsRunning() bool {
	return !t.stopped
}

// StartTime returns the time when the timer was started
func (t *Timer) StartTime() time.Time {
	return t.startTime
}

func (t *Timer) timingFields(elapsed time.Duration) Fields {
	fields := make(Fields, len(t.fields)+3)
	for k, v := range t.fields {
		fields[k] = v
	}
	fields["operation"] = t.operation
	fields["duration_ms"] = float64(elapsed.Nanoseconds()) / 1e6
	fields["duration"] = elapsed.String()
	return fields
}
