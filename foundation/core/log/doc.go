// Package log provides structured logging for the kyotamd toolchain.
//
// Package: log
// Title: kyotamd Structured Logging
// Description: Leveled, structured logging with persistent context fields,
//              JSON/text/console formatters and a timer for measuring
//              script evaluation. Loggers are immutable: every With* call
//              returns a configured copy.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{
//		Level:  log.LevelDebug,
//		Format: log.FormatConsole,
//		Output: os.Stderr,
//	}).WithField("component", "cli")
//
//	logger.Info("Script evaluated", log.Fields{"file": path})
//
//	timer := logger.StartTimer("eval")
//	defer timer.Stop()
package log
