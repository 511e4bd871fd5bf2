// File: global.go
// Title: Default Logger and Package-Level Functions
// Description: Provides the process-wide default logger and the package
//              level convenience functions used by call sites that do not
//              carry a logger of their own.
// Author: Tessera Core Team
// Version: v0.1.0
// Created: 2026-08-30
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-30 v0.1.0: Initial implementation with default logger

package log

import (
	tserror "github.com/tessera-storage/foundation/core/error"
)

// Default logger instance
var defaultLogger = New()

// GetDefault returns the default logger instance
func GetDefault() *Logger {
	return defaultLogger
}

// SetDefault sets the default logger instance
func SetDefault(logger *Logger) {
	defaultLogger = logger
}

// Open acquires the default logger's backend channel
func Open() error {
	return defaultLogger.Open()
}

// Close releases the default logger's backend channel
func Close() error {
	return defaultLogger.Close()
}

// Level returns the default logger's minimum priority
func Level() Priority {
	return defaultLogger.Level()
}

// SetLevel sets the default logger's minimum priority
func SetLevel(level Priority) {
	defaultLogger.SetLevel(level)
}

// Logf emits through the default logger
func Logf(p Priority, format string, args ...any) {
	defaultLogger.Logf(p, format, args...)
}

// Debugf logs a debug message through the default logger
func Debugf(format string, args ...any) {
	defaultLogger.Debugf(format, args...)
}

// Infof logs an informational message through the default logger
func Infof(format string, args ...any) {
	defaultLogger.Infof(format, args...)
}

// Noticef logs a notable condition through the default logger
func Noticef(format string, args ...any) {
	defaultLogger.Noticef(format, args...)
}

// Warningf logs a warning through the default logger
func Warningf(format string, args ...any) {
	defaultLogger.Warningf(format, args...)
}

// Errorf logs an error through the default logger
func Errorf(format string, args ...any) {
	defaultLogger.Errorf(format, args...)
}

// Fatalf logs an unrecoverable condition through the default logger
func Fatalf(format string, args ...any) {
	defaultLogger.Fatalf(format, args...)
}

// LogfWithCode emits through the default logger and returns code unchanged
func LogfWithCode(p Priority, code tserror.Code, format string, args ...any) tserror.Code {
	return defaultLogger.LogfWithCode(p, code, format, args...)
}

// ErrorfWithCode logs at Error through the default logger and returns code
// unchanged
func ErrorfWithCode(code tserror.Code, format string, args ...any) tserror.Code {
	return defaultLogger.ErrorfWithCode(code, format, args...)
}

// LogUnrecoverable logs through the default logger and escalates the code
func LogUnrecoverable(code tserror.Code, format string, args ...any) tserror.Code {
	return defaultLogger.LogUnrecoverable(code, format, args...)
}

// LogBacktrace emits the caller's stack through the default logger
func LogBacktrace(p Priority) {
	defaultLogger.LogBacktrace(p)
}

// PauseBriefly forwards to the default logger's backend pause hook
func PauseBriefly() {
	defaultLogger.PauseBriefly()
}

// Ratelimit applies rs to fn on the default logger
func Ratelimit(rs *RateState, fn func(*Logger)) {
	defaultLogger.Ratelimit(rs, fn)
}
