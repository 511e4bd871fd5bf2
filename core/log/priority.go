// File: priority.go
// Title: Log Priority Definitions
// Description: Defines the syslog-ordered priority levels used to filter and
//              route log output. Lower numeric values are more urgent, so a
//              message is emitted when its priority is numerically at or
//              below the configured level.
// Author: Tessera Core Team
// Version: v0.1.0
// Created: 2026-08-30
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-30 v0.1.0: Initial implementation with syslog priority levels

package log

import (
	"strings"
)

// Priority represents the severity of a log message
type Priority int

const (
	// Emergency means the index is unusable
	Emergency Priority = iota

	// Alert means action must be taken immediately
	Alert

	// Critical marks critical conditions
	Critical

	// Error marks error conditions
	Error

	// Warning marks warning conditions
	Warning

	// Notice marks normal but significant conditions
	Notice

	// Info marks informational messages
	Info

	// Debug marks debug-level messages
	Debug
)

// DefaultLevel is the minimum priority used by new loggers
const DefaultLevel = Info

// String returns the canonical upper-case name of the priority
func (p Priority) String() string {
	switch p {
	case Emergency:
		return "EMERGENCY"
	case Alert:
		return "ALERT"
	case Critical:
		return "CRITICAL"
	case Error:
		return "ERROR"
	case Warning:
		return "WARNING"
	case Notice:
		return "NOTICE"
	case Info:
		return "INFO"
	case Debug:
		return "DEBUG"
	default:
		return "unknown"
	}
}

// ParsePriority returns the priority named by s, matching case-insensitively
// and accepting the common short aliases. Unrecognized names fall back to
// Info silently; callers that need strict validation should compare the
// input against AllPriorities themselves.
func ParsePriority(s string) Priority {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "EMERGENCY", "EMERG", "FATAL":
		return Emergency
	case "ALERT":
		return Alert
	case "CRITICAL", "CRIT":
		return Critical
	case "ERROR", "ERR":
		return Error
	case "WARNING", "WARN":
		return Warning
	case "NOTICE":
		return Notice
	case "INFO":
		return Info
	case "DEBUG":
		return Debug
	default:
		return Info
	}
}

// AllPriorities returns every priority in order of decreasing urgency
func AllPriorities() []Priority {
	return []Priority{
		Emergency,
		Alert,
		Critical,
		Error,
		Warning,
		Notice,
		Info,
		Debug,
	}
}
