// Package log is the priority-leveled, printf-style logging facade used by
// every Tessera component.
//
// Package: log
// Title: Tessera Logging Facade
// Description: This package lets the same call sites log through the host
//              syslog daemon in service mode and through the kernel ring
//              buffer in appliance mode. A Backend capability interface
//              (open/close/write/limits/pause) separates the facade from
//              its sink; the facade itself only filters by priority,
//              renders printf-style messages, annotates status codes, and
//              applies per-call-site rate limiting where the sink needs it.
// Author: Tessera Core Team
// Version: v0.1.0
// Created: 2026-08-30
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-30 v0.1.0: Initial implementation
//
// Features:
// - Syslog-ordered priorities from EMERGENCY to DEBUG with name parsing
// - One printf-style emission function per priority plus a base primitive
// - Status-code annotated emitters whose pass-through returns allow
//   logging inside a return statement
// - Unrecoverable escalation for failures that must not be retried
// - Embedded message composition for wrapping caller-supplied formats
// - Best-effort stack backtraces
// - Per-call-site token-bucket rate limiting in appliance mode
// - Pointer redaction for addresses that must not reach the kernel log
//
// Every emission function is best-effort and leaves the caller's state
// untouched: a message below the configured level, denied by a rate
// limiter, or refused by the sink is dropped silently. Logging never
// changes program control flow except through the deliberate pass-through
// return values of the code-annotated emitters.
//
// Usage:
//
//	import (
//	    tserror "github.com/tessera-storage/foundation/core/error"
//	    "github.com/tessera-storage/foundation/core/log"
//	)
//
//	logger := log.NewWithBackend(log.NewSyslogBackend("tessera")).
//	    WithName("volume-index")
//	if err := logger.Open(); err != nil {
//	    // fall back to stderr
//	    logger = log.New()
//	}
//
//	logger.SetLevel(log.Debug)
//	logger.Infof("index opened with %d chapters", chapters)
//
//	if code := region.Flush(); code.IsError() {
//	    return logger.LogUnrecoverable(code, "cannot flush region %d", n)
//	}
package log
