// File: logger.go
// Title: Core Logger Implementation
// Description: Implements the Logger type behind every Tessera log call
//              site. The logger holds the process-wide minimum priority,
//              forwards rendered messages to the installed backend, and
//              carries the status-code annotated emission helpers whose
//              pass-through return values thread codes back to callers.
// Author: Tessera Core Team
// Version: v0.1.0
// Created: 2026-08-30
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-30 v0.1.0: Initial implementation with leveled logging

package log

import (
	"fmt"
	"runtime"
	"strings"
	"sync/atomic"

	tserror "github.com/tessera-storage/foundation/core/error"
)

// maxBacktraceFrames bounds the stack walk in LogBacktrace.
const maxBacktraceFrames = 32

// Logger is a priority-leveled, printf-style logging facade. All emission
// methods are safe for concurrent use and never return an error, panic, or
// otherwise alter control flow: a message either reaches the backend or is
// silently discarded. The minimum priority is an atomic value, so a level
// change may be observed slightly late by concurrent loggers.
//
// Open, Close, and SetBackend must not race against concurrent emission
// calls. Production deployments configure the logger once at startup and
// never close it; Close exists for test hygiene.
type Logger struct {
	level   atomic.Int32
	name    string
	backend Backend
}

// New creates a logger at DefaultLevel writing to stderr through a
// WriterBackend.
func New() *Logger {
	return NewWithBackend(NewWriterBackend(nil))
}

// NewWithBackend creates a logger at DefaultLevel over the given backend.
func NewWithBackend(backend Backend) *Logger {
	l := &Logger{backend: backend}
	l.level.Store(int32(DefaultLevel))
	return l
}

// WithName returns the logger with a name prefixed to every message.
func (l *Logger) WithName(name string) *Logger {
	l.name = name
	return l
}

// Open acquires the backend logging channel.
func (l *Logger) Open() error {
	if l.backend == nil {
		return nil
	}
	return l.backend.Open()
}

// Close releases the backend logging channel. Unused in production flows,
// kept so tests can release resources deterministically.
func (l *Logger) Close() error {
	if l.backend == nil {
		return nil
	}
	return l.backend.Close()
}

// SetBackend installs a different backend.
func (l *Logger) SetBackend(backend Backend) {
	l.backend = backend
}

// Backend returns the installed backend.
func (l *Logger) Backend() Backend {
	return l.backend
}

// Level returns the current minimum priority.
func (l *Logger) Level() Priority {
	return Priority(l.level.Load())
}

// SetLevel sets the minimum priority. Messages less urgent than level are
// discarded before rendering.
func (l *Logger) SetLevel(level Priority) {
	l.level.Store(int32(level))
}

// enabled reports whether priority p passes the current level. Lower
// numeric priorities are more urgent.
func (l *Logger) enabled(p Priority) bool {
	return p <= Priority(l.level.Load())
}

// write forwards one rendered message to the backend.
func (l *Logger) write(p Priority, msg string) {
	if l.name != "" {
		msg = l.name + ": " + msg
	}
	if l.backend != nil {
		l.backend.Write(p, msg)
	}
}

// Logf is the base emission primitive. When p passes the current level the
// message is rendered once and forwarded in exactly one backend write;
// otherwise nothing happens.
func (l *Logger) Logf(p Priority, format string, args ...any) {
	if !l.enabled(p) {
		return
	}
	l.write(p, fmt.Sprintf(format, args...))
}

// Debugf logs a debug message
func (l *Logger) Debugf(format string, args ...any) {
	l.Logf(Debug, format, args...)
}

// Infof logs an informational message
func (l *Logger) Infof(format string, args ...any) {
	l.Logf(Info, format, args...)
}

// Noticef logs a normal but notable condition
func (l *Logger) Noticef(format string, args ...any) {
	l.Logf(Notice, format, args...)
}

// Warningf logs a warning
func (l *Logger) Warningf(format string, args ...any) {
	l.Logf(Warning, format, args...)
}

// Errorf logs an error
func (l *Logger) Errorf(format string, args ...any) {
	l.Logf(Error, format, args...)
}

// Fatalf logs an unrecoverable condition at Emergency priority. It does
// not terminate the process; whether to stop is the caller's decision.
func (l *Logger) Fatalf(format string, args ...any) {
	l.Logf(Emergency, format, args...)
}

// LogfWithCode renders the message, appends the human-readable text for
// code, emits at p, and returns code unchanged. The pass-through return
// lets call sites log and return in one statement:
//
//	return logger.LogfWithCode(log.Error, code, "cannot flush chapter %d", n)
func (l *Logger) LogfWithCode(p Priority, code tserror.Code, format string, args ...any) tserror.Code {
	if l.enabled(p) {
		l.LogEmbedded(p, "", format, args, ": %s (%s)", code.Text(), code)
	}
	return code
}

// DebugfWithCode logs at Debug with the code's text appended and returns
// the code unchanged.
func (l *Logger) DebugfWithCode(code tserror.Code, format string, args ...any) tserror.Code {
	return l.LogfWithCode(Debug, code, format, args...)
}

// InfofWithCode logs at Info with the code's text appended and returns the
// code unchanged.
func (l *Logger) InfofWithCode(code tserror.Code, format string, args ...any) tserror.Code {
	return l.LogfWithCode(Info, code, format, args...)
}

// NoticefWithCode logs at Notice with the code's text appended and returns
// the code unchanged.
func (l *Logger) NoticefWithCode(code tserror.Code, format string, args ...any) tserror.Code {
	return l.LogfWithCode(Notice, code, format, args...)
}

// WarningfWithCode logs at Warning with the code's text appended and
// returns the code unchanged.
func (l *Logger) WarningfWithCode(code tserror.Code, format string, args ...any) tserror.Code {
	return l.LogfWithCode(Warning, code, format, args...)
}

// ErrorfWithCode logs at Error with the code's text appended and returns
// the code unchanged.
func (l *Logger) ErrorfWithCode(code tserror.Code, format string, args ...any) tserror.Code {
	return l.LogfWithCode(Error, code, format, args...)
}

// FatalfWithCode logs at Emergency with the code's text appended and
// returns the code unchanged.
func (l *Logger) FatalfWithCode(code tserror.Code, format string, args ...any) tserror.Code {
	return l.LogfWithCode(Emergency, code, format, args...)
}

// LogUnrecoverable logs a failing code at Emergency priority and returns
// it marked unrecoverable so downstream logic stops retrying. Success and
// Queued are not failures: they pass through unchanged and nothing is
// logged.
func (l *Logger) LogUnrecoverable(code tserror.Code, format string, args ...any) tserror.Code {
	if code == tserror.Success || code == tserror.Queued {
		return code
	}
	l.LogfWithCode(Emergency, code, format, args...)
	return tserror.MakeUnrecoverable(code)
}

// LogEmbedded concatenates an optional prefix with two message fragments
// into one logical message and emits it at p. The first fragment's
// arguments arrive as a slice so wrappers can forward a caller-supplied
// format without knowing the final layout; the second fragment's arguments
// are passed inline. Either fragment may be empty. Nothing is rendered when
// p does not pass the current level.
func (l *Logger) LogEmbedded(p Priority, prefix, fmt1 string, args1 []any, fmt2 string, args2 ...any) {
	if !l.enabled(p) {
		return
	}

	var b strings.Builder
	b.WriteString(prefix)
	if fmt1 != "" {
		fmt.Fprintf(&b, fmt1, args1...)
	}
	if fmt2 != "" {
		fmt.Fprintf(&b, fmt2, args2...)
	}
	l.write(p, b.String())
}

// LogBacktrace emits the calling goroutine's stack at p, one line per
// frame, pausing between frames so a ring-style backend is not overrun.
// Best-effort: when no frames are available a single reduced-information
// line is emitted instead.
func (l *Logger) LogBacktrace(p Priority) {
	if !l.enabled(p) {
		return
	}

	pcs := make([]uintptr, maxBacktraceFrames)
	// Skip runtime.Callers and LogBacktrace itself.
	n := runtime.Callers(2, pcs)
	if n == 0 {
		l.write(p, "[backtrace unavailable]")
		return
	}

	l.write(p, "Backtrace:")
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		l.write(p, fmt.Sprintf("  %s (%s:%d)", frame.Function, frame.File, frame.Line))
		if !more {
			break
		}
		l.PauseBriefly()
	}
}

// PauseBriefly sleeps a short fixed duration when the backend needs its
// buffers drained between bursts of output, and is a no-op otherwise.
func (l *Logger) PauseBriefly() {
	if l.backend != nil {
		l.backend.Pause()
	}
}
