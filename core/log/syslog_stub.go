// File: syslog_stub.go
// Title: Syslog Backend Stub
// Description: Placeholder syslog backend for platforms without local
//              syslog support. Open fails, and the error surfaces through
//              the normal configuration path; logging call sites are
//              unaffected because writes only count drops.
// Author: Tessera Core Team
// Version: v0.1.0
// Created: 2026-08-30
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-30 v0.1.0: Initial implementation

//go:build windows || plan9

package log

import (
	"errors"
	"sync/atomic"
)

// SyslogBackend is unavailable on this platform.
type SyslogBackend struct {
	tag     string
	dropped atomic.Uint64
}

// NewSyslogBackend creates a backend whose Open always fails on this
// platform.
func NewSyslogBackend(tag string) *SyslogBackend {
	return &SyslogBackend{tag: tag}
}

// Open implements Backend and reports that syslog is unsupported here.
func (b *SyslogBackend) Open() error {
	return errors.New("syslog is not supported on this platform")
}

// Close implements Backend as a no-op.
func (b *SyslogBackend) Close() error { return nil }

// Write implements Backend by counting the line as dropped.
func (b *SyslogBackend) Write(p Priority, line string) {
	b.dropped.Add(1)
}

// Limits implements Backend.
func (b *SyslogBackend) Limits() bool { return false }

// Pause implements Backend as a no-op.
func (b *SyslogBackend) Pause() {}

// Dropped returns the number of dropped lines.
func (b *SyslogBackend) Dropped() uint64 {
	return b.dropped.Load()
}
