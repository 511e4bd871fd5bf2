// File: syslog.go
// Title: Syslog Backend (service mode)
// Description: Implements the user-space backend over the host syslog
//              daemon. Open acquires the channel and Close releases it;
//              writes before Open or after a connection failure are dropped
//              and counted, never surfaced to call sites.
// Author: Tessera Core Team
// Version: v0.1.0
// Created: 2026-08-30
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-30 v0.1.0: Initial implementation over log/syslog

//go:build !windows && !plan9

package log

import (
	"log/syslog"
	"sync"
	"sync/atomic"
)

// SyslogBackend forwards log lines to the host syslog daemon. Open and
// Close are not safe to race against concurrent Write calls; production
// deployments open once at startup and never close.
type SyslogBackend struct {
	tag string

	mu      sync.Mutex
	w       *syslog.Writer
	dropped atomic.Uint64
}

// NewSyslogBackend creates an unopened syslog backend using tag as the
// syslog ident. An empty tag lets the syslog package default to the
// process name.
func NewSyslogBackend(tag string) *SyslogBackend {
	return &SyslogBackend{tag: tag}
}

// Open implements Backend by connecting to the local syslog daemon on the
// daemon facility.
func (b *SyslogBackend) Open() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.w != nil {
		return nil
	}
	w, err := syslog.New(syslog.LOG_DAEMON, b.tag)
	if err != nil {
		return err
	}
	b.w = w
	return nil
}

// Close implements Backend by releasing the syslog channel.
func (b *SyslogBackend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.w == nil {
		return nil
	}
	err := b.w.Close()
	b.w = nil
	return err
}

// Write implements Backend. Lines logged before Open, and lines the daemon
// refuses, are dropped and counted.
func (b *SyslogBackend) Write(p Priority, line string) {
	b.mu.Lock()
	w := b.w
	b.mu.Unlock()

	if w == nil {
		b.dropped.Add(1)
		return
	}

	var err error
	switch p {
	case Emergency:
		err = w.Emerg(line)
	case Alert:
		err = w.Alert(line)
	case Critical:
		err = w.Crit(line)
	case Error:
		err = w.Err(line)
	case Warning:
		err = w.Warning(line)
	case Notice:
		err = w.Notice(line)
	case Info:
		err = w.Info(line)
	default:
		err = w.Debug(line)
	}
	if err != nil {
		b.dropped.Add(1)
	}
}

// Limits implements Backend. The syslog daemon applies its own throttling,
// so call-site limiters pass through in service mode.
func (b *SyslogBackend) Limits() bool { return false }

// Pause implements Backend as a no-op.
func (b *SyslogBackend) Pause() {}

// Dropped returns the number of lines lost to a missing or failing daemon
// connection.
func (b *SyslogBackend) Dropped() uint64 {
	return b.dropped.Load()
}
