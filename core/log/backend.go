// File: backend.go
// Title: Backend Capability Interface
// Description: Defines the capability interface that separates the logging
//              facade from its sinks, plus the io.Writer backed backend used
//              for development and tests. Service-mode deployments install
//              the syslog backend, appliance-mode deployments the kmsg
//              backend; call sites stay identical in both modes.
// Author: Tessera Core Team
// Version: v0.1.0
// Created: 2026-08-30
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-30 v0.1.0: Initial implementation with writer backend

package log

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
)

// Backend is the sink capability behind a Logger. Write is best-effort: it
// must swallow sink failures rather than surface them to logging call
// sites. Limits reports whether call sites should honor their per-site rate
// limiters; Pause gives ring-buffer style sinks a chance to drain between
// bursts and is a no-op everywhere else.
type Backend interface {
	Open() error
	Close() error
	Write(p Priority, line string)
	Limits() bool
	Pause()
}

// WriterBackend emits "PRIORITY: message" lines to an io.Writer. It is the
// default backend and the one used throughout the tests.
type WriterBackend struct {
	mu      sync.Mutex
	w       io.Writer
	dropped atomic.Uint64
}

// NewWriterBackend creates a backend writing to w. A nil writer means
// os.Stderr.
func NewWriterBackend(w io.Writer) *WriterBackend {
	if w == nil {
		w = os.Stderr
	}
	return &WriterBackend{w: w}
}

// Open implements Backend. Writer backends need no channel setup.
func (b *WriterBackend) Open() error { return nil }

// Close implements Backend. The writer is not owned by the backend and is
// left open.
func (b *WriterBackend) Close() error { return nil }

// Write implements Backend. A failing writer only increments the drop
// counter; the error never reaches the logging call site.
func (b *WriterBackend) Write(p Priority, line string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, err := fmt.Fprintf(b.w, "%s: %s\n", p, line); err != nil {
		b.dropped.Add(1)
	}
}

// Limits implements Backend. Writer sinks are never rate limited.
func (b *WriterBackend) Limits() bool { return false }

// Pause implements Backend as a no-op.
func (b *WriterBackend) Pause() {}

// Dropped returns the number of lines lost to writer failures.
func (b *WriterBackend) Dropped() uint64 {
	return b.dropped.Load()
}
