// File: kmsg.go
// Title: Kernel Ring Backend (appliance mode)
// Description: Implements the appliance-mode backend that injects log lines
//              into the kernel ring buffer through /dev/kmsg using the
//              "<priority>" record prefix. The ring can be overrun by
//              bursts, so this backend enables call-site rate limiting and
//              provides a real pause between batches of output.
// Author: Tessera Core Team
// Version: v0.1.0
// Created: 2026-08-30
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-30 v0.1.0: Initial implementation over /dev/kmsg

package log

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultKmsgPath is the kernel log device.
const DefaultKmsgPath = "/dev/kmsg"

// kmsgPause is the fixed sleep used to let the ring drain during bursts.
const kmsgPause = 10 * time.Millisecond

// KmsgBackend writes "<pri>tag: message" records to the kernel log device.
// Open and Close are not safe to race against concurrent Write calls.
type KmsgBackend struct {
	tag  string
	path string

	mu      sync.Mutex
	f       io.WriteCloser
	dropped atomic.Uint64
}

// NewKmsgBackend creates an unopened backend for the default kernel log
// device, tagging each record with tag.
func NewKmsgBackend(tag string) *KmsgBackend {
	return &KmsgBackend{tag: tag, path: DefaultKmsgPath}
}

// WithPath overrides the device path. Used by tests and by appliances that
// relocate the log device.
func (b *KmsgBackend) WithPath(path string) *KmsgBackend {
	b.path = path
	return b
}

// Open implements Backend by opening the log device for writing.
func (b *KmsgBackend) Open() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.f != nil {
		return nil
	}
	f, err := os.OpenFile(b.path, os.O_WRONLY, 0)
	if err != nil {
		return err
	}
	b.f = f
	return nil
}

// Close implements Backend by closing the log device.
func (b *KmsgBackend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.f == nil {
		return nil
	}
	err := b.f.Close()
	b.f = nil
	return err
}

// Write implements Backend. Each record carries the numeric priority in the
// kmsg prefix form; lines written before Open or refused by the device are
// dropped and counted.
func (b *KmsgBackend) Write(p Priority, line string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.f == nil {
		b.dropped.Add(1)
		return
	}
	var err error
	if b.tag != "" {
		_, err = fmt.Fprintf(b.f, "<%d>%s: %s\n", int(p), b.tag, line)
	} else {
		_, err = fmt.Fprintf(b.f, "<%d>%s\n", int(p), line)
	}
	if err != nil {
		b.dropped.Add(1)
	}
}

// Limits implements Backend. The ring buffer must be protected from
// repeated call sites, so limiters are live in appliance mode.
func (b *KmsgBackend) Limits() bool { return true }

// Pause implements Backend with a short fixed sleep so the ring buffer can
// be written out before the next burst.
func (b *KmsgBackend) Pause() {
	time.Sleep(kmsgPause)
}

// Dropped returns the number of records lost to a missing or failing
// device.
func (b *KmsgBackend) Dropped() uint64 {
	return b.dropped.Load()
}
