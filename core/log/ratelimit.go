// File: ratelimit.go
// Title: Per-Call-Site Rate Limiting
// Description: Implements the token-bucket state a call site associates
//              with its own log statement, following the kernel ratelimit
//              contract: at most burst events per interval, with suppressed
//              events counted and reported once when the window turns over.
// Author: Tessera Core Team
// Version: v0.1.0
// Created: 2026-08-30
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-30 v0.1.0: Initial implementation with token-bucket limiter

package log

import (
	"sync"
	"time"
)

// Default rate-limit parameters, matching the kernel defaults of ten
// messages per five-second window.
const (
	DefaultRateInterval = 5 * time.Second
	DefaultRateBurst    = 10
)

// RateState is the independent limiter state of one call site. Declare it
// once next to the statement it protects:
//
//	var slowPathLimit = log.NewRateState(0, 0)
//	...
//	logger.Ratelimit(slowPathLimit, func(l *log.Logger) {
//	    l.Warningf("slow path taken for chunk %x", chunk)
//	})
//
// RateState is safe for concurrent use from multiple goroutines.
type RateState struct {
	mu       sync.Mutex
	interval time.Duration
	burst    int
	begin    time.Time
	printed  int
	missed   int
}

// NewRateState creates limiter state allowing burst events per interval.
// Zero or negative values select the defaults.
func NewRateState(interval time.Duration, burst int) *RateState {
	if interval <= 0 {
		interval = DefaultRateInterval
	}
	if burst <= 0 {
		burst = DefaultRateBurst
	}
	return &RateState{interval: interval, burst: burst}
}

// Allow reports whether the call site may emit now.
func (rs *RateState) Allow() bool {
	ok, _ := rs.take()
	return ok
}

// Missed returns the number of events suppressed in the current window.
func (rs *RateState) Missed() int {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return rs.missed
}

// take decides one event. On a window turnover it also flushes the count
// of events suppressed in the previous window, so the caller can report
// them exactly once.
func (rs *RateState) take() (allowed bool, suppressed int) {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	now := time.Now()
	if rs.begin.IsZero() || now.Sub(rs.begin) >= rs.interval {
		rs.begin = now
		rs.printed = 0
		suppressed = rs.missed
		rs.missed = 0
	}

	if rs.printed < rs.burst {
		rs.printed++
		return true, suppressed
	}
	rs.missed++
	return false, suppressed
}

// Ratelimit applies a call site's limiter to a log operation. When the
// backend does not limit (service mode), fn always runs. In appliance mode
// fn runs only if rs admits the event; a denied call never invokes fn, so
// none of its format arguments are evaluated and the backend is never
// touched. Suppressed events are summarized in one line when the window
// turns over.
func (l *Logger) Ratelimit(rs *RateState, fn func(*Logger)) {
	if l.backend == nil || !l.backend.Limits() {
		fn(l)
		return
	}

	allowed, suppressed := rs.take()
	if suppressed > 0 {
		l.Warningf("rate limit: %d messages suppressed", suppressed)
	}
	if allowed {
		fn(l)
	}
}
