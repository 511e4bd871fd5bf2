// File: logger_test.go
// Title: Logger Tests
// Description: Tests for threshold gating, code pass-through and
//              escalation, embedded messages, backtraces, and the
//              best-effort contract over a failing backend.
// Author: Tessera Core Team
// Version: v0.1.0
// Created: 2026-08-30
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-30 v0.1.0: Initial implementation with logger tests

package log

import (
	"errors"
	"strings"
	"sync"
	"testing"

	tserror "github.com/tessera-storage/foundation/core/error"
)

// recordingBackend captures every write for inspection.
type recordingBackend struct {
	mu     sync.Mutex
	limits bool
	lines  []string
	prios  []Priority
	opens  int
	closes int
	pauses int
}

func (b *recordingBackend) Open() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.opens++
	return nil
}

func (b *recordingBackend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closes++
	return nil
}

func (b *recordingBackend) Write(p Priority, line string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.prios = append(b.prios, p)
	b.lines = append(b.lines, line)
}

func (b *recordingBackend) Limits() bool { return b.limits }

func (b *recordingBackend) Pause() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pauses++
}

func (b *recordingBackend) count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.lines)
}

func (b *recordingBackend) last() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.lines) == 0 {
		return ""
	}
	return b.lines[len(b.lines)-1]
}

func newRecordingLogger(limits bool) (*Logger, *recordingBackend) {
	backend := &recordingBackend{limits: limits}
	return NewWithBackend(backend), backend
}

func TestDefaultLevel(t *testing.T) {
	logger, _ := newRecordingLogger(false)
	if got := logger.Level(); got != Info {
		t.Errorf("Level() = %v, want Info", got)
	}
}

func TestThresholdGating(t *testing.T) {
	tests := []struct {
		name     string
		level    Priority
		emit     Priority
		expected int
	}{
		{"debug below info level", Info, Debug, 0},
		{"info at info level", Info, Info, 1},
		{"error above info level", Info, Error, 1},
		{"info below error level", Error, Info, 0},
		{"emergency always passes", Emergency, Emergency, 1},
		{"debug at debug level", Debug, Debug, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, backend := newRecordingLogger(false)
			logger.SetLevel(tt.level)
			logger.Logf(tt.emit, "message %d", 1)
			if got := backend.count(); got != tt.expected {
				t.Errorf("backend calls = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestSuppressedLogDoesNotRenderArguments(t *testing.T) {
	logger, _ := newRecordingLogger(false)
	logger.SetLevel(Error)

	rendered := false
	logger.Debugf("value %v", renderProbe{&rendered})
	if rendered {
		t.Error("suppressed Logf rendered its arguments")
	}
}

// renderProbe flags when fmt evaluates it.
type renderProbe struct {
	hit *bool
}

func (r renderProbe) String() string {
	*r.hit = true
	return "probe"
}

func TestLevelWrappers(t *testing.T) {
	logger, backend := newRecordingLogger(false)
	logger.SetLevel(Debug)

	logger.Debugf("a")
	logger.Infof("b")
	logger.Noticef("c")
	logger.Warningf("d")
	logger.Errorf("e")
	logger.Fatalf("f")

	want := []Priority{Debug, Info, Notice, Warning, Error, Emergency}
	backend.mu.Lock()
	defer backend.mu.Unlock()
	if len(backend.prios) != len(want) {
		t.Fatalf("backend calls = %d, want %d", len(backend.prios), len(want))
	}
	for i, p := range want {
		if backend.prios[i] != p {
			t.Errorf("call %d priority = %v, want %v", i, backend.prios[i], p)
		}
	}
}

func TestLoggerName(t *testing.T) {
	logger, backend := newRecordingLogger(false)
	logger.WithName("volume-index")
	logger.Infof("chapter %d sealed", 7)

	if got := backend.last(); got != "volume-index: chapter 7 sealed" {
		t.Errorf("line = %q, want name prefix", got)
	}
}

func TestLogfWithCodeReturnsCodeUnchanged(t *testing.T) {
	tests := []struct {
		name    string
		level   Priority
		emit    Priority
		emitted bool
	}{
		{"logged", Debug, Error, true},
		{"suppressed", Emergency, Error, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, backend := newRecordingLogger(false)
			logger.SetLevel(tt.level)

			got := logger.LogfWithCode(tt.emit, tserror.OutOfSpace, "cannot seal chapter %d", 3)
			if got != tserror.OutOfSpace {
				t.Errorf("LogfWithCode returned %v, want OutOfSpace", got)
			}
			if emitted := backend.count() == 1; emitted != tt.emitted {
				t.Errorf("emitted = %v, want %v", emitted, tt.emitted)
			}
		})
	}
}

func TestLogfWithCodeAppendsCodeText(t *testing.T) {
	logger, backend := newRecordingLogger(false)
	logger.ErrorfWithCode(tserror.OutOfSpace, "cannot seal chapter %d", 3)

	got := backend.last()
	if !strings.Contains(got, "cannot seal chapter 3") {
		t.Errorf("line %q missing rendered message", got)
	}
	if !strings.Contains(got, "no space available") {
		t.Errorf("line %q missing code text", got)
	}
	if !strings.Contains(got, "TS_OUT_OF_SPACE") {
		t.Errorf("line %q missing code name", got)
	}
}

func TestLogUnrecoverable(t *testing.T) {
	t.Run("success passes through", func(t *testing.T) {
		logger, backend := newRecordingLogger(false)
		got := logger.LogUnrecoverable(tserror.Success, "flush")
		if got != tserror.Success {
			t.Errorf("returned %v, want Success", got)
		}
		if backend.count() != 0 {
			t.Error("Success was logged")
		}
	})

	t.Run("queued passes through", func(t *testing.T) {
		logger, backend := newRecordingLogger(false)
		got := logger.LogUnrecoverable(tserror.Queued, "flush")
		if got != tserror.Queued {
			t.Errorf("returned %v, want Queued", got)
		}
		if backend.count() != 0 {
			t.Error("Queued was logged")
		}
	})

	t.Run("failure escalates and logs at emergency", func(t *testing.T) {
		logger, backend := newRecordingLogger(false)
		got := logger.LogUnrecoverable(tserror.IndexCorrupt, "flush of chapter %d", 9)
		if got == tserror.IndexCorrupt {
			t.Error("returned code was not escalated")
		}
		if !tserror.IsUnrecoverable(got) {
			t.Error("returned code is not marked unrecoverable")
		}
		if tserror.StripUnrecoverable(got) != tserror.IndexCorrupt {
			t.Errorf("underlying code = %v, want IndexCorrupt", tserror.StripUnrecoverable(got))
		}
		if backend.count() != 1 {
			t.Fatalf("backend calls = %d, want 1", backend.count())
		}
		backend.mu.Lock()
		defer backend.mu.Unlock()
		if backend.prios[0] != Emergency {
			t.Errorf("logged at %v, want Emergency", backend.prios[0])
		}
	})
}

func TestLogEmbedded(t *testing.T) {
	tests := []struct {
		name string
		emit func(l *Logger)
		want string
	}{
		{
			name: "prefix and both fragments",
			emit: func(l *Logger) {
				l.LogEmbedded(Info, "rebuild: ", "chapter %d", []any{4}, " of %d", 16)
			},
			want: "rebuild: chapter 4 of 16",
		},
		{
			name: "no prefix",
			emit: func(l *Logger) {
				l.LogEmbedded(Info, "", "chapter %d", []any{4}, ": %s", "sealed")
			},
			want: "chapter 4: sealed",
		},
		{
			name: "empty first fragment",
			emit: func(l *Logger) {
				l.LogEmbedded(Info, "rebuild: ", "", nil, "%d chapters", 16)
			},
			want: "rebuild: 16 chapters",
		},
		{
			name: "empty second fragment",
			emit: func(l *Logger) {
				l.LogEmbedded(Info, "", "chapter %d", []any{4}, "")
			},
			want: "chapter 4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, backend := newRecordingLogger(false)
			tt.emit(logger)
			if got := backend.last(); got != tt.want {
				t.Errorf("line = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLogEmbeddedSuppressedBelowLevel(t *testing.T) {
	logger, backend := newRecordingLogger(false)
	logger.SetLevel(Error)
	logger.LogEmbedded(Debug, "p: ", "a %d", []any{1}, " b %d", 2)
	if backend.count() != 0 {
		t.Error("suppressed embedded message reached the backend")
	}
}

func TestLogBacktrace(t *testing.T) {
	logger, backend := newRecordingLogger(false)
	logger.LogBacktrace(Info)

	if backend.count() < 2 {
		t.Fatalf("backend calls = %d, want header plus at least one frame", backend.count())
	}
	backend.mu.Lock()
	defer backend.mu.Unlock()
	if backend.lines[0] != "Backtrace:" {
		t.Errorf("first line = %q, want backtrace header", backend.lines[0])
	}
	found := false
	for _, line := range backend.lines[1:] {
		if strings.Contains(line, "TestLogBacktrace") {
			found = true
		}
	}
	if !found {
		t.Error("backtrace does not mention the calling function")
	}
}

func TestLogBacktraceSuppressedBelowLevel(t *testing.T) {
	logger, backend := newRecordingLogger(false)
	logger.SetLevel(Emergency)
	logger.LogBacktrace(Debug)
	if backend.count() != 0 {
		t.Error("suppressed backtrace reached the backend")
	}
}

func TestPauseBrieflyForwardsToBackend(t *testing.T) {
	logger, backend := newRecordingLogger(false)
	logger.PauseBriefly()
	backend.mu.Lock()
	defer backend.mu.Unlock()
	if backend.pauses != 1 {
		t.Errorf("pauses = %d, want 1", backend.pauses)
	}
}

func TestOpenCloseDelegation(t *testing.T) {
	logger, backend := newRecordingLogger(false)
	if err := logger.Open(); err != nil {
		t.Fatalf("Open() = %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("Close() = %v", err)
	}
	backend.mu.Lock()
	defer backend.mu.Unlock()
	if backend.opens != 1 || backend.closes != 1 {
		t.Errorf("opens/closes = %d/%d, want 1/1", backend.opens, backend.closes)
	}
}

// failingWriter fails every write, standing in for a backend whose I/O
// path is broken.
type failingWriter struct {
	writes int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	w.writes++
	return 0, errors.New("injected write failure")
}

func TestEmissionOverFailingBackendLeavesCallerStateIntact(t *testing.T) {
	w := &failingWriter{}
	backend := NewWriterBackend(w)
	logger := NewWithBackend(backend)

	// Every emission path must swallow the failure: no error, no panic,
	// and the code-annotated emitters still return their codes verbatim.
	logger.Errorf("broken sink %d", 1)
	if got := logger.ErrorfWithCode(tserror.ResourceBusy, "broken sink"); got != tserror.ResourceBusy {
		t.Errorf("ErrorfWithCode over failing backend returned %v, want ResourceBusy", got)
	}
	logger.LogBacktrace(Error)

	if w.writes == 0 {
		t.Fatal("failing writer was never invoked")
	}
	if backend.Dropped() == 0 {
		t.Error("write failures were not counted as drops")
	}
	// The logger remains fully usable.
	if got := logger.Level(); got != Info {
		t.Errorf("Level() after failures = %v, want Info", got)
	}
}

func TestConcurrentLogging(t *testing.T) {
	logger, backend := newRecordingLogger(false)
	logger.SetLevel(Debug)

	var wg sync.WaitGroup
	const goroutines = 8
	const perGoroutine = 50
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				logger.Infof("worker %d message %d", id, i)
			}
		}(g)
	}
	wg.Wait()

	if got := backend.count(); got != goroutines*perGoroutine {
		t.Errorf("backend calls = %d, want %d", got, goroutines*perGoroutine)
	}
}

func TestDefaultLoggerFunctions(t *testing.T) {
	backend := &recordingBackend{}
	old := GetDefault()
	SetDefault(NewWithBackend(backend))
	defer SetDefault(old)

	SetLevel(Debug)
	if Level() != Debug {
		t.Errorf("Level() = %v, want Debug", Level())
	}
	Infof("hello %s", "world")
	if got := backend.last(); got != "hello world" {
		t.Errorf("line = %q, want %q", got, "hello world")
	}
	if got := ErrorfWithCode(tserror.ResourceBusy, "x"); got != tserror.ResourceBusy {
		t.Errorf("ErrorfWithCode = %v, want ResourceBusy", got)
	}
}
