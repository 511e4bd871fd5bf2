// File: priority_test.go
// Title: Priority Tests
// Description: Tests for priority naming and parsing, including the
//              case-insensitive round trip and the silent Info fallback.
// Author: Tessera Core Team
// Version: v0.1.0
// Created: 2026-08-30
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-30 v0.1.0: Initial implementation with priority tests

package log

import (
	"strings"
	"testing"
)

func TestPriorityString(t *testing.T) {
	tests := []struct {
		priority Priority
		want     string
	}{
		{Emergency, "EMERGENCY"},
		{Alert, "ALERT"},
		{Critical, "CRITICAL"},
		{Error, "ERROR"},
		{Warning, "WARNING"},
		{Notice, "NOTICE"},
		{Info, "INFO"},
		{Debug, "DEBUG"},
		{Priority(999), "unknown"},
		{Priority(-1), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.priority.String(); got != tt.want {
				t.Errorf("Priority.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParsePriorityRoundTrip(t *testing.T) {
	// Every exact, case-varying form of a priority's canonical name must
	// parse back to the same priority.
	for _, p := range AllPriorities() {
		name := p.String()
		variants := []string{
			name,
			strings.ToLower(name),
			name[:1] + strings.ToLower(name[1:]),
		}
		for _, v := range variants {
			t.Run(v, func(t *testing.T) {
				if got := ParsePriority(v); got != p {
					t.Errorf("ParsePriority(%q) = %v, want %v", v, got, p)
				}
			})
		}
	}
}

func TestParsePriorityAliases(t *testing.T) {
	tests := []struct {
		input string
		want  Priority
	}{
		{"emerg", Emergency},
		{"fatal", Emergency},
		{"crit", Critical},
		{"err", Error},
		{"warn", Warning},
		{"  debug  ", Debug},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParsePriority(tt.input); got != tt.want {
				t.Errorf("ParsePriority(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParsePriorityUnrecognizedFallsBackToInfo(t *testing.T) {
	for _, input := range []string{"", "verbose", "LOUD", "7", "informational-ish"} {
		t.Run(input, func(t *testing.T) {
			if got := ParsePriority(input); got != Info {
				t.Errorf("ParsePriority(%q) = %v, want Info", input, got)
			}
		})
	}
}

func TestPriorityOrdering(t *testing.T) {
	// Lower numeric value means more urgent. The ordering is load-bearing
	// for the threshold check.
	if !(Emergency < Alert && Alert < Critical && Critical < Error &&
		Error < Warning && Warning < Notice && Notice < Info && Info < Debug) {
		t.Error("priority ordering is not strictly increasing from Emergency to Debug")
	}
}
