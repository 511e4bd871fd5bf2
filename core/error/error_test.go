// File: error_test.go
// Title: Coded Error Tests
// Description: Tests for the coded error type including wrapping, code
//              propagation, and standard error interface compatibility.
// Author: Tessera Core Team
// Version: v0.1.0
// Created: 2026-08-30
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-30 v0.1.0: Initial implementation with coded error tests

package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New("index region unavailable")
	if err.Error() != "index region unavailable" {
		t.Errorf("Error() = %v, want index region unavailable", err.Error())
	}
	if err.Code() != UnknownError {
		t.Errorf("Code() = %v, want UnknownError", err.Code())
	}
}

func TestWithCode(t *testing.T) {
	err := New("device full").WithCode(OutOfSpace)
	if err.Code() != OutOfSpace {
		t.Errorf("Code() = %v, want OutOfSpace", err.Code())
	}
}

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("read config: permission denied")
	err := Wrap(cause, "cannot load logging configuration")

	want := "cannot load logging configuration: read config: permission denied"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is did not find the wrapped cause")
	}
}

func TestWrapNil(t *testing.T) {
	if err := Wrap(nil, "context"); err != nil {
		t.Errorf("Wrap(nil) = %v, want nil", err)
	}
}

func TestWrapPreservesCode(t *testing.T) {
	inner := New("bad level name").WithCode(BadConfiguration)
	outer := Wrap(inner, "applying configuration")
	if outer.Code() != BadConfiguration {
		t.Errorf("Code() = %v, want BadConfiguration", outer.Code())
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{"nil", nil, Success},
		{"coded", New("x").WithCode(ResourceBusy), ResourceBusy},
		{"plain", fmt.Errorf("plain"), UnknownError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.want {
				t.Errorf("GetCode() = %v, want %v", got, tt.want)
			}
		})
	}
}
