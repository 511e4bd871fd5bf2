// File: codes.go
// Title: Status Code Definitions
// Description: Defines the numeric status codes used across the Tessera
//              engine. Codes below CodeBase are operating system errnos and
//              are bridged through syscall for their message text; codes at
//              or above CodeBase belong to Tessera itself.
// Author: Tessera Core Team
// Version: v0.1.0
// Created: 2026-08-30
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-30 v0.1.0: Initial implementation with core status codes

package error

import (
	"fmt"
	"syscall"
)

// Code represents a numeric status code. The zero value is Success.
type Code int

// CodeBase is the first Tessera-specific status code. Values between zero
// and CodeBase are interpreted as OS errnos.
const CodeBase Code = 1024

// Success is the zero status code.
const Success Code = 0

// Tessera status codes. UnknownError must remain the last entry of the
// block; codeInfo is indexed relative to CodeBase.
const (
	// Queued marks work that has been handed to an asynchronous path.
	// It is not an error and is never escalated.
	Queued Code = CodeBase + iota
	Uninitialized
	ShuttingDown
	EmergencyStop
	IndexCorrupt
	IndexNotFound
	ChecksumMismatch
	OutOfSpace
	BufferTooSmall
	ResourceBusy
	ResourceLimit
	Unsupported
	BadConfiguration
	UnknownError
)

// codeInfo holds the symbolic name and message text for each Tessera code,
// indexed by Code - CodeBase.
var codeInfo = []struct {
	name    string
	message string
}{
	{"TS_QUEUED", "request queued"},
	{"TS_UNINITIALIZED", "index not initialized"},
	{"TS_SHUTTING_DOWN", "index shutting down"},
	{"TS_EMERGENCY_STOP", "index stopped after unrecoverable failure"},
	{"TS_INDEX_CORRUPT", "index data is corrupt"},
	{"TS_INDEX_NOT_FOUND", "no index found at the configured location"},
	{"TS_CHECKSUM_MISMATCH", "stored checksum does not match computed checksum"},
	{"TS_OUT_OF_SPACE", "no space available on the storage device"},
	{"TS_BUFFER_TOO_SMALL", "supplied buffer is too small"},
	{"TS_RESOURCE_BUSY", "required resource is busy"},
	{"TS_RESOURCE_LIMIT", "internal resource limit reached"},
	{"TS_UNSUPPORTED", "operation not supported by this index"},
	{"TS_BAD_CONFIGURATION", "invalid configuration"},
	{"TS_UNKNOWN_ERROR", "unknown error"},
}

// String returns the symbolic name of the code. Errno-range codes render as
// "errno N", out-of-range codes as an explicit placeholder. Escalated codes
// report the name of the underlying code.
func (c Code) String() string {
	c = StripUnrecoverable(c)
	switch {
	case c == Success:
		return "TS_SUCCESS"
	case c >= CodeBase && c < CodeBase+Code(len(codeInfo)):
		return codeInfo[c-CodeBase].name
	case c > 0 && c < CodeBase:
		return fmt.Sprintf("errno %d", int(c))
	default:
		return fmt.Sprintf("unknown status code %d", int(c))
	}
}

// Text returns the human-readable message for the code. There is always a
// usable result; unrecognized codes degrade to a placeholder rather than
// failing.
func (c Code) Text() string {
	c = StripUnrecoverable(c)
	switch {
	case c == Success:
		return "success"
	case c >= CodeBase && c < CodeBase+Code(len(codeInfo)):
		return codeInfo[c-CodeBase].message
	case c > 0 && c < CodeBase:
		return syscall.Errno(c).Error()
	default:
		return fmt.Sprintf("unknown status code %d", int(c))
	}
}

// IsError reports whether the code indicates a failure. Success and Queued
// are the two non-failure codes.
func (c Code) IsError() bool {
	stripped := StripUnrecoverable(c)
	return stripped != Success && stripped != Queued
}

// Severity returns the operational severity associated with the code.
func (c Code) Severity() Severity {
	switch StripUnrecoverable(c) {
	case Success, Queued:
		return SeverityLow
	case IndexCorrupt, ChecksumMismatch, EmergencyStop:
		return SeverityCritical
	case OutOfSpace, IndexNotFound, Uninitialized:
		return SeverityHigh
	default:
		return SeverityMedium
	}
}
