// File: unrecoverable.go
// Title: Unrecoverable Escalation Marker
// Description: Implements the unrecoverable marker applied to status codes
//              when a failure must not be retried. The marker is a high bit
//              outside both the errno range and the Tessera code block, so
//              an escalated code stays distinct from every plain code.
// Author: Tessera Core Team
// Version: v0.1.0
// Created: 2026-08-30
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-30 v0.1.0: Initial implementation of escalation marker

package error

// unrecoverableMask is the marker bit for escalated codes.
const unrecoverableMask Code = 1 << 20

// MakeUnrecoverable marks a code so downstream logic treats the failure as
// non-retryable. Success and Queued pass through unchanged.
func MakeUnrecoverable(c Code) Code {
	if c == Success || c == Queued {
		return c
	}
	return c | unrecoverableMask
}

// IsUnrecoverable reports whether the code carries the escalation marker.
func IsUnrecoverable(c Code) bool {
	return c&unrecoverableMask != 0
}

// StripUnrecoverable returns the underlying code without the marker.
func StripUnrecoverable(c Code) Code {
	return c &^ unrecoverableMask
}
