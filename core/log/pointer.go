// File: pointer.go
// Title: Pointer Value Redaction
// Description: Implements the Ptr helper that renders pointer-valued format
//              arguments. Appliance deployments redact raw addresses from
//              the kernel log; development and service deployments print
//              them verbatim. The mode is process-wide and selected when
//              the backend is configured.
// Author: Tessera Core Team
// Version: v0.1.0
// Created: 2026-08-30
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-30 v0.1.0: Initial implementation with pointer redaction

package log

import (
	"fmt"
	"io"
	"reflect"
	"sync/atomic"
)

// redactedToken replaces raw addresses in redacting mode.
const redactedToken = "<redacted>"

var redactPointers atomic.Bool

// SetPointerRedaction selects whether Ptr values render as raw addresses
// or as an opaque token. Configuration applies it when installing an
// appliance-mode backend.
func SetPointerRedaction(on bool) {
	redactPointers.Store(on)
}

// PointerRedactionEnabled reports the current redaction mode.
func PointerRedactionEnabled() bool {
	return redactPointers.Load()
}

// pointer defers address formatting to emission time so the redaction mode
// in effect then is the one applied.
type pointer struct {
	v any
}

// Ptr wraps a pointer-shaped value for use as a format argument. With
// redaction off it renders like %p; with redaction on it renders as an
// opaque token regardless of the verb at the call site.
func Ptr(v any) fmt.Formatter {
	return pointer{v: v}
}

// Format implements fmt.Formatter.
func (p pointer) Format(s fmt.State, verb rune) {
	if redactPointers.Load() {
		io.WriteString(s, redactedToken)
		return
	}
	switch reflect.ValueOf(p.v).Kind() {
	case reflect.Ptr, reflect.UnsafePointer, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
		fmt.Fprintf(s, "%p", p.v)
	default:
		// Not pointer-shaped; fall back to the plain value.
		fmt.Fprintf(s, "%v", p.v)
	}
}
