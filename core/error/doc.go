// Package error provides the numeric status codes shared by the Tessera
// engine and its tooling.
//
// Package: error
// Title: Tessera Status Codes
// Description: This package defines the Code type used to report engine
//              status across process and module boundaries. Codes below
//              CodeBase are plain OS errnos; codes at or above CodeBase are
//              Tessera-specific conditions with registered message text.
//              Codes can be escalated with the unrecoverable marker so
//              downstream logic stops retrying, and every code maps to an
//              operational severity for alerting.
// Author: Tessera Core Team
// Version: v0.1.0
// Created: 2026-08-30
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-30 v0.1.0: Initial implementation
//
// Usage:
//
//	import tserror "github.com/tessera-storage/foundation/core/error"
//
//	if code := store.Flush(); code.IsError() {
//	    return tserror.MakeUnrecoverable(code)
//	}
//
//	err := tserror.New("cannot map index region").
//	    WithCode(tserror.OutOfSpace)
package error
