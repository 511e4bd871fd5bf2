// File: stringx.go
// Title: String Utility Functions
// Description: Small string helpers shared by the configuration and
//              logging packages. Kept deliberately minimal; only helpers
//              with at least one caller in the repository live here.
// Author: Tessera Core Team
// Version: v0.1.0
// Created: 2026-08-30
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-30 v0.1.0: Initial implementation with core helpers

package stringx

import (
	"unicode"
)

// IsEmpty returns true if the string has zero length.
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsBlank returns true if the string is empty or contains only whitespace.
func IsBlank(s string) bool {
	if len(s) == 0 {
		return true
	}
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// DefaultIfBlank returns the fallback when s is blank, otherwise s.
func DefaultIfBlank(s, fallback string) string {
	if IsBlank(s) {
		return fallback
	}
	return s
}
