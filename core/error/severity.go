// File: severity.go
// Title: Status Severity Levels
// Description: Defines severity levels for status codes to enable proper
//              prioritization and alerting. Severity is derived from the
//              code itself, see Code.Severity in codes.go.
// Author: Tessera Core Team
// Version: v0.1.0
// Created: 2026-08-30
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-30 v0.1.0: Initial implementation with severity levels

package error

// Severity represents the operational severity of a status code
type Severity int

const (
	// SeverityLow indicates a benign or informational condition
	SeverityLow Severity = iota

	// SeverityMedium indicates a failure with workarounds
	SeverityMedium

	// SeverityHigh indicates a failure that significantly impacts the index
	SeverityHigh

	// SeverityCritical indicates data integrity is in question
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}
