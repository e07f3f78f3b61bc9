// File: severity.go
// Title: Error Severity Levels
// Description: Severity classification for errors. Severity decides the log level
//              an error is reported with.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2025-10-17 v0.2.0: Severity mapping for command parsing codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates invalid user input or another recoverable mistake
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	SeverityMedium

	// SeverityHigh indicates an error that stops the current operation
	SeverityHigh

	// SeverityCritical indicates the process cannot continue
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

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	if code.IsUserError() {
		return SeverityLow
	}
	switch code {
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return SeverityHigh
	case CodeInternal:
		return SeverityCritical
	default:
		return SeverityMedium
	}
}
