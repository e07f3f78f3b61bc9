// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used by findpay. Command parsing codes
//              identify exactly which rule an input violated so callers can react
//              without matching on message text.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2025-10-17 v0.2.0: Replaced service codes with command parsing codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Command structure
	CodeMalformedCommand Code = "MALFORMED_COMMAND"
	CodeUnknownCommand   Code = "UNKNOWN_COMMAND"
	CodeInputTooLong     Code = "INPUT_TOO_LONG"

	// Filter cardinality
	CodeMissingFilter   Code = "MISSING_FILTER"
	CodeTooManyFilters  Code = "TOO_MANY_FILTERS"
	CodeDuplicateFilter Code = "DUPLICATE_FILTER"
	CodeUnknownFilter   Code = "UNKNOWN_FILTER"

	// Filter values
	CodeEmptyAmount   Code = "EMPTY_AMOUNT"
	CodeEmptyDate     Code = "EMPTY_DATE"
	CodeEmptyRemark   Code = "EMPTY_REMARK"
	CodeInvalidAmount Code = "INVALID_AMOUNT"
	CodeInvalidDate   Code = "INVALID_DATE"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeInvalidInput,
		CodeMalformedCommand, CodeUnknownCommand, CodeInputTooLong,
		CodeMissingFilter, CodeTooManyFilters, CodeDuplicateFilter, CodeUnknownFilter,
		CodeEmptyAmount, CodeEmptyDate, CodeEmptyRemark, CodeInvalidAmount, CodeInvalidDate,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeMalformedCommand, CodeUnknownCommand, CodeInputTooLong:
		return "command"
	case CodeMissingFilter, CodeTooManyFilters, CodeDuplicateFilter, CodeUnknownFilter:
		return "filter"
	case CodeEmptyAmount, CodeEmptyDate, CodeEmptyRemark, CodeInvalidAmount, CodeInvalidDate:
		return "value"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}

// IsUserError reports whether the code describes a mistake in user input that the
// user can correct by re-entering the command.
func (c Code) IsUserError() bool {
	switch c.Category() {
	case "command", "filter", "value":
		return true
	}
	return c == CodeInvalidInput
}
